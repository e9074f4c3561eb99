// Package export turns finished layout computations into artifacts for
// humans and tooling.
//
// Four sinks are provided:
//
//   - JSON ([WriteJSON], [ExportJSON]): the full computed and measured
//     records, for diffing and archival.
//   - SVG ([RenderSVG]): the computed geometry drawn to scale, nesting
//     depth encoded as a grayscale ramp.
//   - DOT ([ToDOT], [RenderDiagram]): the tree structure as a Graphviz
//     node-link diagram, independent of geometry.
//   - Text ([WriteTree]): the tree as indented lines for terminals.
package export
