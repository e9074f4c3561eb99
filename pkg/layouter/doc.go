// Package layouter computes the authoritative, server-side layout for a
// component tree and holds it next to the layout the rendering client
// measured, so the two can be compared.
//
// # Algorithm
//
// The computation is a two-pass constraint solver, run once per axis with
// width fully resolved before height (height sizing of wrapped content
// depends on final widths):
//
//  1. Natural/requested pass, children before parents: each component's
//     natural size is derived from its children's requested sizes (or, for
//     leaves, taken from the client report), then clamped against the
//     explicit minimum and padded with margins.
//  2. The root is seeded with the larger of the window size and its own
//     requested outer size; content may legitimately force the viewport to
//     grow.
//  3. Allocation pass, parents before children: each component aligns
//     itself inside its allocated outer space, then distributes its inner
//     space among its children according to its kind's strategy.
//
// Per-kind behavior is a closed dispatch over [component.Kind] with a
// default arm that trusts the client-measured values verbatim; see
// strategies.go.
//
// # Usage
//
//	ly, err := layouter.New(ctx, root, src)
//	if err != nil {
//	    return err
//	}
//	mismatches := ly.Diff(0.1)
//
// A [Layouter] owns its two record maps exclusively; after New returns they
// are immutable and safe to hand to exporters.
package layouter
