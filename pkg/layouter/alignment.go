package layouter

import "github.com/drodenkirchen/rio/pkg/component"

// AlignedSpan converts the outer space allocated to a component on one
// axis into the component's inner offset and inner size on that axis.
//
// A filling component consumes everything its margins don't claim. A
// fractionally aligned component keeps exactly its requested inner size
// and places itself inside the surplus: fraction 0 hugs the start margin,
// 1 hugs the end margin, 0.5 centers.
//
// The surplus may be negative when the component was granted less than it
// requested. It is deliberately not clamped: the returned size can exceed
// the available space, which is how overflow shows up in the computed
// layout for the comparison tooling to flag.
func AlignedSpan(outer, requestedInner, marginStart, marginEnd float64, align component.Align) (offset, size float64) {
	fraction, ok := align.Fraction()
	if !ok {
		return marginStart, outer - marginStart - marginEnd
	}

	surplus := outer - requestedInner - marginStart - marginEnd
	return marginStart + surplus*fraction, requestedInner
}
