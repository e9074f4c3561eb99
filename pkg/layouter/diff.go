package layouter

import (
	"math"
	"sort"

	"github.com/drodenkirchen/rio/pkg/component"
)

// Mismatch is one field where the computed and the client-measured layout
// of a component disagree beyond the tolerance.
type Mismatch struct {
	ID     component.ID
	Kind   component.Kind
	Field  string
	Should float64
	Are    float64
}

// Delta returns the absolute difference between the two values.
func (m Mismatch) Delta() float64 {
	return math.Abs(m.Should - m.Are)
}

// Diff compares the computed records against the client-measured ones,
// field by field, and returns every disagreement larger than tolerance.
// Results are ordered by component id, then by field order.
//
// Client measurements are subject to sub-pixel rounding, so a tolerance of
// about 0.1 layout units is usual; 0 demands exact agreement.
func (ly *Layouter) Diff(tolerance float64) []Mismatch {
	ids := make([]component.ID, 0, len(ly.should))
	for id := range ly.should {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []Mismatch
	for _, id := range ids {
		should, are := ly.should[id], ly.are[id]
		for _, f := range Fields {
			sv, av := f.Get(should), f.Get(are)
			// Fields the client did not report cannot disagree.
			if av == Unset {
				continue
			}
			if math.Abs(sv-av) > tolerance {
				out = append(out, Mismatch{
					ID:     id,
					Kind:   ly.byID[id].Kind(),
					Field:  f.Name,
					Should: sv,
					Are:    av,
				})
			}
		}
	}
	return out
}
