package layouter

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Unset is the sentinel every [Record] field starts out as. A field still
// Unset after both passes means a phase skipped a component, which is a
// bug, not a data condition; [Record.Validate] turns it into an error.
const Unset = -1

// Record is the layout computed (or measured) for one component. Sizes are
// in layout units, positions in the absolute viewport coordinate space.
// Outer values include the component's margins, inner values exclude them.
type Record struct {
	NaturalWidth  float64 `json:"natural_width"`
	NaturalHeight float64 `json:"natural_height"`

	RequestedInnerWidth  float64 `json:"requested_inner_width"`
	RequestedInnerHeight float64 `json:"requested_inner_height"`
	RequestedOuterWidth  float64 `json:"requested_outer_width"`
	RequestedOuterHeight float64 `json:"requested_outer_height"`

	AllocatedOuterWidth  float64 `json:"allocated_outer_width"`
	AllocatedOuterHeight float64 `json:"allocated_outer_height"`
	AllocatedInnerWidth  float64 `json:"allocated_inner_width"`
	AllocatedInnerHeight float64 `json:"allocated_inner_height"`

	OuterLeft float64 `json:"left_in_viewport_outer"`
	OuterTop  float64 `json:"top_in_viewport_outer"`
	InnerLeft float64 `json:"left_in_viewport_inner"`
	InnerTop  float64 `json:"top_in_viewport_inner"`

	// Aux carries strategy- or client-specific extra data.
	Aux map[string]any `json:"aux"`
}

// NewRecord returns a record with every field set to [Unset].
func NewRecord() *Record {
	return &Record{
		NaturalWidth:         Unset,
		NaturalHeight:        Unset,
		RequestedInnerWidth:  Unset,
		RequestedInnerHeight: Unset,
		RequestedOuterWidth:  Unset,
		RequestedOuterHeight: Unset,
		AllocatedOuterWidth:  Unset,
		AllocatedOuterHeight: Unset,
		AllocatedInnerWidth:  Unset,
		AllocatedInnerHeight: Unset,
		OuterLeft:            Unset,
		OuterTop:             Unset,
		InnerLeft:            Unset,
		InnerTop:             Unset,
		Aux:                  map[string]any{},
	}
}

// UnmarshalJSON decodes into a record whose fields all start at [Unset],
// so a partial payload leaves unreported fields at the sentinel rather
// than zero. Clients routinely report only the fields they measured.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = *NewRecord()
	type plain Record
	return json.Unmarshal(data, (*plain)(r))
}

// Field names a single scalar of a [Record] and can read and write it.
// Having the field set in one place keeps validation, diffing, tabular
// display, and fixture loading in agreement about what a record contains.
type Field struct {
	Name string
	Get  func(*Record) float64
	Set  func(*Record, float64)
}

// Fields lists every scalar field of a [Record], in presentation order.
var Fields = []Field{
	{"natural_width", func(r *Record) float64 { return r.NaturalWidth }, func(r *Record, v float64) { r.NaturalWidth = v }},
	{"natural_height", func(r *Record) float64 { return r.NaturalHeight }, func(r *Record, v float64) { r.NaturalHeight = v }},
	{"requested_inner_width", func(r *Record) float64 { return r.RequestedInnerWidth }, func(r *Record, v float64) { r.RequestedInnerWidth = v }},
	{"requested_inner_height", func(r *Record) float64 { return r.RequestedInnerHeight }, func(r *Record, v float64) { r.RequestedInnerHeight = v }},
	{"requested_outer_width", func(r *Record) float64 { return r.RequestedOuterWidth }, func(r *Record, v float64) { r.RequestedOuterWidth = v }},
	{"requested_outer_height", func(r *Record) float64 { return r.RequestedOuterHeight }, func(r *Record, v float64) { r.RequestedOuterHeight = v }},
	{"allocated_outer_width", func(r *Record) float64 { return r.AllocatedOuterWidth }, func(r *Record, v float64) { r.AllocatedOuterWidth = v }},
	{"allocated_outer_height", func(r *Record) float64 { return r.AllocatedOuterHeight }, func(r *Record, v float64) { r.AllocatedOuterHeight = v }},
	{"allocated_inner_width", func(r *Record) float64 { return r.AllocatedInnerWidth }, func(r *Record, v float64) { r.AllocatedInnerWidth = v }},
	{"allocated_inner_height", func(r *Record) float64 { return r.AllocatedInnerHeight }, func(r *Record, v float64) { r.AllocatedInnerHeight = v }},
	{"left_in_viewport_outer", func(r *Record) float64 { return r.OuterLeft }, func(r *Record, v float64) { r.OuterLeft = v }},
	{"top_in_viewport_outer", func(r *Record) float64 { return r.OuterTop }, func(r *Record, v float64) { r.OuterTop = v }},
	{"left_in_viewport_inner", func(r *Record) float64 { return r.InnerLeft }, func(r *Record, v float64) { r.InnerLeft = v }},
	{"top_in_viewport_inner", func(r *Record) float64 { return r.InnerTop }, func(r *Record, v float64) { r.InnerTop = v }},
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		m[f.Name] = f
	}
	return m
}()

// FieldByName resolves a record field by its wire name.
func FieldByName(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// Validate reports an error naming every field still left at [Unset].
func (r *Record) Validate() error {
	var unset []string
	for _, f := range Fields {
		if f.Get(r) == Unset {
			unset = append(unset, f.Name)
		}
	}
	if len(unset) > 0 {
		return fmt.Errorf("unpopulated fields: %s", strings.Join(unset, ", "))
	}
	return nil
}

// =============================================================================
// Per-Axis Access
// =============================================================================

// axis selects which of the two independent layout axes a pass operates
// on. The passes are axis-agnostic; these accessors route the shared code
// to the width or height half of a record.
type axis int

const (
	axisX axis = iota // horizontal: widths and left positions
	axisY             // vertical: heights and top positions
)

func (ax axis) String() string {
	if ax == axisX {
		return "width"
	}
	return "height"
}

func (r *Record) natural(ax axis) float64 {
	if ax == axisX {
		return r.NaturalWidth
	}
	return r.NaturalHeight
}

func (r *Record) setNatural(ax axis, v float64) {
	if ax == axisX {
		r.NaturalWidth = v
	} else {
		r.NaturalHeight = v
	}
}

func (r *Record) requestedInner(ax axis) float64 {
	if ax == axisX {
		return r.RequestedInnerWidth
	}
	return r.RequestedInnerHeight
}

func (r *Record) setRequestedInner(ax axis, v float64) {
	if ax == axisX {
		r.RequestedInnerWidth = v
	} else {
		r.RequestedInnerHeight = v
	}
}

func (r *Record) requestedOuter(ax axis) float64 {
	if ax == axisX {
		return r.RequestedOuterWidth
	}
	return r.RequestedOuterHeight
}

func (r *Record) setRequestedOuter(ax axis, v float64) {
	if ax == axisX {
		r.RequestedOuterWidth = v
	} else {
		r.RequestedOuterHeight = v
	}
}

func (r *Record) allocatedOuter(ax axis) float64 {
	if ax == axisX {
		return r.AllocatedOuterWidth
	}
	return r.AllocatedOuterHeight
}

func (r *Record) setAllocatedOuter(ax axis, v float64) {
	if ax == axisX {
		r.AllocatedOuterWidth = v
	} else {
		r.AllocatedOuterHeight = v
	}
}

func (r *Record) allocatedInner(ax axis) float64 {
	if ax == axisX {
		return r.AllocatedInnerWidth
	}
	return r.AllocatedInnerHeight
}

func (r *Record) setAllocatedInner(ax axis, v float64) {
	if ax == axisX {
		r.AllocatedInnerWidth = v
	} else {
		r.AllocatedInnerHeight = v
	}
}

func (r *Record) outerPos(ax axis) float64 {
	if ax == axisX {
		return r.OuterLeft
	}
	return r.OuterTop
}

func (r *Record) setOuterPos(ax axis, v float64) {
	if ax == axisX {
		r.OuterLeft = v
	} else {
		r.OuterTop = v
	}
}

func (r *Record) innerPos(ax axis) float64 {
	if ax == axisX {
		return r.InnerLeft
	}
	return r.InnerTop
}

func (r *Record) setInnerPos(ax axis, v float64) {
	if ax == axisX {
		r.InnerLeft = v
	} else {
		r.InnerTop = v
	}
}
