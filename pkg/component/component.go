package component

// ID identifies a component within one tree snapshot. IDs are assigned by
// whoever owns the tree and must be unique and stable for the snapshot's
// lifetime; layout results are keyed by them.
type ID int

// Margin holds the four margins of a component in layout units.
// Margins are non-negative and additive: a component's outer extent on an
// axis is its inner extent plus both margins of that axis.
type Margin struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// =============================================================================
// Size Constraint
// =============================================================================

// Size is a per-axis size constraint: either natural (the component is as
// large as its content) or a fixed minimum in layout units.
// The zero value is natural.
type Size struct {
	min   float64
	fixed bool
}

// Natural returns the unconstrained size: the component sizes to content.
func Natural() Size { return Size{} }

// Fixed returns a size constraint with an explicit minimum.
func Fixed(min float64) Size { return Size{min: min, fixed: true} }

// Min returns the explicit minimum and whether one is set.
func (s Size) Min() (float64, bool) { return s.min, s.fixed }

// =============================================================================
// Alignment
// =============================================================================

// Align specifies how a component positions itself inside surplus space on
// one axis. The zero value fills: the component consumes all space not
// claimed by its margins. A fractional alignment keeps the component at its
// requested size and distributes leftover space before/after it; 0 is
// start-aligned, 1 is end-aligned, 0.5 is centered.
type Align struct {
	fraction float64
	set      bool
}

// Fill returns the filling alignment.
func Fill() Align { return Align{} }

// At returns a fractional alignment. The fraction must be in [0, 1].
func At(fraction float64) Align { return Align{fraction: fraction, set: true} }

// Fraction returns the alignment fraction and whether one is set.
// When not set, the component fills.
func (a Align) Fraction() (float64, bool) { return a.fraction, a.set }

// =============================================================================
// Capability Interfaces
// =============================================================================

// Component is the capability surface layout computation consumes. All
// methods are pure accessors; implementations must not change while a
// computation is running.
type Component interface {
	ID() ID
	Kind() Kind

	// Width and Height return the explicit per-axis size constraints.
	Width() Size
	Height() Size

	Margin() Margin

	// AlignX and AlignY return the per-axis alignment.
	AlignX() Align
	AlignY() Align
}

// Primitive is a component that owns its children directly, in declared
// order. Fundamental building blocks (rows, columns, text, ...) are
// primitives.
type Primitive interface {
	Component

	// Children returns the direct children in declared order. The returned
	// slice must not be mutated.
	Children() []Component
}

// Composite is a component defined in terms of other components. Its only
// tree child is its build result.
type Composite interface {
	Component

	BuildResult() Component
}

// Container is a primitive whose layout places children along one axis.
type Container interface {
	Primitive

	// Spacing is the gap inserted between consecutive children.
	Spacing() float64

	// Proportions returns the proportional space distribution, or nil when
	// unset. Non-nil proportions are recognized but not supported by the
	// space allocator.
	Proportions() []float64
}

// TreeChildren returns the children of c as they appear in the component
// tree: a primitive's declared children, or a composite's single build
// result. Components that are neither contribute no children.
func TreeChildren(c Component) []Component {
	switch n := c.(type) {
	case Primitive:
		return n.Children()
	case Composite:
		if r := n.BuildResult(); r != nil {
			return []Component{r}
		}
	}
	return nil
}
