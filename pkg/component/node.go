package component

// Node is the concrete primitive component used by scene fixtures and
// tests. It implements [Container], so it can serve as any primitive kind:
// leaves simply have no children, linear containers additionally carry
// spacing and proportions.
//
// Node is constructed once and read-only afterwards; the accessors satisfy
// the capability interfaces consumed by layout computation.
type Node struct {
	id          ID
	kind        Kind
	width       Size
	height      Size
	margin      Margin
	alignX      Align
	alignY      Align
	spacing     float64
	proportions []float64
	children    []Component
}

// Option configures a [Node] or [Custom] during construction.
type Option func(*Node)

// WithWidth sets an explicit minimum width.
func WithWidth(min float64) Option {
	return func(n *Node) { n.width = Fixed(min) }
}

// WithHeight sets an explicit minimum height.
func WithHeight(min float64) Option {
	return func(n *Node) { n.height = Fixed(min) }
}

// WithMargin sets all four margins.
func WithMargin(left, top, right, bottom float64) Option {
	return func(n *Node) {
		n.margin = Margin{Left: left, Top: top, Right: right, Bottom: bottom}
	}
}

// WithAlignX sets the horizontal alignment.
func WithAlignX(a Align) Option {
	return func(n *Node) { n.alignX = a }
}

// WithAlignY sets the vertical alignment.
func WithAlignY(a Align) Option {
	return func(n *Node) { n.alignY = a }
}

// WithSpacing sets the gap between consecutive children of a linear
// container.
func WithSpacing(spacing float64) Option {
	return func(n *Node) { n.spacing = spacing }
}

// WithProportions sets an explicit proportional space distribution.
// Proportions are recognized by the data model but rejected by the space
// allocator; setting them makes layout computation fail.
func WithProportions(proportions []float64) Option {
	return func(n *Node) { n.proportions = proportions }
}

// New creates a primitive node with the given children.
func New(id ID, kind Kind, children []Component, opts ...Option) *Node {
	n := &Node{id: id, kind: kind, children: children}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Node) ID() ID                 { return n.id }
func (n *Node) Kind() Kind             { return n.kind }
func (n *Node) Width() Size            { return n.width }
func (n *Node) Height() Size           { return n.height }
func (n *Node) Margin() Margin         { return n.margin }
func (n *Node) AlignX() Align          { return n.alignX }
func (n *Node) AlignY() Align          { return n.alignY }
func (n *Node) Children() []Component  { return n.children }
func (n *Node) Spacing() float64       { return n.spacing }
func (n *Node) Proportions() []float64 { return n.proportions }

// Custom is the concrete composite component: a node whose single tree
// child is its build result. Constraints, margins and alignment apply to
// the composite itself, not to the build result.
type Custom struct {
	node  Node
	build Component
}

// NewCustom creates a composite node wrapping its build result.
func NewCustom(id ID, build Component, opts ...Option) *Custom {
	c := &Custom{node: Node{id: id, kind: KindCustom}, build: build}
	for _, opt := range opts {
		opt(&c.node)
	}
	return c
}

func (c *Custom) ID() ID                 { return c.node.id }
func (c *Custom) Kind() Kind             { return c.node.kind }
func (c *Custom) Width() Size            { return c.node.width }
func (c *Custom) Height() Size           { return c.node.height }
func (c *Custom) Margin() Margin         { return c.node.margin }
func (c *Custom) AlignX() Align          { return c.node.alignX }
func (c *Custom) AlignY() Align          { return c.node.alignY }
func (c *Custom) BuildResult() Component { return c.build }
