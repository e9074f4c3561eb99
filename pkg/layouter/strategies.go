package layouter

import "github.com/drodenkirchen/rio/pkg/component"

// strategy is the per-kind layout behavior. naturalSize runs during the
// bottom-up pass and may assume every tree child already has its requested
// size on ax. allocate runs during the top-down pass and may assume c
// already has its allocated sizes and inner position on ax; it must assign
// the allocated outer size and outer position on ax to every tree child.
type strategy interface {
	naturalSize(ly *Layouter, c component.Component, ax axis) float64
	allocate(ly *Layouter, c component.Component, ax axis) error
}

// The pass-through strategy is shared by every full-size single container
// rather than implemented once per kind; they all behave identically.
var (
	defaultStrat     strategy = defaultStrategy{}
	passThroughStrat strategy = passThroughStrategy{}
	rowStrat         strategy = linearStrategy{major: axisX}
	columnStrat      strategy = linearStrategy{major: axisY}
	overlayStrat     strategy = overlayStrategy{}
)

// strategyFor maps a component kind to its layout strategy. Kinds without
// specialized behavior get the default: trust what the client measured.
func strategyFor(kind component.Kind) strategy {
	switch kind {
	case component.KindRow:
		return rowStrat
	case component.KindColumn:
		return columnStrat
	case component.KindOverlay:
		return overlayStrat
	case component.KindRoot,
		component.KindButton,
		component.KindCard,
		component.KindContainer,
		component.KindCustomListItem,
		component.KindKeyEventListener,
		component.KindLink,
		component.KindMouseEventListener,
		component.KindPageView,
		component.KindRectangle,
		component.KindSlideshow,
		component.KindStack,
		component.KindSwitcher:
		return passThroughStrat
	default:
		return defaultStrat
	}
}

// =============================================================================
// Default: Trust the Client
// =============================================================================

// defaultStrategy covers leaves and unspecialized kinds. Their true sizing
// logic (text metrics, image decoding, ...) lives on the rendering client
// and is not reimplemented server-side; the client-measured values are
// taken verbatim.
type defaultStrategy struct{}

func (defaultStrategy) naturalSize(ly *Layouter, c component.Component, ax axis) float64 {
	return ly.are[c.ID()].natural(ax)
}

func (defaultStrategy) allocate(ly *Layouter, c component.Component, ax axis) error {
	for _, child := range component.TreeChildren(c) {
		should := ly.should[child.ID()]
		are := ly.are[child.ID()]
		should.setAllocatedOuter(ax, are.allocatedOuter(ax))
		should.setOuterPos(ax, are.outerPos(ax))
	}
	return nil
}

// =============================================================================
// Pass-Through Containers
// =============================================================================

// passThroughStrategy hands the container's entire allocated inner space
// to its content on both axes. Natural size is the largest child request,
// so the container is exactly as big as its content needs.
type passThroughStrategy struct{}

func (passThroughStrategy) naturalSize(ly *Layouter, c component.Component, ax axis) float64 {
	natural := 0.0
	for _, child := range component.TreeChildren(c) {
		natural = max(natural, ly.should[child.ID()].requestedOuter(ax))
	}
	return natural
}

func (passThroughStrategy) allocate(ly *Layouter, c component.Component, ax axis) error {
	rec := ly.should[c.ID()]
	for _, child := range component.TreeChildren(c) {
		should := ly.should[child.ID()]
		should.setOuterPos(ax, rec.innerPos(ax))
		should.setAllocatedOuter(ax, rec.allocatedInner(ax))
	}
	return nil
}

// =============================================================================
// Linear Containers
// =============================================================================

// linearStrategy lays children out sequentially along the major axis and
// fills them on the cross axis. major is axisX for rows, axisY for
// columns.
type linearStrategy struct {
	major axis
}

func (s linearStrategy) naturalSize(ly *Layouter, c component.Component, ax axis) float64 {
	children := component.TreeChildren(c)

	if ax != s.major {
		// Cross axis: as tall/wide as the largest child.
		natural := 0.0
		for _, child := range children {
			natural = max(natural, ly.should[child.ID()].requestedOuter(ax))
		}
		return natural
	}

	sizes := make([]float64, len(children))
	for i, child := range children {
		sizes[i] = ly.should[child.ID()].requestedOuter(ax)
	}
	return linearNatural(sizes, spacingOf(c))
}

func (s linearStrategy) allocate(ly *Layouter, c component.Component, ax axis) error {
	rec := ly.should[c.ID()]
	children := component.TreeChildren(c)

	if ax != s.major {
		// Cross axis: every child gets the full inner space.
		for _, child := range children {
			should := ly.should[child.ID()]
			should.setOuterPos(ax, rec.innerPos(ax))
			should.setAllocatedOuter(ax, rec.allocatedInner(ax))
		}
		return nil
	}

	sizes := make([]float64, len(children))
	for i, child := range children {
		sizes[i] = ly.should[child.ID()].requestedOuter(ax)
	}

	spans, err := linearAllocate(sizes, spacingOf(c), proportionsOf(c))
	if err != nil {
		return err
	}

	for i, child := range children {
		should := ly.should[child.ID()]
		should.setOuterPos(ax, rec.innerPos(ax)+spans[i].start)
		should.setAllocatedOuter(ax, spans[i].size)
	}
	return nil
}

// =============================================================================
// Overlay
// =============================================================================

// overlayStrategy claims no space itself and pins its content to the full
// window at the viewport origin, independent of whatever space the overlay
// was granted.
type overlayStrategy struct{}

func (overlayStrategy) naturalSize(ly *Layouter, c component.Component, ax axis) float64 {
	return 0
}

func (overlayStrategy) allocate(ly *Layouter, c component.Component, ax axis) error {
	for _, child := range component.TreeChildren(c) {
		should := ly.should[child.ID()]
		should.setOuterPos(ax, 0)
		should.setAllocatedOuter(ax, ly.window(ax))
	}
	return nil
}

// =============================================================================
// Capability Helpers
// =============================================================================

func spacingOf(c component.Component) float64 {
	if ct, ok := c.(component.Container); ok {
		return ct.Spacing()
	}
	return 0
}

func proportionsOf(c component.Component) []float64 {
	if ct, ok := c.(component.Container); ok {
		return ct.Proportions()
	}
	return nil
}

func sizeOf(c component.Component, ax axis) component.Size {
	if ax == axisX {
		return c.Width()
	}
	return c.Height()
}

func alignOf(c component.Component, ax axis) component.Align {
	if ax == axisX {
		return c.AlignX()
	}
	return c.AlignY()
}

func marginsOf(c component.Component, ax axis) (start, end float64) {
	m := c.Margin()
	if ax == axisX {
		return m.Left, m.Right
	}
	return m.Top, m.Bottom
}
