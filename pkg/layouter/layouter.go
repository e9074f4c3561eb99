package layouter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/observability"
)

// Snapshot is what the rendering client reports: the window dimensions and
// one measured [Record] per component. It is the ground truth for the
// default strategies and the comparison baseline for everything else.
type Snapshot struct {
	WindowWidth  float64                  `json:"window_width"`
	WindowHeight float64                  `json:"window_height"`
	Records      map[component.ID]*Record `json:"records"`
}

// Source supplies the client snapshot. Fetch is called exactly once per
// computation and is the only point where a Layouter blocks; everything
// after it is a deterministic in-memory pass.
type Source interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// DesyncError is the fatal disagreement between the component tree and the
// client report: the two id sets differ. Both directions are reported
// distinctly because they point at different bugs (components the client
// never mounted vs. components the server no longer knows).
type DesyncError struct {
	// Missing ids are reachable from the root but absent from the report.
	Missing []component.ID
	// Superfluous ids were reported but are not reachable from the root.
	Superfluous []component.ID
}

func (e *DesyncError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing from client report: %v", e.Missing))
	}
	if len(e.Superfluous) > 0 {
		parts = append(parts, fmt.Sprintf("superfluous in client report: %v", e.Superfluous))
	}
	return "component trees out of sync: " + strings.Join(parts, "; ")
}

// Layouter holds one finished computation: the component order, the window
// dimensions, and the two record maps. Construction via [New] runs the
// whole computation; a Layouter is immutable afterwards.
type Layouter struct {
	// RunID identifies this computation run in exports and snapshots.
	RunID uuid.UUID

	WindowWidth  float64
	WindowHeight float64

	root  component.Component
	order []component.Component // parents before children
	byID  map[component.ID]component.Component

	should map[component.ID]*Record // computed here
	are    map[component.ID]*Record // measured by the client
}

// New fetches the client snapshot from src and computes the authoritative
// layout for the tree under root. It fails with a [DesyncError]-carrying
// error when tree and report disagree on ids, with
// [errors.ErrCodeUnsupportedProportions] when a linear container requests
// proportional distribution, and with [errors.ErrCodeUnpopulatedRecord]
// when a record survives both passes with a sentinel left (a bug, not an
// input condition).
func New(ctx context.Context, root component.Component, src Source) (_ *Layouter, err error) {
	ly := &Layouter{
		RunID: uuid.New(),
		root:  root,
		order: component.Walk(root),
		byID:  map[component.ID]component.Component{},
	}
	for _, c := range ly.order {
		ly.byID[c.ID()] = c
	}

	start := time.Now()
	observability.Layout().OnComputeStart(ctx, ly.RunID.String(), len(ly.order))
	defer func() {
		observability.Layout().OnComputeComplete(ctx, ly.RunID.String(), time.Since(start), err)
	}()

	// The single suspension point: everything below is synchronous.
	snap, err := src.Fetch(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch client layout snapshot")
	}

	ly.WindowWidth = snap.WindowWidth
	ly.WindowHeight = snap.WindowHeight
	ly.are = snap.Records

	if err := ly.checkSync(); err != nil {
		return nil, err
	}

	ly.should = make(map[component.ID]*Record, len(ly.order))
	for _, c := range ly.order {
		ly.should[c.ID()] = NewRecord()
	}

	logger := log.FromContext(ctx)
	logger.Debug("computing layout",
		"run", ly.RunID,
		"components", len(ly.order),
		"window_width", ly.WindowWidth,
		"window_height", ly.WindowHeight)

	// Width is fully resolved before height begins: vertical natural
	// sizing (wrapped text, aspect ratios) depends on final widths.
	for _, ax := range []axis{axisX, axisY} {
		if err := ly.computeAxis(ax); err != nil {
			return nil, err
		}
		logger.Debug("axis resolved", "axis", ax.String())
	}

	if err := ly.validate(); err != nil {
		return nil, err
	}

	return ly, nil
}

// checkSync verifies the tree's id set and the report's id set are
// identical. Any discrepancy is fatal: the client and server disagree on
// tree structure and computed layouts would be meaningless.
func (ly *Layouter) checkSync() error {
	desync := &DesyncError{}

	for _, c := range ly.order {
		if _, ok := ly.are[c.ID()]; !ok {
			desync.Missing = append(desync.Missing, c.ID())
		}
	}
	for id := range ly.are {
		if _, ok := ly.byID[id]; !ok {
			desync.Superfluous = append(desync.Superfluous, id)
		}
	}

	if len(desync.Missing) == 0 && len(desync.Superfluous) == 0 {
		return nil
	}

	sort.Slice(desync.Missing, func(i, j int) bool { return desync.Missing[i] < desync.Missing[j] })
	sort.Slice(desync.Superfluous, func(i, j int) bool { return desync.Superfluous[i] < desync.Superfluous[j] })
	return errors.Wrap(errors.ErrCodeDesync, desync, "client report does not match component tree")
}

// computeAxis runs the four phases for one axis.
func (ly *Layouter) computeAxis(ax axis) error {
	// 1. Natural and requested sizes, children before parents.
	for i := len(ly.order) - 1; i >= 0; i-- {
		c := ly.order[i]
		rec := ly.should[c.ID()]

		rec.setNatural(ax, strategyFor(c.Kind()).naturalSize(ly, c, ax))

		min, _ := sizeOf(c, ax).Min() // zero when the size is natural
		rec.setRequestedInner(ax, max(rec.natural(ax), min))

		marginStart, marginEnd := marginsOf(c, ax)
		rec.setRequestedOuter(ax, rec.requestedInner(ax)+marginStart+marginEnd)
	}

	// 2. Seed the root: content may force the viewport to grow beyond the
	// window (scrolling), never shrink below it.
	rootRec := ly.should[ly.root.ID()]
	rootRec.setOuterPos(ax, 0)
	rootRec.setAllocatedOuter(ax, max(ly.window(ax), rootRec.requestedOuter(ax)))

	// 3. Allocation, parents before children: align self, then distribute
	// to children. Each component's allocated outer size and outer
	// position were assigned by its parent before this loop reaches it.
	for _, c := range ly.order {
		rec := ly.should[c.ID()]

		marginStart, marginEnd := marginsOf(c, ax)
		offset, size := AlignedSpan(rec.allocatedOuter(ax), rec.requestedInner(ax), marginStart, marginEnd, alignOf(c, ax))
		rec.setInnerPos(ax, rec.outerPos(ax)+offset)
		rec.setAllocatedInner(ax, size)

		if err := strategyFor(c.Kind()).allocate(ly, c, ax); err != nil {
			return err
		}
	}

	return nil
}

// validate ensures both passes populated every field of every record.
func (ly *Layouter) validate() error {
	for _, c := range ly.order {
		if err := ly.should[c.ID()].Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeUnpopulatedRecord, err,
				"component %d (%s) after both passes", c.ID(), c.Kind())
		}
	}
	return nil
}

func (ly *Layouter) window(ax axis) float64 {
	if ax == axisX {
		return ly.WindowWidth
	}
	return ly.WindowHeight
}

// =============================================================================
// Accessors
// =============================================================================

// Root returns the tree root the layout was computed for.
func (ly *Layouter) Root() component.Component { return ly.root }

// Order returns the components in parents-before-children order. The
// returned slice must not be mutated.
func (ly *Layouter) Order() []component.Component { return ly.order }

// Component resolves a component by id.
func (ly *Layouter) Component(id component.ID) (component.Component, bool) {
	c, ok := ly.byID[id]
	return c, ok
}

// Should returns the authoritative records computed server-side, keyed by
// component id. The map is owned by the caller-facing read side and must
// not be mutated.
func (ly *Layouter) Should() map[component.ID]*Record { return ly.should }

// Are returns the client-measured records, keyed by component id. The map
// must not be mutated.
func (ly *Layouter) Are() map[component.ID]*Record { return ly.are }
