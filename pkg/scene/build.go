package scene

import (
	"strconv"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

// Build materializes the scene into a component tree. Every id must be
// unique across the whole tree, including build results.
func (s *Scene) Build() (component.Component, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	seen := map[component.ID]bool{}
	return buildNode(s.Root, seen)
}

func buildNode(spec *NodeSpec, seen map[component.ID]bool) (component.Component, error) {
	id := component.ID(spec.ID)
	if seen[id] {
		return nil, errors.New(errors.ErrCodeInvalidScene, "duplicate component id %d", id)
	}
	seen[id] = true

	opts, err := nodeOptions(spec)
	if err != nil {
		return nil, err
	}

	if spec.Build != nil {
		if len(spec.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene,
				"component %d has both a build result and children", id)
		}
		if spec.Kind != "" && spec.Kind != component.KindCustom.String() {
			return nil, errors.New(errors.ErrCodeInvalidKind,
				"component %d declares a build result but kind %q", id, spec.Kind)
		}
		build, err := buildNode(spec.Build, seen)
		if err != nil {
			return nil, err
		}
		return component.NewCustom(id, build, opts...), nil
	}

	kind, err := component.ParseKind(spec.Kind)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidKind, err, "component %d", id)
	}
	if kind == component.KindCustom {
		return nil, errors.New(errors.ErrCodeInvalidScene,
			"component %d is Custom but has no build result", id)
	}

	children := make([]component.Component, 0, len(spec.Children))
	for i := range spec.Children {
		child, err := buildNode(&spec.Children[i], seen)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return component.New(id, kind, children, opts...), nil
}

func nodeOptions(spec *NodeSpec) ([]component.Option, error) {
	var opts []component.Option
	if spec.Width != nil {
		opts = append(opts, component.WithWidth(*spec.Width))
	}
	if spec.Height != nil {
		opts = append(opts, component.WithHeight(*spec.Height))
	}
	switch len(spec.Margin) {
	case 0:
	case 1:
		m := spec.Margin[0]
		opts = append(opts, component.WithMargin(m, m, m, m))
	case 4:
		m := spec.Margin
		opts = append(opts, component.WithMargin(m[0], m[1], m[2], m[3]))
	default:
		return nil, errors.New(errors.ErrCodeInvalidScene,
			"component %d margin needs 1 or 4 values, got %d", spec.ID, len(spec.Margin))
	}
	if spec.AlignX != nil {
		opts = append(opts, component.WithAlignX(component.At(*spec.AlignX)))
	}
	if spec.AlignY != nil {
		opts = append(opts, component.WithAlignY(component.At(*spec.AlignY)))
	}
	if spec.Spacing != 0 {
		opts = append(opts, component.WithSpacing(spec.Spacing))
	}
	if spec.Proportions != nil {
		opts = append(opts, component.WithProportions(spec.Proportions))
	}
	return opts, nil
}

// Snapshot converts the embedded report into a layout snapshot. Fields the
// report leaves out stay unset; the window defaults to the scene window.
func (s *Scene) Snapshot() (*layouter.Snapshot, error) {
	if !s.HasReport() {
		return nil, errors.New(errors.ErrCodeInvalidScene, "scene %q embeds no report", s.Name)
	}

	records := make(map[component.ID]*layouter.Record, len(s.Report))
	for rawID, values := range s.Report {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidScene,
				"report key %q is not a component id", rawID)
		}
		rec := layouter.NewRecord()
		for name, value := range values {
			field, ok := layouter.FieldByName(name)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidScene,
					"report for component %d has unknown field %q", id, name)
			}
			field.Set(rec, value)
		}
		records[component.ID(id)] = rec
	}

	return &layouter.Snapshot{
		WindowWidth:  s.Window.Width,
		WindowHeight: s.Window.Height,
		Records:      records,
	}, nil
}
