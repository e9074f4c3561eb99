// Package scene loads component trees from TOML scene files.
//
// A scene is a declarative fixture: the component tree a client would
// have sent, plus the window size and, optionally, the client-measured
// layout report for that tree. Scenes make layout behavior reproducible
// without a live client on the other end.
package scene

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/drodenkirchen/rio/pkg/errors"
)

// Scene is a parsed scene file.
type Scene struct {
	// Name identifies the scene in logs and snapshot keys.
	Name string `toml:"name"`

	// Window is the viewport the tree is laid out in.
	Window WindowSpec `toml:"window"`

	// Root is the root of the component tree.
	Root *NodeSpec `toml:"root"`

	// Report optionally embeds the client-measured layout, keyed by
	// component id. Field names match the wire names of a layout record.
	Report map[string]map[string]float64 `toml:"report"`
}

// WindowSpec is the viewport size in layout units.
type WindowSpec struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// NodeSpec describes one component. Exactly one of Children and Build may
// be present: Children makes the node a primitive, Build a composite whose
// single tree child is its build result.
type NodeSpec struct {
	ID   int    `toml:"id"`
	Kind string `toml:"kind"`

	// Width and Height are explicit minimum sizes. Absent means the
	// natural size is the minimum.
	Width  *float64 `toml:"width"`
	Height *float64 `toml:"height"`

	// Margin is either one value for all four sides or four values in
	// left, top, right, bottom order.
	Margin []float64 `toml:"margin"`

	// AlignX and AlignY are alignment fractions in [0, 1]. Absent means
	// the component grows to fill its allocation on that axis.
	AlignX *float64 `toml:"align_x"`
	AlignY *float64 `toml:"align_y"`

	Spacing     float64   `toml:"spacing"`
	Proportions []float64 `toml:"proportions"`

	Children []NodeSpec `toml:"children"`
	Build    *NodeSpec  `toml:"build"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "scene file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses TOML scene data.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "scene is not valid TOML")
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Scene) validate() error {
	if s.Root == nil {
		return errors.New(errors.ErrCodeInvalidScene, "scene has no root component")
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene,
			"scene window must be positive, got %gx%g", s.Window.Width, s.Window.Height)
	}
	return nil
}

// HasReport reports whether the scene embeds a client layout report.
func (s *Scene) HasReport() bool { return len(s.Report) > 0 }
