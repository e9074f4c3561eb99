package export

import (
	"fmt"
	"io"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

// LabelFunc produces the display line for one component.
type LabelFunc func(component.Component) string

// DefaultLabel shows kind and id, e.g. "Row #4".
func DefaultLabel(c component.Component) string {
	return fmt.Sprintf("%s #%d", c.Kind(), c.ID())
}

// GeometryLabel extends [DefaultLabel] with the computed inner position
// and size from a finished layout run.
func GeometryLabel(ly *layouter.Layouter) LabelFunc {
	return func(c component.Component) string {
		rec, ok := ly.Should()[c.ID()]
		if !ok {
			return DefaultLabel(c)
		}
		return fmt.Sprintf("%s  (%.1f, %.1f) %.1fx%.1f",
			DefaultLabel(c), rec.InnerLeft, rec.InnerTop,
			rec.AllocatedInnerWidth, rec.AllocatedInnerHeight)
	}
}

// WriteTree writes the component tree as indented lines with box-drawing
// connectors. A nil label falls back to [DefaultLabel].
func WriteTree(w io.Writer, root component.Component, label LabelFunc) error {
	if label == nil {
		label = DefaultLabel
	}
	if _, err := fmt.Fprintln(w, label(root)); err != nil {
		return err
	}
	return writeBranch(w, root, "", label)
}

func writeBranch(w io.Writer, c component.Component, prefix string, label LabelFunc) error {
	children := component.TreeChildren(c)
	for i, child := range children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		if _, err := fmt.Fprintln(w, prefix+connector+label(child)); err != nil {
			return err
		}
		if err := writeBranch(w, child, childPrefix, label); err != nil {
			return err
		}
	}
	return nil
}
