package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

type document struct {
	RunID        string  `json:"run_id"`
	WindowWidth  float64 `json:"window_width"`
	WindowHeight float64 `json:"window_height"`
	Components   []entry `json:"components"`
}

type entry struct {
	ID     component.ID       `json:"id"`
	Kind   string             `json:"kind"`
	Should map[string]float64 `json:"should"`
	Are    map[string]float64 `json:"are,omitempty"`
}

// WriteJSON encodes the computation as JSON and writes it to w. Components
// are ordered by id and every value is rounded to one decimal, so two runs
// over the same inputs produce byte-identical output.
func WriteJSON(ly *layouter.Layouter, w io.Writer) error {
	out := document{
		RunID:        ly.RunID.String(),
		WindowWidth:  ly.WindowWidth,
		WindowHeight: ly.WindowHeight,
	}

	order := append([]component.Component(nil), ly.Order()...)
	sort.Slice(order, func(i, j int) bool { return order[i].ID() < order[j].ID() })

	for _, c := range order {
		out.Components = append(out.Components, entry{
			ID:     c.ID(),
			Kind:   c.Kind().String(),
			Should: fieldMap(ly.Should()[c.ID()]),
			Are:    fieldMap(ly.Are()[c.ID()]),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the computation to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(ly *layouter.Layouter, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(ly, f)
}

func fieldMap(rec *layouter.Record) map[string]float64 {
	if rec == nil {
		return nil
	}
	m := make(map[string]float64, len(layouter.Fields))
	for _, f := range layouter.Fields {
		m[f.Name] = round1(f.Get(rec))
	}
	return m
}

// round1 rounds to one decimal, matching the precision clients report at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
