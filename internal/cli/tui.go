package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// InspectModel - Interactive record browser
// =============================================================================

// InspectModel is the bubbletea model for browsing a finished computation:
// a scrollable component list on top and the selected component's records
// below, with disagreeing fields highlighted.
type InspectModel struct {
	Layouter  *layouter.Layouter
	Tolerance float64

	components []component.Component
	mismatched map[component.ID]bool
	Cursor     int
	Height     int
	Offset     int
}

// NewInspectModel creates an inspect model over a finished computation.
func NewInspectModel(ly *layouter.Layouter, tolerance float64) InspectModel {
	mismatched := map[component.ID]bool{}
	for _, m := range ly.Diff(tolerance) {
		mismatched[m.ID] = true
	}
	return InspectModel{
		Layouter:   ly,
		Tolerance:  tolerance,
		components: ly.Order(),
		mismatched: mismatched,
		Height:     10,
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.components)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the record table below the list.
		m.Height = msg.Height - 22
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.components) {
		end = len(m.components)
	}

	for i := m.Offset; i < end; i++ {
		c := m.components[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		status := StyleSuccess.Render(iconSuccess)
		if m.mismatched[c.ID()] {
			status = StyleError.Render(iconError)
		}

		line := fmt.Sprintf("%s%s %s #%d", cursor, status, c.Kind(), c.ID())
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if m.mismatched[c.ID()] {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.recordTable())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.components))))

	return b.String()
}

// recordTable renders the selected component's computed and measured
// records side by side.
func (m InspectModel) recordTable() string {
	c := m.components[m.Cursor]
	should := m.Layouter.Should()[c.ID()]
	are := m.Layouter.Are()[c.ID()]

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	disagree := map[int]bool{}
	for i, f := range layouter.Fields {
		sv, av := f.Get(should), f.Get(are)
		delta := "—"
		if av != layouter.Unset {
			delta = fmt.Sprintf("%.1f", math.Abs(sv-av))
			if math.Abs(sv-av) > m.Tolerance {
				disagree[i] = true
			}
		}
		rows = append(rows, []string{f.Name, fmtField(sv), fmtField(av), delta})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Field", "Should", "Are", "Delta").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if disagree[row] {
				return StyleError
			}
			if col == 0 {
				return listDimStyle
			}
			return StyleValue
		}).
		Render()
}

func fmtField(v float64) string {
	if v == layouter.Unset {
		return "—"
	}
	return fmt.Sprintf("%.1f", v)
}
