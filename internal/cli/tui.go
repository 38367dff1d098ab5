package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/modgraph/pkg/graph"
	"github.com/matzehuels/modgraph/pkg/inventory"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ModListModel - Interactive mod selection
// =============================================================================

// modRow is one selectable mod in the browser.
type modRow struct {
	ID         string
	Source     string
	Declared   bool
	Deps       int
	Dependents int
}

// ModListModel is the bubbletea model for interactive mod selection.
type ModListModel struct {
	Mods     []modRow
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewModListModel creates a list with one row per graph node.
func NewModListModel(g *graph.Graph) ModListModel {
	rows := make([]modRow, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		source, _ := n.Meta["source"].(string)
		rows = append(rows, modRow{
			ID:         n.ID,
			Source:     source,
			Declared:   inventory.IsDeclared(g, n.ID),
			Deps:       g.OutDegree(n.ID),
			Dependents: g.InDegree(n.ID),
		})
	}
	return ModListModel{Mods: rows, Height: 15}
}

func (m ModListModel) Init() tea.Cmd {
	return nil
}

func (m ModListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Mods)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Mods) == 0 {
				return m, nil
			}
			m.Selected = m.Mods[m.Cursor].ID
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ModListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Mod"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Mods))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Mods[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		archive := "not installed"
		if r.Declared {
			archive = filepath.Base(r.Source)
		}
		rows = append(rows, []string{cursor, r.ID, archive, strconv.Itoa(r.Deps), strconv.Itoa(r.Dependents)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Mod", "Archive", "Deps", "Used by").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}

			idx := m.Offset + row
			if idx >= len(m.Mods) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.Mods[idx].Declared {
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Mods))))

	return b.String()
}
