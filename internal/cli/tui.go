package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// VibeListModel - Interactive vibe selection
// =============================================================================

// VibeListModel is the bubbletea model for interactive vibe selection.
type VibeListModel struct {
	Vibes    []vibe.Constraints
	Cursor   int
	Selected *vibe.Constraints
	Height   int
	Offset   int
}

// NewVibeListModel creates a vibe list model.
func NewVibeListModel(vibes []vibe.Constraints) VibeListModel {
	return VibeListModel{Vibes: vibes, Height: 15}
}

func (m VibeListModel) Init() tea.Cmd {
	return nil
}

func (m VibeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Vibes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Vibes) == 0 {
				return m, tea.Quit
			}
			v := m.Vibes[m.Cursor]
			m.Selected = &v
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m VibeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Vibe"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Vibes))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		v := m.Vibes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		decor := ""
		if v.Preferences.DecorativeElements {
			decor = "✓"
		}
		rows = append(rows, []string{
			cursor,
			v.Name,
			fmt.Sprintf("%.0f%%", v.MinWhitespace),
			string(v.Symmetry),
			string(v.Preferences.ElementDensity),
			decor,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Vibe", "Whitespace", "Symmetry", "Density", "Decor").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Vibes) > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.Vibes), m.Vibes[m.Cursor].ID)))
	}

	return b.String()
}
