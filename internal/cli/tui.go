package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	defaultBrowserWidth  = 80
	defaultBrowserHeight = 15
	minBarWidth          = 10
)

// =============================================================================
// TreeBrowserModel - Interactive zoomable tree view
// =============================================================================

// TreeBrowserModel is the bubbletea model for browsing a metric tree. It is
// the terminal counterpart of the SVG zoom: entering a frame makes it the
// new full-width root, leaving it restores the parent.
type TreeBrowserModel struct {
	// Path holds the zoomed frames from the tree root to the current frame.
	Path   []tree.Node
	Cursor int
	Offset int
	Height int
	Width  int
	Colors styles.ColorFunc

	// cursors remembers the selection of each ancestor for unzoom.
	cursors []int
}

// NewTreeBrowserModel creates a browser rooted at root.
func NewTreeBrowserModel(root tree.Node, colors styles.ColorFunc) TreeBrowserModel {
	if colors == nil {
		colors = styles.Default()
	}
	return TreeBrowserModel{
		Path:   []tree.Node{root},
		Height: defaultBrowserHeight,
		Width:  defaultBrowserWidth,
		Colors: colors,
	}
}

// Current returns the zoomed frame.
func (m TreeBrowserModel) Current() tree.Node {
	return m.Path[len(m.Path)-1]
}

func (m TreeBrowserModel) children() []tree.Node {
	var out []tree.Node
	for _, c := range m.Current().Children() {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (m TreeBrowserModel) Init() tea.Cmd {
	return nil
}

func (m TreeBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		kids := m.children()
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
			if m.Cursor < len(kids)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", "right", "l":
			if len(kids) == 0 {
				return m, nil
			}
			m.Path = append(m.Path[:len(m.Path):len(m.Path)], kids[m.Cursor])
			m.cursors = append(m.cursors, m.Cursor)
			m.Cursor, m.Offset = 0, 0
		case "backspace", "left", "h":
			m = m.unzoom(false)
		case "r":
			m = m.unzoom(true)
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// unzoom pops one level, or all levels when toRoot is set.
func (m TreeBrowserModel) unzoom(toRoot bool) TreeBrowserModel {
	for len(m.Path) > 1 {
		m.Path = m.Path[:len(m.Path)-1]
		m.Cursor = m.cursors[len(m.cursors)-1]
		m.cursors = m.cursors[:len(m.cursors)-1]
		if !toRoot {
			break
		}
	}
	m.Offset = 0
	if m.Cursor >= m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m
}

func (m TreeBrowserModel) View() string {
	var b strings.Builder

	labels := make([]string, len(m.Path))
	for i, n := range m.Path {
		labels[i] = n.Label()
	}
	b.WriteString(StyleTitle.Render(strings.Join(labels, " › ")))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ zoom  ⌫ unzoom  r reset  q quit"))
	b.WriteString("\n\n")

	cur := m.Current()
	kids := m.children()
	if len(kids) == 0 {
		b.WriteString(listDimStyle.Render("  (leaf frame)"))
		b.WriteString("\n")
	}

	end := m.Offset + m.Height
	if end > len(kids) {
		end = len(kids)
	}
	barWidth := m.Width - 40
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	for i := m.Offset; i < end; i++ {
		b.WriteString(m.row(kids[i], cur.Metric(), barWidth, i == m.Cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s %s", formatMetric(cur.Metric()), positionLabel(m.Cursor, len(kids)))))
	return b.String()
}

func (m TreeBrowserModel) row(n tree.Node, total float64, barWidth int, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}
	share := 0.0
	if total > 0 {
		share = n.Metric() / total
	}
	cells := int(share*float64(barWidth) + 0.5)
	if cells > barWidth {
		cells = barWidth
	}
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styles.Hex(m.Colors(n)))).
		Render(strings.Repeat("█", cells)) + strings.Repeat(" ", barWidth-cells)

	label := styles.FitLabel(n.Label(), float64(24)*styles.FontSize*styles.GlyphWidthRatio)
	text := fmt.Sprintf("%s%-24s %s %5.1f%%", cursor, label, bar, share*100)
	if selected {
		return listSelectedStyle.Render(text)
	}
	return listNormalStyle.Render(text)
}

// =============================================================================
// Helpers
// =============================================================================

func formatMetric(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func positionLabel(cursor, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("[%d/%d]", cursor+1, total)
}
