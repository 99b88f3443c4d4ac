package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	groupStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	tabStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Preview renders a compiled layout as bordered text, one line per cell,
// for debug logs and tests.
func Preview(l *Layout, reg *Registry) string {
	if l == nil {
		return ""
	}
	if !l.Tabbed() {
		return previewGrid(l.Root, reg)
	}
	pages := make([]string, 0, len(l.Tabs))
	for _, t := range l.Tabs {
		pages = append(pages, previewTab(t, reg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, pages...)
}

func previewTab(t Tab, reg *Registry) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("tab "+t.Name),
		previewGrid(t.Grid, reg),
	)
	return tabStyle.Render(body)
}

func previewGrid(g *Grid, reg *Registry) string {
	if g == nil || len(g.Cells) == 0 {
		return "(empty)"
	}
	rows, cols := g.Extent()
	lines := []string{fmt.Sprintf("grid %dx%d", rows, cols)}
	for _, c := range g.Cells {
		switch {
		case c.Group != nil:
			body := lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render(fmt.Sprintf("%s group %s", c.Placement, c.Group.Title)),
				previewGrid(c.Group.Grid, reg),
			)
			lines = append(lines, groupStyle.Render(body))
		case c.Tabs != nil:
			pages := []string{fmt.Sprintf("%s tabs", c.Placement)}
			for _, t := range c.Tabs.Pages {
				pages = append(pages, previewTab(t, reg))
			}
			lines = append(lines, lipgloss.JoinVertical(lipgloss.Left, pages...))
		default:
			lines = append(lines, fmt.Sprintf("%s %s", c.Placement, widgetName(reg, c.Widget)))
		}
	}
	return strings.Join(lines, "\n")
}

func widgetName(reg *Registry, i int) string {
	if reg == nil || i < 0 || i >= reg.Len() {
		return fmt.Sprintf("#%d", i)
	}
	if id := reg.At(i).ID; id != "" {
		return id
	}
	if c := reg.Caption(i); c != nil && c.Text != "" {
		return c.Text
	}
	return fmt.Sprintf("#%d", i)
}
