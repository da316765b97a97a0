package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// drawerWidth is the panel width for the current terminal, leaving
// DrawerMinContent columns of the screen visible.
func (m Model) drawerWidth() int {
	return max(min(DrawerWidth, m.width-DrawerMinContent), min(m.width, 12))
}

// renderDrawerPanel renders the fully open panel.
func (m Model) renderDrawerPanel(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	inner := max(width-3, 1)

	lines := []string{
		"",
		bg.Space() + bg.Render("minimarket", styles.Brand),
		bg.Space() + bg.Render(m.menu.Label(), styles.MutedText),
	}
	if s := m.session(); s.Authenticated && s.Email != "" {
		lines = append(lines, bg.Space()+bg.Render(truncate(s.Email, inner), styles.FaintText))
	}
	lines = append(lines, bg.Space()+bg.Render(strings.Repeat("─", inner), styles.FaintText), "")

	for i, item := range m.menu.Items() {
		label := fit(item.Icon+"  "+item.Label, inner)
		style := styles.Text
		if item.SignOut {
			style = styles.DangerText
		}
		if i == m.menu.Cursor() {
			lines = append(lines, bg.Space()+m.theme.Styles().Selected.Render(label))
			continue
		}
		lines = append(lines, bg.Space()+bg.Render(label, style))
	}

	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines[:max(height-1, 0)], bg.Space()+bg.Render("esc close", styles.FaintText))

	panel := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.FocusBg)).
		Width(width - 1)
	border := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.BorderFocus)).
		Background(lipgloss.Color(m.theme.FocusBg))

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = panel.Render(ansi.Truncate(line, width-1, "")) + border.Render("│")
	}
	return strings.Join(out, "\n")
}

// overlayDrawer slides the panel in from the left by the animation progress.
// The uncovered content is dimmed while the drawer shows.
func (m Model) overlayDrawer(content string, height int) string {
	width := m.drawerWidth()
	visible := int(math.Round(m.menu.Progress() * float64(width)))
	if visible <= 0 {
		return content
	}

	panelLines := strings.Split(m.renderDrawerPanel(width, height), "\n")
	contentLines := strings.Split(content, "\n")
	dim := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Faint)).
		Background(lipgloss.Color(m.theme.Background))

	out := make([]string, 0, len(contentLines))
	for i, line := range contentLines {
		var panel string
		if i < len(panelLines) {
			// The rightmost visible cells of the panel are on screen.
			panel = ansi.Cut(panelLines[i], width-visible, width)
		}
		rest := ansi.Strip(ansi.Cut(line, visible, m.width))
		out = append(out, panel+dim.Render(padRight(rest, m.width-visible)))
	}
	return strings.Join(out, "\n")
}
