package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top bar: menu toggle, brand, screen title on the
// left and the role plus profile shortcut on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	toggle := bg.Render("☰", styles.MutedText)
	if m.menu.IsOpen() {
		toggle = bg.Render("☰", styles.AccentText.Bold(true))
	}
	left := toggle + sep +
		bg.Render("minimarket", styles.Brand) + sep +
		bg.Render("›", styles.FaintText) + bg.Space() +
		bg.Render(screenTitle(m.route), styles.Text.Bold(true))

	role := m.menu.Label()
	roleStyle := styles.MutedText
	if m.session().Authenticated {
		roleStyle = styles.AccentText
	}
	right := bg.Render(role, roleStyle) + sep + bg.Render("◉", styles.AccentText)

	// Header has one cell of padding on each side.
	inner := m.width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.Header.Width(m.width).Render(left)
	}
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// renderCommandBar renders key hints for the active layer.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.menu.IsOpen() && !m.menu.Closing():
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"p", "Profile"},
			{"esc", "Close"},
		}
	case m.onOrders() && m.orders.search.Focused():
		commands = []cmd{
			{"enter/esc", "Done"},
			{"ctrl+u", "Clear"},
		}
	case m.onOrders():
		commands = []cmd{
			{"m", "Menu"},
			{"/", "Search"},
			{"j/k", "Navigate"},
			{"h/l", "Page"},
			{"+/-", "Rows"},
			{"enter", "Details"},
			{"r", "Reload"},
			{"?", "More"},
		}
	default:
		for _, b := range m.keys.ShortHelp() {
			h := b.Help()
			commands = append(commands, cmd{h.Key, h.Desc})
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}
