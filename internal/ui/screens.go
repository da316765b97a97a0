package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/minimarket/internal/menu"
)

type screenInfo struct {
	title string
	blurb string
}

// screens lists every route the drawer can reach. Only the admin orders
// screen has a terminal rendition; the rest describe what the storefront
// app shows there.
var screens = map[string]screenInfo{
	menu.ScreenHome:           {"Home", "Featured products and offers."},
	menu.ScreenCart:           {"Cart", "Items waiting for checkout."},
	menu.ScreenLogin:          {"Sign in", "Sign in from the storefront app. The session is picked up on the next start."},
	menu.ScreenAbout:          {"About", "minimarket is a terminal companion for the storefront."},
	menu.ScreenUserDashboard:  {"Home", "Your recent activity and recommendations."},
	menu.ScreenProductList:    {"Products", "Browse the catalog."},
	menu.ScreenOrderHistory:   {"My orders", "Orders you placed and their status."},
	menu.ScreenAccount:        {"My account", "Profile and delivery addresses."},
	menu.ScreenAdminDashboard: {"Dashboard", "Sales overview."},
	menu.ScreenCreateProduct:  {"Create product", "Add a product to the catalog."},
	menu.ScreenOrders:         {"Orders", ""},
	menu.ScreenUsers:          {"User management", "Customer and staff accounts."},
	menu.ScreenAdminAccount:   {"My account", "Administrator profile."},
}

// screenTitle returns the display title of a route.
func screenTitle(t menu.Target) string {
	if info, ok := screens[t.Leaf()]; ok {
		return info.title
	}
	return t.Leaf()
}

// landing is the first screen shown for a role.
func landing(r menu.Role) menu.Target {
	return menu.Items(r)[0].Target
}

// permitted reports whether role may open target. Screens under a role's
// root navigator belong to that role; top-level screens are open to all.
func permitted(r menu.Role, t menu.Target) bool {
	switch t.Screen {
	case menu.ScreenAdmin:
		return r == menu.RoleAdmin
	case menu.ScreenUserRoot:
		return r == menu.RoleCustomer
	default:
		return true
	}
}

// renderPlaceholder renders screens without a terminal rendition.
func (m Model) renderPlaceholder(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	info := screens[m.route.Leaf()]

	lines := []string{
		styles.Text.Bold(true).Render(screenTitle(m.route)),
		"",
		styles.MutedText.Render(info.blurb),
	}
	if s := m.session(); s.Authenticated && s.Email != "" {
		lines = append(lines, "", styles.FaintText.Render("Signed in as "+s.Email))
	}
	lines = append(lines, "", styles.FaintText.Render("Press m for the menu"))

	body := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(max(width-4, 1)).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
	inner := lipgloss.Place(max(width-2, 1), max(height-2, 1), lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.SurfaceAlt)))
	return m.renderTitledBox(screenTitle(m.route), inner, width, height, false)
}
