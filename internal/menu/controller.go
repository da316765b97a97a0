package menu

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/minimarket/internal/session"
)

// NavigateMsg asks the host to show a screen.
type NavigateMsg struct {
	Target Target
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(t Target) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Target: t}
	}
}

// Controller resolves the session into menu entries and drives the drawer.
// Each screen owns its own Controller.
type Controller struct {
	drawer   Drawer
	provider session.Provider
	role     Role
	cursor   int
}

// New builds a closed controller for the provider's current session.
func New(provider session.Provider) Controller {
	c := Controller{drawer: NewDrawer(), provider: provider}
	if provider != nil {
		c.SetSession(provider.Session())
	}
	return c
}

// SetSession reclassifies the controller. Hosts call it on every update.
func (c *Controller) SetSession(s session.Session) {
	role := Resolve(s)
	if role != c.role {
		c.cursor = 0
	}
	c.role = role
}

func (c Controller) Role() Role        { return c.role }
func (c Controller) Label() string     { return c.role.Label() }
func (c Controller) Items() []Item     { return Items(c.role) }
func (c Controller) Cursor() int       { return c.cursor }
func (c Controller) IsOpen() bool      { return c.drawer.IsOpen() }
func (c Controller) Progress() float64 { return c.drawer.Progress() }
func (c Controller) Closing() bool     { return c.drawer.Closing() }

// MoveCursor shifts the highlighted entry, stopping at either end.
func (c *Controller) MoveCursor(delta int) {
	n := len(Items(c.role))
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor > n-1 {
		c.cursor = n - 1
	}
}

// Toggle opens or closes the drawer.
func (c *Controller) Toggle() tea.Cmd {
	if !c.drawer.headingOpen() {
		c.cursor = 0
	}
	return c.drawer.Toggle()
}

// Close closes the drawer if it is open.
func (c *Controller) Close() tea.Cmd {
	return c.drawer.Close()
}

// NavigateAndClose closes the drawer and navigates in the same batch so the
// menu is never left open over the next screen.
func (c *Controller) NavigateAndClose(t Target) tea.Cmd {
	return tea.Batch(c.drawer.Close(), Navigate(t))
}

// Activate runs an item. Sign-out entries tear the session down first.
func (c *Controller) Activate(item Item) tea.Cmd {
	if item.SignOut && c.provider != nil {
		if err := c.provider.SignOut(); err != nil {
			log.Printf("sign out failed: %v", err)
		}
		c.SetSession(c.provider.Session())
	}
	return c.NavigateAndClose(item.Target)
}

// ActivateSelected runs the highlighted item.
func (c *Controller) ActivateSelected() tea.Cmd {
	items := Items(c.role)
	if c.cursor < 0 || c.cursor >= len(items) {
		return nil
	}
	return c.Activate(items[c.cursor])
}

// Profile navigates to the role's account screen, or to login for guests.
func (c *Controller) Profile() tea.Cmd {
	return c.NavigateAndClose(ProfileTarget(c.role))
}

// Stop cancels the drawer animation when the owning screen goes away.
func (c *Controller) Stop() {
	c.drawer.Stop()
}

// Update forwards animation frames to the drawer.
func (c Controller) Update(msg tea.Msg) (Controller, tea.Cmd) {
	var cmd tea.Cmd
	c.drawer, cmd = c.drawer.Update(msg)
	return c, cmd
}
