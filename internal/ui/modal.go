package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is an overlay that owns keyboard input while shown. Update reports
// done=true once the overlay should be dismissed.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (next Modal, cmd tea.Cmd, done bool)
	View(theme Theme, width, height int) string
}
