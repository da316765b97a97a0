package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/minimarket/internal/orders"
)

const (
	detailWidth       = 56
	detailMaxProducts = 8
)

// orderDetail is the read-only modal for one order.
type orderDetail struct {
	record   orders.Record
	date     string
	total    string
	products viewport.Model
}

func newOrderDetail(rec orders.Record, f orders.Formatter) *orderDetail {
	lines := orders.FormatProducts(rec.Products)
	vp := viewport.New(detailWidth-6, min(len(lines), detailMaxProducts))
	vp.SetContent(strings.Join(lines, "\n"))

	return &orderDetail{
		record:   rec,
		date:     f.Date(rec.Date),
		total:    f.Total(rec.Total),
		products: vp,
	}
}

// Update implements Modal. Enter, esc, b and q dismiss; j/k scroll products.
func (d *orderDetail) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Confirm),
			key.Matches(keyMsg, keys.Back), keyMsg.String() == "q":
			return d, nil, true
		case key.Matches(keyMsg, keys.ScrollDetail):
			if key.Matches(keyMsg, keys.Up) {
				d.products.ScrollUp(1)
			} else {
				d.products.ScrollDown(1)
			}
			return d, nil, false
		case key.Matches(keyMsg, keys.Top):
			d.products.GotoTop()
			return d, nil, false
		case key.Matches(keyMsg, keys.Bottom):
			d.products.GotoBottom()
			return d, nil, false
		}
	}
	var cmd tea.Cmd
	d.products, cmd = d.products.Update(msg)
	return d, cmd, false
}

// View implements Modal.
func (d *orderDetail) View(theme Theme, width, height int) string {
	styles := theme.Styles().WithBackground(theme.FocusBg)
	bg := NewBgStyle(theme.FocusBg)
	labelStyle := styles.MutedText.Width(10)
	rec := d.record

	field := func(label, value string, style lipgloss.Style) string {
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		return labelStyle.Render(label) + bg.Render(truncate(value, detailWidth-16), style)
	}

	tone := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ToneColor(orders.StatusTone(rec.Status))))
	status := bg.Render("●", tone) + bg.Space() + bg.Render(rec.Status, styles.Text)
	if strings.TrimSpace(rec.Status) == "" {
		status = bg.Render("-", styles.FaintText)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Order " + truncate(rec.ID, detailWidth-12)))
	b.WriteString("\n\n")
	b.WriteString(field("Customer", rec.Name, styles.Text))
	b.WriteString("\n")
	b.WriteString(field("Address", rec.Address, styles.Text))
	b.WriteString("\n")
	b.WriteString(field("Date", d.date, styles.Text))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Status") + status)
	b.WriteString("\n")
	b.WriteString(field("Total", "$"+d.total, styles.SuccessText))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Products"))
	b.WriteString("\n")
	b.WriteString(d.products.View())
	if d.products.TotalLineCount() > d.products.Height {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("j/k scroll"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter/esc close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Background(lipgloss.Color(theme.FocusBg)).
		Padding(1, 2).
		Width(detailWidth).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}
