package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/minimarket/internal/orders"
	"github.com/five82/minimarket/internal/prefs"
)

var errNoSource = errors.New("no order source configured")

// ordersLoadedMsg carries one fetch result. seq identifies the screen
// activation (or reload) that asked for it.
type ordersLoadedMsg struct {
	seq     int
	records []orders.Record
	err     error
}

// ordersState is the orders screen: the record pipeline plus its inputs.
type ordersState struct {
	seq      int
	pipeline orders.Pipeline
	search   textinput.Model
	cursor   int
	detail   Modal
}

func newOrdersState(pageSize, seq int) ordersState {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by customer"
	search.CharLimit = 64

	return ordersState{
		seq:      seq,
		pipeline: orders.NewPipeline(pageSize),
		search:   search,
	}
}

// fetchOrdersCmd loads the order list for the current activation.
func (m Model) fetchOrdersCmd() tea.Cmd {
	ctx, fetcher, timeout, seq := m.ctx, m.fetcher, m.fetchTimeout, m.orders.seq
	return func() tea.Msg {
		if fetcher == nil {
			return ordersLoadedMsg{seq: seq, err: errNoSource}
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		records, err := fetcher.FetchOrders(ctx)
		return ordersLoadedMsg{seq: seq, records: records, err: err}
	}
}

// handleOrdersLoaded installs a fetch result unless the screen it was
// requested for has gone away or been reloaded since.
func (m *Model) handleOrdersLoaded(msg ordersLoadedMsg) {
	if !m.onOrders() || msg.seq != m.orders.seq {
		return
	}
	if msg.err != nil {
		log.Printf("fetch orders: %v", msg.err)
	}
	m.orders.pipeline.Load(msg.records, msg.err)
	m.clampOrdersCursor()
}

// handleSearchKey edits the search text while the field has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := &m.orders
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm):
		o.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.ClearSearch):
		o.search.SetValue("")
		m.syncSearch()
		return m, nil
	}

	var cmd tea.Cmd
	o.search, cmd = o.search.Update(msg)
	m.syncSearch()
	return m, cmd
}

// handleOrdersKey processes keyboard input for the orders table.
func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := &m.orders
	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := o.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSearch):
		o.search.SetValue("")
		m.syncSearch()
	case key.Matches(msg, m.keys.Up):
		o.cursor--
		m.clampOrdersCursor()
	case key.Matches(msg, m.keys.Down):
		o.cursor++
		m.clampOrdersCursor()
	case key.Matches(msg, m.keys.Top):
		o.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		o.cursor = len(o.pipeline.CurrentPage()) - 1
		m.clampOrdersCursor()
	case key.Matches(msg, m.keys.NextPage):
		o.pipeline.NextPage()
		o.cursor = 0
	case key.Matches(msg, m.keys.PrevPage):
		o.pipeline.PrevPage()
		o.cursor = 0
	case key.Matches(msg, m.keys.Confirm):
		page := o.pipeline.CurrentPage()
		if o.cursor >= 0 && o.cursor < len(page) {
			o.pipeline.Select(page[o.cursor])
			o.detail = newOrderDetail(page[o.cursor], m.formatter)
		}
	case key.Matches(msg, m.keys.GrowPage):
		m.setPageSize(o.pipeline.PageSize() + 1)
	case key.Matches(msg, m.keys.ShrinkPage):
		m.setPageSize(o.pipeline.PageSize() - 1)
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.reloadOrders()
		return m, cmd
	case key.Matches(msg, m.keys.Escape):
		return m.back()
	}
	return m, nil
}

// handleDetailKey forwards keys to the open detail modal.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal, cmd, closed := m.orders.detail.Update(msg, m.keys)
	if closed {
		m.orders.detail = nil
		m.orders.pipeline.ClearSelection()
		return m, cmd
	}
	m.orders.detail = modal
	return m, cmd
}

// reloadOrders refetches; results of any fetch still in flight are dropped.
func (m *Model) reloadOrders() tea.Cmd {
	m.orders.seq++
	m.orders.pipeline.BeginLoad()
	return m.fetchOrdersCmd()
}

func (m *Model) syncSearch() {
	if text := m.orders.search.Value(); text != m.orders.pipeline.SearchText() {
		m.orders.pipeline.SetSearchText(text)
		m.orders.cursor = 0
	}
}

// setPageSize resizes pages and remembers the choice.
func (m *Model) setPageSize(size int) {
	size = min(max(size, 1), prefs.MaxPageSize)
	if size == m.orders.pipeline.PageSize() {
		return
	}
	m.orders.pipeline.SetPageSize(size)
	m.clampOrdersCursor()
	m.prefs.PageSize = size
	m.savePrefs()
}

func (m *Model) clampOrdersCursor() {
	n := len(m.orders.pipeline.CurrentPage())
	if m.orders.cursor > n-1 {
		m.orders.cursor = n - 1
	}
	if m.orders.cursor < 0 {
		m.orders.cursor = 0
	}
}

// orderColumns holds the table column widths. Address is zero when hidden.
type orderColumns struct {
	customer, date, status, address int
}

func layoutOrderColumns(width int) orderColumns {
	cols := orderColumns{date: 12, status: 14}
	if width >= LayoutWideWidth {
		cols.date = 16
	}
	rest := width - cols.date - cols.status - 2
	if width >= LayoutCompactWidth {
		cols.address = rest * 2 / 5
		rest -= cols.address + 1
	}
	cols.customer = max(rest, 8)
	return cols
}

// renderOrders renders the orders screen.
func (m Model) renderOrders(width, height int) string {
	o := m.orders
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	inner := max(width-4, 10)
	pad := bg.Space()

	var lines []string
	lines = append(lines, pad+m.renderSearchLine(inner, styles, bg))
	lines = append(lines, "")

	cols := layoutOrderColumns(inner)
	lines = append(lines, pad+m.renderOrdersHeader(cols, styles, bg))

	switch p := o.pipeline; {
	case p.Loading():
		lines = append(lines, pad+bg.Render("Loading orders…", styles.MutedText))
	case p.Err() != nil:
		lines = append(lines, pad+bg.Render(truncate("Could not load orders: "+p.Err().Error(), inner), styles.DangerText))
		lines = append(lines, pad+bg.Render("Press r to retry", styles.FaintText))
	case len(p.CurrentPage()) == 0:
		empty := "No orders"
		if strings.TrimSpace(p.SearchText()) != "" {
			empty = fmt.Sprintf("No orders match %q", p.SearchText())
		}
		lines = append(lines, pad+bg.Render(empty, styles.MutedText))
	default:
		for i, rec := range p.CurrentPage() {
			lines = append(lines, pad+m.renderOrderRow(rec, cols, inner, i == o.cursor))
		}
	}

	// Footer pinned to the bottom of the box.
	footer := pad + m.renderOrdersFooter(inner, styles, bg)
	boxInner := max(height-2, 1)
	for len(lines) < boxInner-1 {
		lines = append(lines, "")
	}
	lines = append(lines[:boxInner-1], footer)

	title := "Orders"
	if m.sourceLabel != "" {
		title += " · " + m.sourceLabel
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, o.search.Focused())
}

func (m Model) renderSearchLine(width int, styles Styles, bg BgStyle) string {
	search := m.orders.search
	if search.Focused() {
		search.Width = max(width-4, 1)
		search.PromptStyle = styles.AccentText
		search.TextStyle = styles.Text
		search.PlaceholderStyle = styles.FaintText
		return search.View()
	}
	if text := search.Value(); text != "" {
		return bg.Render("/", styles.AccentText) + bg.Space() + bg.Render(truncate(text, width-2), styles.Text)
	}
	return bg.Render("/ "+search.Placeholder, styles.FaintText)
}

func (m Model) renderOrdersHeader(cols orderColumns, styles Styles, bg BgStyle) string {
	head := styles.MutedText.Bold(true)
	parts := []string{
		bg.Render(fit("Customer", cols.customer), head),
		bg.Render(fit("Date", cols.date), head),
		bg.Render(fit("Status", cols.status), head),
	}
	if cols.address > 0 {
		parts = append(parts, bg.Render(fit("Address", cols.address), head))
	}
	return strings.Join(parts, bg.Space())
}

// renderOrderRow renders one record; the status gets a dot in its tone color.
func (m Model) renderOrderRow(rec orders.Record, cols orderColumns, width int, selected bool) string {
	rowBg := m.theme.SurfaceAlt
	if selected {
		rowBg = m.theme.SelectionBg
	}
	bg := NewBgStyle(rowBg)

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ToneColor(orders.StatusTone(rec.Status))))
	if selected {
		text = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		muted = text
	}

	status := rec.Status
	if strings.TrimSpace(status) == "" {
		status = "-"
	}
	statusCell := bg.Render("●", dot) + bg.Space() + bg.Render(fit(status, cols.status-2), text)

	parts := []string{
		bg.Render(fit(rec.Name, cols.customer), text),
		bg.Render(fit(m.formatter.Date(rec.Date), cols.date), muted),
		statusCell,
	}
	if cols.address > 0 {
		parts = append(parts, bg.Render(fit(rec.Address, cols.address), muted))
	}
	return bg.FillLine(strings.Join(parts, bg.Space()), width)
}

// renderOrdersFooter renders "Showing a-b of n orders" with page dots.
func (m Model) renderOrdersFooter(width int, styles Styles, bg BgStyle) string {
	p := m.orders.pipeline
	first, last, total := p.Window()

	summary := "No orders to show"
	if total > 0 {
		summary = fmt.Sprintf("Showing %d-%d of %d orders", first, last, total)
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = bg.Render("●", styles.AccentText)
	pager.InactiveDot = bg.Render("○", styles.FaintText)
	pager.TotalPages = p.PageCount()
	pager.Page = p.Page() - 1

	right := bg.Render(fmt.Sprintf("page %d of %d", p.Page(), p.PageCount()), styles.MutedText) +
		bg.Spaces(2) + bg.Render(fmt.Sprintf("%d per page", p.PageSize()), styles.FaintText)
	if pager.TotalPages <= 12 {
		right = pager.View() + bg.Spaces(2) + right
	}

	left := bg.Render(summary, styles.Text)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left
	}
	return left + bg.Spaces(gap) + right
}
