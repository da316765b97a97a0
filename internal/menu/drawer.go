package menu

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultDuration = 300 * time.Millisecond
	frameInterval   = time.Second / 60
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances a drawer animation. Frames carry the drawer's ID and the
// animation generation they were scheduled for; anything else is dropped.
type FrameMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// Drawer is the slide-out panel's visibility state. Progress runs from 0
// (hidden) to 1 (fully shown). The drawer stays open, and therefore rendered,
// until a close animation has run to completion.
type Drawer struct {
	// Duration of a full 0→1 or 1→0 transition.
	Duration time.Duration

	id       int
	tag      int
	open     bool
	progress float64

	running  bool
	from, to float64
	start    time.Time
	span     time.Duration

	now func() time.Time
}

// NewDrawer returns a closed drawer.
func NewDrawer() Drawer {
	return Drawer{
		Duration: defaultDuration,
		id:       nextID(),
		now:      time.Now,
	}
}

// IsOpen reports whether the drawer is shown, including while it closes.
func (d Drawer) IsOpen() bool { return d.open }

// Progress returns the animation value in [0,1].
func (d Drawer) Progress() float64 { return d.progress }

// Animating reports whether a transition is in flight.
func (d Drawer) Animating() bool { return d.running }

// Settled reports whether the drawer rests fully open or fully closed.
func (d Drawer) Settled() bool {
	return !d.running && (d.progress == 0 || d.progress == 1)
}

// Closing reports whether a close animation is running.
func (d Drawer) Closing() bool {
	return d.open && d.running && d.to == 0
}

// headingOpen is true when the latest requested direction is "open".
func (d Drawer) headingOpen() bool {
	if !d.open {
		return false
	}
	return !d.running || d.to == 1
}

// Toggle reverses the drawer's current direction.
func (d *Drawer) Toggle() tea.Cmd {
	if d.headingOpen() {
		return d.Close()
	}
	return d.Open()
}

// Open starts the open animation. It supersedes a running close.
func (d *Drawer) Open() tea.Cmd {
	if d.headingOpen() {
		return nil
	}
	d.open = true
	return d.animate(1)
}

// Close starts the close animation. It supersedes a running open.
func (d *Drawer) Close() tea.Cmd {
	if !d.open || (d.running && d.to == 0) {
		return nil
	}
	return d.animate(0)
}

// Stop cancels any running animation. The pending completion never fires, so
// a drawer torn down mid-close keeps its last visible state.
func (d *Drawer) Stop() {
	d.tag++
	d.running = false
}

func (d *Drawer) animate(to float64) tea.Cmd {
	d.tag++
	d.running = true
	d.from = d.progress
	d.to = to
	d.start = d.clock()

	// Reversing halfway only takes the remaining distance's share of time.
	distance := to - d.from
	if distance < 0 {
		distance = -distance
	}
	d.span = time.Duration(float64(d.Duration) * distance)
	return d.frame()
}

// Update applies a frame to the drawer.
func (d Drawer) Update(msg tea.Msg) (Drawer, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != d.id || frame.tag != d.tag || !d.running {
		return d, nil
	}

	t := 1.0
	if d.span > 0 {
		t = clamp01(float64(frame.Time.Sub(d.start)) / float64(d.span))
	}
	if t < 1 {
		d.progress = clamp01(d.from + (d.to-d.from)*easeOutCubic(t))
		return d, d.frame()
	}

	d.progress = d.to
	d.running = false
	if d.to == 0 {
		d.open = false
	}
	return d, nil
}

func (d Drawer) frame() tea.Cmd {
	id, tag := d.id, d.tag
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag, Time: t}
	})
}

func (d Drawer) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
