package input

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pitchdeck/internal/navigation"
)

const (
	DefaultSwipeThreshold = 50.0
	DefaultWheelDelay     = 100 * time.Millisecond
)

// SwipeDetector classifies a drag as a horizontal swipe
type SwipeDetector struct {
	Threshold float64
}

// Detect takes the displacement start-end in logical pixels. A swipe must be
// mostly horizontal and longer than the threshold; dragging left means next.
func (d SwipeDetector) Detect(dx, dy float64) (navigation.Direction, bool) {
	threshold := d.Threshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= threshold {
		return "", false
	}
	if dx > 0 {
		return navigation.DirectionNext, true
	}
	return navigation.DirectionPrevious, true
}

// ClickZone maps a click at column x of a region w columns wide to a
// direction: the left 30% goes back, the right 30% goes forward.
func ClickZone(x, width int) (navigation.Direction, bool) {
	if width <= 0 || x < 0 || x >= width {
		return "", false
	}
	switch {
	case float64(x) < float64(width)*0.3:
		return navigation.DirectionPrevious, true
	case float64(x) > float64(width)*0.7:
		return navigation.DirectionNext, true
	}
	return "", false
}

// WheelSettledMsg is delivered when a wheel burst may have ended
type WheelSettledMsg struct {
	Seq   uint64
	Delta int
}

// WheelCoalescer turns a burst of wheel events into one navigation step.
// Every Push restarts the quiet period; only the tick of the latest push
// settles into a direction.
type WheelCoalescer struct {
	Delay time.Duration
	seq   uint64
}

// Push records a wheel event; delta > 0 scrolls down (next)
func (w *WheelCoalescer) Push(delta int) tea.Cmd {
	if delta == 0 {
		return nil
	}
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultWheelDelay
	}
	w.seq++
	seq := w.seq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return WheelSettledMsg{Seq: seq, Delta: delta}
	})
}

// Settle reports the direction for a settled burst. Ticks from earlier
// pushes are stale and return false.
func (w *WheelCoalescer) Settle(msg WheelSettledMsg) (navigation.Direction, bool) {
	if msg.Seq != w.seq {
		return "", false
	}
	if msg.Delta > 0 {
		return navigation.DirectionNext, true
	}
	return navigation.DirectionPrevious, true
}
