package navigation

// MaxConstrainedMarkers is the number of page markers shown in constrained mode
const MaxConstrainedMarkers = 5

// Window is the contiguous range of page markers to display, 1-based and
// inclusive, plus whether markers are hidden on either side.
type Window struct {
	Start            int
	End              int
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// Width returns the number of markers in the window
func (w Window) Width() int {
	if w.Start < 1 || w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether slide index i has a visible marker
func (w Window) Contains(i int) bool {
	return i >= w.Start && i <= w.End
}

// Markers lists the slide indexes with a visible marker
func (w Window) Markers() []int {
	markers := make([]int, 0, w.Width())
	for i := w.Start; i < w.Start+w.Width(); i++ {
		markers = append(markers, i)
	}
	return markers
}

// ComputeWindow projects the active slide onto the visible page markers.
// Unconstrained displays and short decks show every marker. Otherwise a
// window of MaxConstrainedMarkers markers is centred on current, and when
// clamping against an edge narrows it, the opposite end is re-expanded so
// the width never shrinks near the edges.
func ComputeWindow(current, total int, constrained bool) Window {
	if total < 1 {
		return Window{}
	}
	if !constrained || total <= MaxConstrainedMarkers {
		return Window{Start: 1, End: total}
	}

	half := MaxConstrainedMarkers / 2
	start := max(1, current-half)
	end := min(total, current+half)

	if end-start < MaxConstrainedMarkers-1 {
		if start == 1 {
			end = min(total, start+MaxConstrainedMarkers-1)
		} else if end == total {
			start = max(1, end-MaxConstrainedMarkers+1)
		}
	}

	return Window{
		Start:            start,
		End:              end,
		LeadingEllipsis:  start > 1,
		TrailingEllipsis: end < total,
	}
}
