package pull

// Direction is the way the list moved between two scroll callbacks.
type Direction int

const (
	// None means no scroll gesture is in progress.
	None Direction = iota
	Same
	// Up means the content moved toward its end.
	Up
	// Down means the content moved toward its start.
	Down
)

func (d Direction) String() string {
	switch d {
	case Same:
		return "same"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// ScrollTracker infers the scroll direction from successive first-visible
// positions.
type ScrollTracker struct {
	prev      int
	direction Direction
}

// OnScrolled records the first visible position after a scroll step. The
// first step of a gesture reports Same.
func (s *ScrollTracker) OnScrolled(first int) Direction {
	switch {
	case s.direction == None:
		s.direction = Same
	case first > s.prev:
		s.direction = Up
	case first < s.prev:
		s.direction = Down
	default:
		s.direction = Same
	}
	s.prev = first
	return s.direction
}

// OnScrollStateChanged ends the current gesture.
func (s *ScrollTracker) OnScrollStateChanged() {
	s.direction = None
}

// Direction returns the last computed direction.
func (s *ScrollTracker) Direction() Direction {
	return s.direction
}

// ShouldLoadMore reports whether the visible window has come within offset
// rows of the last row.
func ShouldLoadMore(first, last, totalRows, offset int) bool {
	visible := last - first
	if visible < 0 {
		visible = -visible
	}
	lastVisible := first + visible - 1
	return lastVisible >= totalRows-1-offset
}
