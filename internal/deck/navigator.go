package deck

// Navigator is the slide index state machine. The index starts at 0 and
// always stays within [0, count). Moves clamp at the ends; there is no
// wraparound and no terminal state.
type Navigator struct {
	current int
	count   int
}

// NewNavigator creates a navigator over count slides. A count below 1 is
// treated as 1.
func NewNavigator(count int) *Navigator {
	if count < 1 {
		count = 1
	}
	return &Navigator{count: count}
}

// Current returns the current slide index.
func (n *Navigator) Current() int {
	return n.current
}

// Count returns the number of slides.
func (n *Navigator) Count() int {
	return n.count
}

// AtFirst reports whether the current slide is the first one.
func (n *Navigator) AtFirst() bool {
	return n.current == 0
}

// AtLast reports whether the current slide is the last one.
func (n *Navigator) AtLast() bool {
	return n.current == n.count-1
}

// GoTo jumps to slide i. Out-of-range indices are rejected: GoTo returns
// false and the index is left unchanged.
func (n *Navigator) GoTo(i int) bool {
	if i < 0 || i >= n.count {
		return false
	}
	n.current = i
	return true
}

// Next advances one slide. Returns false at the last slide.
func (n *Navigator) Next() bool {
	if n.AtLast() {
		return false
	}
	n.current++
	return true
}

// Previous goes back one slide. Returns false at the first slide.
func (n *Navigator) Previous() bool {
	if n.AtFirst() {
		return false
	}
	n.current--
	return true
}
