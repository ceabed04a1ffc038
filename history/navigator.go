package history

// Navigator tracks the current browsing position within a Ring for the
// previous-history/next-history actions. An index of -1 means "not
// browsing history" (the live, user-typed query is in effect).
//
// previous-history moves toward the most recently recorded entry first and
// walks back through older entries on repeated presses, matching the
// conventional shell up-arrow direction; next-history walks back toward
// the live query. This direction is an implementation decision where the
// component design leaves the exact key-to-entry mapping unspecified.
type Navigator struct {
	ring  *Ring
	index int
}

// NewNavigator constructs a Navigator over ring, starting unbrowsed.
func NewNavigator(ring *Ring) *Navigator {
	return &Navigator{ring: ring, index: -1}
}

// Reset returns to the unbrowsed state.
func (n *Navigator) Reset() {
	n.index = -1
}

// Previous moves one entry toward the oldest, returning the entry text and
// whether the index actually moved (it does not move past the oldest
// entry).
func (n *Navigator) Previous() (string, bool) {
	if n.ring.Len() == 0 {
		return "", false
	}
	if n.index == -1 {
		n.index = n.ring.Len() - 1
	} else if n.index > 0 {
		n.index--
	} else {
		return n.ring.At(n.index), false
	}
	return n.ring.At(n.index), true
}

// Next moves one entry toward the newest. Advancing past the newest entry
// returns to the unbrowsed state and reports an empty string.
func (n *Navigator) Next() (string, bool) {
	if n.index == -1 {
		return "", false
	}
	if n.index >= n.ring.Len()-1 {
		n.index = -1
		return "", true
	}
	n.index++
	return n.ring.At(n.index), true
}
