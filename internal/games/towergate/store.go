package towergate

// TradeStore is the limited-use card merger: give two cards of the same
// type, get one card of a chosen type whose power is the capped sum of the
// two. The cap keeps the trade lossy-or-neutral, so the economy cannot
// inflate past the maximum card power.
type TradeStore struct {
	usesLeft int
	maxPower int
}

// NewTradeStore creates a store with the given use budget and power cap.
func NewTradeStore(uses, maxPower int) *TradeStore {
	return &TradeStore{usesLeft: uses, maxPower: maxPower}
}

// UsesLeft returns the remaining trade budget.
func (s *TradeStore) UsesLeft() int {
	return s.usesLeft
}

// Trade validates and performs one merge on the hand. Validation happens
// fully before any mutation: a failed trade leaves the hand, the budget and
// the selection untouched.
func (s *TradeStore) Trade(h *Hand, indices []int, target RoomType) (Card, error) {
	if s.usesLeft <= 0 {
		return Card{}, ErrStoreExhausted
	}
	if len(indices) != 2 {
		return Card{}, ErrWrongSelectionCount
	}

	selected, err := h.Peek(indices)
	if err != nil {
		return Card{}, err
	}
	if selected[0].Type != selected[1].Type {
		return Card{}, ErrTypeMismatch
	}
	if target == RoomTypeNone {
		return Card{}, ErrNoTargetType
	}

	power := selected[0].Power + selected[1].Power
	if power > s.maxPower {
		power = s.maxPower
	}

	// Peek already validated the indices; Remove cannot fail now.
	if _, err := h.Remove(indices); err != nil {
		return Card{}, err
	}
	merged := Card{Type: target, Power: power}
	h.Add(merged)
	s.usesLeft--
	return merged, nil
}
