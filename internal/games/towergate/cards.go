package towergate

import "math/rand"

// Card is the spendable resource: a type plus a power in [1, 9].
// Cards are values; once dealt to the hand they are identified by position,
// but all removal goes through Hand.Remove, which resolves a whole selection
// against stable positions before anything is deleted.
type Card struct {
	Type  RoomType
	Power int
}

// randomCard draws a card with uniform type and uniform power.
func randomCard(rules Rules, rng *rand.Rand) Card {
	return Card{
		Type:  RoomTypes[rng.Intn(len(RoomTypes))],
		Power: rules.CardMinPower + rng.Intn(rules.CardMaxPower-rules.CardMinPower+1),
	}
}

// strongCard draws a card with uniform type and power biased to the top of
// the range. Used for the opening hand.
func strongCard(rules Rules, rng *rand.Rand) Card {
	c := randomCard(rules, rng)
	c.Power = rules.StrongMinPower + rng.Intn(rules.CardMaxPower-rules.StrongMinPower+1)
	return c
}

// Hand is the player's card collection. Order carries no meaning, but
// positions must stay stable between a render and the input acting on it,
// so mutation is limited to Add and the validate-then-filter Remove.
type Hand struct {
	cards []Card
}

// NewHand deals an opening hand of rules.HandSize strong cards.
func NewHand(rules Rules, rng *rand.Rand) *Hand {
	h := &Hand{cards: make([]Card, 0, rules.HandSize)}
	for i := 0; i < rules.HandSize; i++ {
		h.cards = append(h.cards, strongCard(rules, rng))
	}
	return h
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Card returns the card at the given position.
func (h *Hand) Card(i int) (Card, bool) {
	if i < 0 || i >= len(h.cards) {
		return Card{}, false
	}
	return h.cards[i], true
}

// Cards returns a copy of the hand.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Add appends a card. The hand has no hard capacity: HandSize bounds the
// opening deal and the UI layout, but rewards and trade results always fit.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Peek resolves a selection of positions to cards without removing them.
// Fails with ErrInvalidSelection on an out-of-range or duplicated index.
func (h *Hand) Peek(indices []int) ([]Card, error) {
	seen := make(map[int]bool, len(indices))
	out := make([]Card, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(h.cards) || seen[i] {
			return nil, ErrInvalidSelection
		}
		seen[i] = true
		out = append(out, h.cards[i])
	}
	return out, nil
}

// Remove deletes the cards at the given positions and returns them. The
// whole selection is resolved first and the survivors filtered in one pass,
// so later indices are never shifted by earlier deletions.
func (h *Hand) Remove(indices []int) ([]Card, error) {
	removed, err := h.Peek(indices)
	if err != nil {
		return nil, err
	}

	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}

	kept := h.cards[:0]
	for i, c := range h.cards {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	h.cards = kept
	return removed, nil
}

// PowerOfType sums the power of every held card of the given type.
func (h *Hand) PowerOfType(t RoomType) int {
	total := 0
	for _, c := range h.cards {
		if c.Type == t {
			total += c.Power
		}
	}
	return total
}
