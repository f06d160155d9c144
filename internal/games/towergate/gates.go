package towergate

import "math/rand"

// GateRequirement is the price of one physical gate: a required power and
// the reward cards offered for paying it. The required card type is not
// stored here; it is always the type of the room the gate leads to.
//
// Reward cards carry exactly the gate's power, so a gate never pays out
// more than it cost in a single card.
type GateRequirement struct {
	Power   int
	Rewards []Card
}

type gateKey struct {
	room RoomID
	dir  Direction
}

// Pricebook generates and caches gate requirements. A gate is priced lazily
// on first query and the result is memoized for the life of the session:
// asking again always returns the same price and the same reward offer, so
// a gate's cost cannot change between visits. Only a session reset discards
// the book.
type Pricebook struct {
	world *World
	rules Rules
	rng   *rand.Rand
	gates map[gateKey]GateRequirement
}

// NewPricebook creates an empty pricebook over the given world.
func NewPricebook(world *World, rules Rules, rng *rand.Rand) *Pricebook {
	return &Pricebook{
		world: world,
		rules: rules,
		rng:   rng,
		gates: make(map[gateKey]GateRequirement),
	}
}

// Gate returns the requirement for the gate leaving room in direction dir,
// generating and caching it on first ask. Fails with ErrNoSuchGate for a
// direction with no neighbor.
func (p *Pricebook) Gate(room RoomID, dir Direction) (GateRequirement, error) {
	r, err := p.world.Room(room)
	if err != nil {
		return GateRequirement{}, err
	}
	if _, ok := r.Link(dir); !ok {
		return GateRequirement{}, ErrNoSuchGate
	}

	key := gateKey{room: room, dir: dir}
	if req, ok := p.gates[key]; ok {
		return req.clone(), nil
	}

	req := GateRequirement{
		Power:   p.rules.CardMinPower + p.rng.Intn(p.rules.CardMaxPower-p.rules.CardMinPower+1),
		Rewards: make([]Card, 0, p.rules.RewardChoices),
	}
	for i := 0; i < p.rules.RewardChoices; i++ {
		c := randomCard(p.rules, p.rng)
		c.Power = req.Power
		req.Rewards = append(req.Rewards, c)
	}
	p.gates[key] = req
	return req.clone(), nil
}

// RequiredType returns the card type the gate demands: the type of the
// destination room.
func (p *Pricebook) RequiredType(room RoomID, dir Direction) (RoomType, error) {
	r, err := p.world.Room(room)
	if err != nil {
		return RoomTypeNone, err
	}
	next, ok := r.Link(dir)
	if !ok {
		return RoomTypeNone, ErrNoSuchGate
	}
	return p.world.mustRoom(next).Type, nil
}

// CanAfford reports whether the hand's total power in the gate's required
// type reaches the gate price. This is a UI affordability hint; it prices
// the gate as a side effect but mutates nothing else.
func (p *Pricebook) CanAfford(h *Hand, room RoomID, dir Direction) bool {
	req, err := p.Gate(room, dir)
	if err != nil {
		return false
	}
	t, err := p.RequiredType(room, dir)
	if err != nil {
		return false
	}
	return h.PowerOfType(t) >= req.Power
}

// clone returns a copy whose reward slice the caller may hold without
// aliasing the cached requirement.
func (g GateRequirement) clone() GateRequirement {
	rewards := make([]Card, len(g.Rewards))
	copy(rewards, g.Rewards)
	return GateRequirement{Power: g.Power, Rewards: rewards}
}
