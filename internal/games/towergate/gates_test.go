package towergate

import (
	"errors"
	"math/rand"
	"testing"
)

func testPricebook(t *testing.T) (*World, *Pricebook) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	w := NewWorld(GridWidth, GridHeight, rng)
	return w, NewPricebook(w, DefaultRules(), rng)
}

func TestGateMemoized(t *testing.T) {
	w, p := testPricebook(t)
	id := w.RoomAt(4, 4)

	first, err := p.Gate(id, DirRight)
	if err != nil {
		t.Fatalf("Gate: %v", err)
	}

	// Interleave other queries to churn the RNG, then re-ask.
	for _, d := range Directions {
		p.Gate(id, d)
	}
	p.Gate(w.RoomAt(0, 0), DirRight)

	again, err := p.Gate(id, DirRight)
	if err != nil {
		t.Fatalf("Gate: %v", err)
	}
	if again.Power != first.Power {
		t.Errorf("price changed between asks: %d then %d", first.Power, again.Power)
	}
	for i := range first.Rewards {
		if again.Rewards[i] != first.Rewards[i] {
			t.Errorf("reward %d changed: %v then %v", i, first.Rewards[i], again.Rewards[i])
		}
	}
}

func TestGateReturnsClone(t *testing.T) {
	w, p := testPricebook(t)
	id := w.RoomAt(4, 4)

	req, _ := p.Gate(id, DirRight)
	want := req.Rewards[0]
	req.Rewards[0] = Card{Arcane, 1}

	again, _ := p.Gate(id, DirRight)
	if again.Rewards[0] != want {
		t.Errorf("cached reward mutated through returned slice: %v", again.Rewards[0])
	}
}

func TestGateRequirementShape(t *testing.T) {
	w, p := testPricebook(t)
	rules := DefaultRules()

	req, err := p.Gate(w.RoomAt(4, 4), DirDown)
	if err != nil {
		t.Fatalf("Gate: %v", err)
	}
	if req.Power < rules.CardMinPower || req.Power > rules.CardMaxPower {
		t.Errorf("price = %d, want in [%d, %d]", req.Power, rules.CardMinPower, rules.CardMaxPower)
	}
	if len(req.Rewards) != rules.RewardChoices {
		t.Fatalf("rewards = %d, want %d", len(req.Rewards), rules.RewardChoices)
	}
	for i, r := range req.Rewards {
		if r.Power != req.Power {
			t.Errorf("reward %d power = %d, want gate price %d", i, r.Power, req.Power)
		}
	}
}

func TestGateThroughOuterWall(t *testing.T) {
	w, p := testPricebook(t)

	if _, err := p.Gate(w.RoomAt(0, 0), DirLeft); !errors.Is(err, ErrNoSuchGate) {
		t.Errorf("Gate error = %v, want ErrNoSuchGate", err)
	}
	if _, err := p.RequiredType(w.RoomAt(0, 0), DirLeft); !errors.Is(err, ErrNoSuchGate) {
		t.Errorf("RequiredType error = %v, want ErrNoSuchGate", err)
	}
}

func TestRequiredTypeIsDestinationType(t *testing.T) {
	w, p := testPricebook(t)
	id := w.RoomAt(4, 4)

	room, _ := w.Room(id)
	next, _ := room.Link(DirUp)
	neighbor, _ := w.Room(next)

	got, err := p.RequiredType(id, DirUp)
	if err != nil {
		t.Fatalf("RequiredType: %v", err)
	}
	if got != neighbor.Type {
		t.Errorf("RequiredType = %v, want destination type %v", got, neighbor.Type)
	}
}

func TestCanAfford(t *testing.T) {
	w, p := testPricebook(t)
	id := w.RoomAt(4, 4)

	req, _ := p.Gate(id, DirRight)
	need, _ := p.RequiredType(id, DirRight)

	rich := handOf(Card{need, req.Power})
	if !p.CanAfford(rich, id, DirRight) {
		t.Error("CanAfford = false with exact power in hand")
	}

	poor := handOf(Card{need, req.Power - 1})
	if req.Power > 1 && p.CanAfford(poor, id, DirRight) {
		t.Error("CanAfford = true one power short")
	}

	wrongType := need
	for _, rt := range RoomTypes {
		if rt != need {
			wrongType = rt
			break
		}
	}
	offType := handOf(Card{wrongType, 9}, Card{wrongType, 9})
	if p.CanAfford(offType, id, DirRight) {
		t.Error("CanAfford = true with only off-type cards")
	}
}
