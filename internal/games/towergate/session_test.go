package towergate

import (
	"errors"
	"testing"
	"time"
)

func testDifficulty() Difficulty {
	return Difficulty{
		Name:            "test",
		MaxPoints:       100,
		DecayPerSecond:  1,
		StoreUses:       3,
		MinimapRadius:   3,
		ScoreMultiplier: 2,
	}
}

func testSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(DefaultRules(), testDifficulty(), 1)
}

func TestSessionStartState(t *testing.T) {
	s := testSession(t)

	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
	if s.Points() != 100 {
		t.Errorf("points = %d, want 100", s.Points())
	}
	if s.Hand().Len() != HandSize {
		t.Errorf("hand = %d cards, want %d", s.Hand().Len(), HandSize)
	}
	if !s.Visited(s.StartRoom()) {
		t.Error("start room not visited")
	}
	if s.CurrentRoom() != s.StartRoom() {
		t.Error("player not in start room")
	}
}

func TestFinishRoomColumnGap(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := NewSession(DefaultRules(), testDifficulty(), seed)
		gap := columnGap(s.World(), s.StartRoom(), s.FinishRoom())
		if gap < MinFinishColumnGap {
			t.Errorf("seed %d: column gap = %d, want >= %d", seed, gap, MinFinishColumnGap)
		}
	}
}

func TestNarrowGridSessionStarts(t *testing.T) {
	rules := DefaultRules()
	rules.GridWidth = 4

	done := make(chan *Session, 1)
	go func() { done <- NewSession(rules, testDifficulty(), 7) }()

	select {
	case s := <-done:
		gap := columnGap(s.World(), s.StartRoom(), s.FinishRoom())
		if gap < rules.GridWidth-1 {
			t.Errorf("column gap = %d on a %d-wide grid, want %d",
				gap, rules.GridWidth, rules.GridWidth-1)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session creation never finished on a narrow grid")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := NewSession(DefaultRules(), testDifficulty(), 42)
	b := NewSession(DefaultRules(), testDifficulty(), 42)

	if a.StartRoom() != b.StartRoom() || a.FinishRoom() != b.FinishRoom() {
		t.Fatal("same seed produced different start/finish rooms")
	}
	ac, bc := a.Hand().Cards(), b.Hand().Cards()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("same seed produced different hands at %d: %v vs %v", i, ac[i], bc[i])
		}
	}
	for _, d := range Directions {
		ra, ea := a.Gate(d)
		rb, eb := b.Gate(d)
		if (ea == nil) != (eb == nil) {
			t.Fatalf("gate %v exists in one run only", d)
		}
		if ea == nil && ra.Power != rb.Power {
			t.Errorf("gate %v priced %d vs %d", d, ra.Power, rb.Power)
		}
	}
}

func TestTickDecay(t *testing.T) {
	s := testSession(t)

	// Sub-second ticks accumulate without draining.
	s.Tick(500 * time.Millisecond)
	if s.Points() != 100 {
		t.Errorf("points = %d after 0.5s, want 100", s.Points())
	}
	s.Tick(500 * time.Millisecond)
	if s.Points() != 99 {
		t.Errorf("points = %d after 1.0s, want 99", s.Points())
	}

	// A long gap drains one point per whole second.
	s.Tick(10 * time.Second)
	if s.Points() != 89 {
		t.Errorf("points = %d after 11s, want 89", s.Points())
	}
}

func TestTickDrainsToLoss(t *testing.T) {
	s := testSession(t)

	s.Tick(time.Duration(s.Points()+50) * time.Second)
	if s.State() != StateLost {
		t.Fatalf("state = %v, want lost", s.State())
	}
	if s.Points() != 0 {
		t.Errorf("points = %d, want 0 (never negative)", s.Points())
	}

	// The clock stops once the run has ended.
	s.Tick(time.Hour)
	if s.Points() != 0 || s.State() != StateLost {
		t.Error("ended session kept ticking")
	}
}

// closedDir finds a direction from the current room that has a gate.
func closedDir(t *testing.T, s *Session) Direction {
	t.Helper()
	room, err := s.World().Room(s.CurrentRoom())
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range Directions {
		if _, ok := room.Link(d); ok && !room.GateOpen(d) {
			return d
		}
	}
	t.Fatal("no closed gate from current room")
	return DirUp
}

func TestAttemptUnlockSpendsAndMoves(t *testing.T) {
	s := testSession(t)
	dir := closedDir(t, s)

	req, err := s.Gate(dir)
	if err != nil {
		t.Fatal(err)
	}
	need, _ := s.RequiredType(dir)

	// Plant a hand that exactly covers the price.
	s.hand = handOf(Card{need, req.Power}, Card{Arcane, 1})
	before := s.CurrentRoom()

	if err := s.AttemptUnlock(dir, []int{0}, 0); err != nil {
		t.Fatalf("AttemptUnlock: %v", err)
	}

	if s.CurrentRoom() == before {
		t.Error("player did not move through the unlocked gate")
	}
	if !s.Visited(s.CurrentRoom()) {
		t.Error("destination not marked visited")
	}

	// One card spent, one reward gained.
	if s.Hand().Len() != 2 {
		t.Errorf("hand len = %d, want 2", s.Hand().Len())
	}
	reward := req.Rewards[0]
	found := false
	for _, c := range s.Hand().Cards() {
		if c == reward {
			found = true
		}
	}
	if !found {
		t.Errorf("reward %v not in hand %v", reward, s.Hand().Cards())
	}

	room, _ := s.World().Room(before)
	if !room.GateOpen(dir) {
		t.Error("gate still closed after unlock")
	}
}

func TestAttemptUnlockRejections(t *testing.T) {
	tests := []struct {
		name    string
		hand    func(need RoomType, price int) *Hand
		sel     []int
		reward  int
		wantErr error
	}{
		{
			name: "wrong card type",
			hand: func(need RoomType, price int) *Hand {
				other := RoomTypes[(int(need)+1)%len(RoomTypes)]
				return handOf(Card{other, 9}, Card{other, 9})
			},
			sel:     []int{0, 1},
			reward:  0,
			wantErr: ErrWrongType,
		},
		{
			name: "insufficient power",
			hand: func(need RoomType, price int) *Hand {
				return handOf(Card{need, price - 1})
			},
			sel:     []int{0},
			reward:  0,
			wantErr: ErrInsufficientPower,
		},
		{
			name: "no reward chosen",
			hand: func(need RoomType, price int) *Hand {
				return handOf(Card{need, price})
			},
			sel:     []int{0},
			reward:  -1,
			wantErr: ErrNoRewardChosen,
		},
		{
			name: "bad selection",
			hand: func(need RoomType, price int) *Hand {
				return handOf(Card{need, price})
			},
			sel:     []int{0, 5},
			reward:  0,
			wantErr: ErrInvalidSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession(t)
			dir := closedDir(t, s)
			req, err := s.Gate(dir)
			if err != nil {
				t.Fatal(err)
			}
			if req.Power < 2 && tt.wantErr == ErrInsufficientPower {
				t.Skip("gate too cheap to underpay")
			}
			need, _ := s.RequiredType(dir)

			s.hand = tt.hand(need, req.Power)
			handBefore := s.Hand().Cards()
			roomBefore := s.CurrentRoom()

			if err := s.AttemptUnlock(dir, tt.sel, tt.reward); !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			// A rejected unlock must not spend, open or move anything.
			if s.CurrentRoom() != roomBefore {
				t.Error("player moved on a failed unlock")
			}
			after := s.Hand().Cards()
			if len(after) != len(handBefore) {
				t.Fatalf("hand changed on failed unlock: %v -> %v", handBefore, after)
			}
			for i := range after {
				if after[i] != handBefore[i] {
					t.Errorf("card %d changed on failed unlock", i)
				}
			}
			room, _ := s.World().Room(roomBefore)
			if room.GateOpen(dir) {
				t.Error("gate opened on failed unlock")
			}
		})
	}
}

func TestMoveRequiresOpenGate(t *testing.T) {
	s := testSession(t)
	dir := closedDir(t, s)

	if s.Move(dir) {
		t.Fatal("moved through a closed gate")
	}

	if err := s.World().OpenGate(s.CurrentRoom(), dir); err != nil {
		t.Fatal(err)
	}
	before := s.CurrentRoom()
	if !s.Move(dir) {
		t.Fatal("could not move through an open gate")
	}

	// And back again: the far side opened too.
	if !s.Move(dir.Opposite()) {
		t.Fatal("could not move back through the gate")
	}
	if s.CurrentRoom() != before {
		t.Error("round trip did not return to origin")
	}
}

func TestWinOnEnteringFinish(t *testing.T) {
	s := testSession(t)

	// Re-point the finish at a neighbor and walk in.
	room, _ := s.World().Room(s.CurrentRoom())
	dir := closedDir(t, s)
	next, _ := room.Link(dir)
	s.finish = next

	if err := s.World().OpenGate(s.CurrentRoom(), dir); err != nil {
		t.Fatal(err)
	}
	if !s.Move(dir) {
		t.Fatal("move failed")
	}

	if s.State() != StateWon {
		t.Fatalf("state = %v, want won", s.State())
	}
	want := s.Points() * testDifficulty().ScoreMultiplier
	if s.FinalScore() != want {
		t.Errorf("final score = %d, want %d", s.FinalScore(), want)
	}

	// Terminal: no more unlocks or trades.
	if err := s.AttemptUnlock(DirUp, nil, 0); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("unlock after win: error = %v, want ErrSessionEnded", err)
	}
	if _, err := s.AttemptTrade([]int{0, 1}, Jungle); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("trade after win: error = %v, want ErrSessionEnded", err)
	}
}

func TestExploredFrontier(t *testing.T) {
	s := testSession(t)
	room, _ := s.World().Room(s.CurrentRoom())

	for _, d := range Directions {
		next, ok := room.Link(d)
		if !ok {
			continue
		}
		if !s.Explored(next) {
			t.Errorf("neighbor %v not explored from start", d)
		}
		if s.Visited(next) {
			t.Errorf("neighbor %v marked visited without entering", d)
		}
	}
}

func TestResetRebuildsRun(t *testing.T) {
	s := testSession(t)

	s.Tick(30 * time.Second)
	dir := closedDir(t, s)
	s.World().OpenGate(s.CurrentRoom(), dir)
	s.Move(dir)

	s.Reset(testDifficulty())

	if s.Points() != 100 {
		t.Errorf("points = %d after reset, want 100", s.Points())
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v after reset, want playing", s.State())
	}
	if s.CurrentRoom() != s.StartRoom() {
		t.Error("player not back at start after reset")
	}
	if s.StoreUsesLeft() != testDifficulty().StoreUses {
		t.Errorf("store uses = %d after reset, want %d", s.StoreUsesLeft(), testDifficulty().StoreUses)
	}

	room, _ := s.World().Room(s.CurrentRoom())
	for _, d := range Directions {
		if room.GateOpen(d) {
			t.Errorf("gate %v open right after reset", d)
		}
	}
}
