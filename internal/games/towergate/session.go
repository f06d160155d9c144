package towergate

import (
	"math/rand"
	"time"
)

// Difficulty bundles the tuning knobs selected once at session start.
// The session treats it as opaque parameters; presets live in the config
// package and are converted by the game adapter.
type Difficulty struct {
	Name            string
	MaxPoints       int
	DecayPerSecond  int
	StoreUses       int
	MinimapRadius   int
	ScoreMultiplier int
}

// SessionState is the run lifecycle: Playing until the player reaches the
// finish room (Won) or the points drain to zero (Lost). Both end states are
// terminal until Reset builds a fresh run.
type SessionState int

const (
	StatePlaying SessionState = iota
	StateWon
	StateLost
)

func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "lost"
	}
}

// Session owns one complete run: the world, the hand, the gate pricebook,
// the trade store and the scoring clock. Every operation the platform can
// trigger goes through a Session method, and every transaction validates
// fully before mutating, so a rejected attempt never leaves partial state.
type Session struct {
	rng   *rand.Rand
	rules Rules
	diff  Difficulty

	world *World
	hand  *Hand
	gates *Pricebook
	store *TradeStore

	current RoomID
	start   RoomID
	finish  RoomID

	visited  map[RoomID]bool
	explored map[RoomID]bool

	points     int
	accum      time.Duration
	state      SessionState
	finalScore int
}

// NewSession creates and initializes a run with the given rules, difficulty
// and RNG seed. The same seed reproduces the same world, hand and gate prices.
func NewSession(rules Rules, diff Difficulty, seed int64) *Session {
	s := &Session{rng: rand.New(rand.NewSource(seed)), rules: rules}
	s.Reset(diff)
	return s
}

// Reset rebuilds the whole run: fresh world and hand, a new start room, a
// new finish room at least MinFinishColumnGap columns away (clamped to what
// the grid can hold, so a narrow grid still starts), a cleared pricebook
// (gate prices reshuffle between runs, never within one) and a restored
// store budget.
func (s *Session) Reset(diff Difficulty) {
	s.diff = diff
	s.world = NewWorld(s.rules.GridWidth, s.rules.GridHeight, s.rng)
	s.hand = NewHand(s.rules, s.rng)
	s.gates = NewPricebook(s.world, s.rules, s.rng)
	s.store = NewTradeStore(diff.StoreUses, s.rules.CardMaxPower)

	gap := MinFinishColumnGap
	if widest := s.rules.GridWidth - 1; gap > widest {
		gap = widest
	}
	s.start = s.randomRoom()
	s.finish = s.randomRoom()
	for columnGap(s.world, s.start, s.finish) < gap {
		s.finish = s.randomRoom()
	}

	s.visited = make(map[RoomID]bool)
	s.explored = make(map[RoomID]bool)
	s.points = diff.MaxPoints
	s.accum = 0
	s.state = StatePlaying
	s.finalScore = 0

	s.current = s.start
	s.visited[s.current] = true
	s.explored[s.current] = true
	s.markNeighborsExplored(s.current)
}

func (s *Session) randomRoom() RoomID {
	w, h := s.world.Size()
	return s.world.RoomAt(s.rng.Intn(w), s.rng.Intn(h))
}

func columnGap(w *World, a, b RoomID) int {
	ra, rb := w.mustRoom(a), w.mustRoom(b)
	gap := ra.X - rb.X
	if gap < 0 {
		gap = -gap
	}
	return gap
}

// Tick advances the decay clock by elapsed wall-clock time. Each whole
// accumulated second drains DecayPerSecond points; hitting zero ends the
// run as a loss. Once the session has ended the clock stops entirely.
func (s *Session) Tick(elapsed time.Duration) {
	if s.state != StatePlaying {
		return
	}
	s.accum += elapsed
	for s.accum >= time.Second && s.state == StatePlaying {
		s.accum -= time.Second
		s.points -= s.diff.DecayPerSecond
		if s.points <= 0 {
			s.points = 0
			s.state = StateLost
		}
	}
}

// AttemptUnlock runs the full gate transaction for the gate leaving the
// current room in direction dir: spend the selected cards, take the chosen
// reward, open the gate on both sides and step into the neighbor.
//
// rewardIndex indexes the gate's reward offer; pass a negative value for
// "none chosen". Checks run in order: selection validity, card type, power
// sum, reward choice. Any failure rejects the transaction with nothing
// spent and nothing moved.
func (s *Session) AttemptUnlock(dir Direction, selected []int, rewardIndex int) error {
	if s.state != StatePlaying {
		return ErrSessionEnded
	}
	room := s.world.mustRoom(s.current)
	if room.GateOpen(dir) {
		return ErrGateOpen
	}

	req, err := s.gates.Gate(s.current, dir)
	if err != nil {
		return err
	}
	requiredType, err := s.gates.RequiredType(s.current, dir)
	if err != nil {
		return err
	}

	chosen, err := s.hand.Peek(selected)
	if err != nil {
		return err
	}
	total := 0
	for _, c := range chosen {
		if c.Type != requiredType {
			return ErrWrongType
		}
		total += c.Power
	}
	if total < req.Power {
		return ErrInsufficientPower
	}
	if rewardIndex < 0 || rewardIndex >= len(req.Rewards) {
		return ErrNoRewardChosen
	}

	// Validation complete; the transaction below cannot fail.
	if _, err := s.hand.Remove(selected); err != nil {
		return err
	}
	s.hand.Add(req.Rewards[rewardIndex])
	if err := s.world.OpenGate(s.current, dir); err != nil {
		return err
	}

	next, _ := room.Link(dir)
	s.enterRoom(next)
	return nil
}

// Move steps through an already-open gate. Returns false if the gate in
// that direction is closed or absent.
func (s *Session) Move(dir Direction) bool {
	if s.state != StatePlaying {
		return false
	}
	room := s.world.mustRoom(s.current)
	next, ok := room.Link(dir)
	if !ok || !room.GateOpen(dir) {
		return false
	}
	s.enterRoom(next)
	return true
}

// enterRoom moves the player, updates the visited and explored sets and
// checks the win condition. Explored rooms are the minimap frontier: every
// neighbor of a room the player has stood in.
func (s *Session) enterRoom(id RoomID) {
	s.current = id
	s.visited[id] = true
	s.explored[id] = true
	s.markNeighborsExplored(id)

	if s.current == s.finish {
		s.state = StateWon
		s.finalScore = s.points * s.diff.ScoreMultiplier
	}
}

func (s *Session) markNeighborsExplored(id RoomID) {
	room := s.world.mustRoom(id)
	for _, d := range Directions {
		if next, ok := room.Link(d); ok {
			s.explored[next] = true
		}
	}
}

// AttemptTrade performs one store merge on the hand.
func (s *Session) AttemptTrade(selected []int, target RoomType) (Card, error) {
	if s.state != StatePlaying {
		return Card{}, ErrSessionEnded
	}
	return s.store.Trade(s.hand, selected, target)
}

// Gate prices (and caches) the gate leaving the current room in dir.
func (s *Session) Gate(dir Direction) (GateRequirement, error) {
	return s.gates.Gate(s.current, dir)
}

// RequiredType returns the card type demanded by the gate leaving the
// current room in dir.
func (s *Session) RequiredType(dir Direction) (RoomType, error) {
	return s.gates.RequiredType(s.current, dir)
}

// CanAfford reports whether the hand could pay the gate leaving the current
// room in dir. Used for the card glow hint.
func (s *Session) CanAfford(dir Direction) bool {
	return s.gates.CanAfford(s.hand, s.current, dir)
}

// Accessors for the presentation layer.

func (s *Session) State() SessionState    { return s.state }
func (s *Session) Points() int            { return s.points }
func (s *Session) FinalScore() int        { return s.finalScore }
func (s *Session) CurrentRoom() RoomID    { return s.current }
func (s *Session) StartRoom() RoomID      { return s.start }
func (s *Session) FinishRoom() RoomID     { return s.finish }
func (s *Session) Hand() *Hand            { return s.hand }
func (s *Session) World() *World          { return s.world }
func (s *Session) StoreUsesLeft() int     { return s.store.UsesLeft() }
func (s *Session) Difficulty() Difficulty { return s.diff }
func (s *Session) Rules() Rules           { return s.rules }

// Visited reports whether the player has entered the room.
func (s *Session) Visited(id RoomID) bool { return s.visited[id] }

// Explored reports whether the room has been revealed on the minimap.
func (s *Session) Explored(id RoomID) bool { return s.explored[id] }
