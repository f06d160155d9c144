package towergate

import (
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/towergate/internal/config"
	"github.com/vovakirdan/towergate/internal/core"
	"github.com/vovakirdan/towergate/internal/registry"
)

func init() {
	registry.Register("towergate", func() registry.Game {
		return New()
	})
}

// Package-level knobs the CLI sets before the platform calls Reset.
var (
	configPath string
	preset     = config.DifficultyNormal
)

// SetConfigPath sets a custom config file path for subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects the difficulty preset for subsequent resets.
func SetDifficulty(p config.DifficultyPreset) {
	preset = p
}

// uiMode is the input focus: roaming the room, negotiating a gate, or
// trading at the store. Entering or leaving a mode clears any pending
// selection, so a half-built gate payment never leaks into a trade.
type uiMode int

const (
	modeRoam uiMode = iota
	modeGate
	modeStore
)

// messageTickCount is how long a status message stays up (~1.5s at 60 fps).
const messageTickCount = 90

// Game adapts a Session to the platform's Game interface: it owns the
// wall-clock decay timing, the UI mode state machine and the status
// message line, and translates platform actions into session transactions.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.GameConfig

	mode        uiMode
	facing      Direction
	selected    map[int]bool
	rewardIndex int
	targetType  RoomType

	message      string
	messageTicks int

	// now is swappable so tests can drive the decay clock.
	now      func() time.Time
	lastStep time.Time
}

// New creates an uninitialized game. Reset must be called before Step.
func New() *Game {
	return &Game{now: time.Now}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "towergate"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Towergate"
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	gc, err := config.Load(configPath)
	if err != nil {
		gc = config.DefaultConfig()
	}
	g.cfg = gc

	seed := cfg.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}

	g.session = NewSession(rulesFromConfig(gc), difficultyFromConfig(gc, preset), seed)
	g.lastStep = g.now()
	g.mode = modeRoam
	g.clearOverlay()
	g.message = ""
	g.messageTicks = 0
}

// rulesFromConfig maps the loaded config onto a ruleset, keeping the
// default for any field the file leaves unset.
func rulesFromConfig(gc config.GameConfig) Rules {
	r := DefaultRules()
	if gc.Grid.Width > 0 {
		r.GridWidth = gc.Grid.Width
	}
	if gc.Grid.Height > 0 {
		r.GridHeight = gc.Grid.Height
	}
	if gc.Cards.MinPower > 0 {
		r.CardMinPower = gc.Cards.MinPower
	}
	if gc.Cards.MaxPower > 0 {
		r.CardMaxPower = gc.Cards.MaxPower
	}
	if gc.Cards.StrongMinPower > 0 {
		r.StrongMinPower = gc.Cards.StrongMinPower
	}
	if gc.Cards.HandSize > 0 {
		r.HandSize = gc.Cards.HandSize
	}
	if gc.Gates.RewardChoices > 0 {
		r.RewardChoices = gc.Gates.RewardChoices
	}
	return r
}

func difficultyFromConfig(gc config.GameConfig, p config.DifficultyPreset) Difficulty {
	d := gc.Difficulty(p)
	return Difficulty{
		Name:            string(p),
		MaxPoints:       d.MaxPoints,
		DecayPerSecond:  d.DecayPerSecond,
		StoreUses:       d.StoreUses,
		MinimapRadius:   d.MinimapRadius,
		ScoreMultiplier: d.ScoreMultiplier,
	}
}

// Step advances the decay clock by real elapsed time and processes input
// for the current UI mode.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.now()
	g.session.Tick(now.Sub(g.lastStep))
	g.lastStep = now

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.session.State() != StatePlaying {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return g.result()
	}

	switch g.mode {
	case modeRoam:
		g.stepRoam(in)
	case modeGate:
		g.stepGate(in)
	case modeStore:
		g.stepStore(in)
	}
	return g.result()
}

// restart begins a new run with the same difficulty. The session's RNG
// stream continues, so the new world differs from the last one.
func (g *Game) restart() {
	g.session.Reset(g.session.Difficulty())
	g.mode = modeRoam
	g.clearOverlay()
	g.message = ""
	g.messageTicks = 0
}

// directionActions maps movement actions to directions in a stable order,
// so two directions pressed in the same frame resolve deterministically.
var directionActions = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// stepRoam handles free movement: open gates are walked through, closed
// gates open the gate panel facing that direction.
func (g *Game) stepRoam(in core.InputFrame) {
	if in.Has(core.ActionStore) {
		g.mode = modeStore
		g.clearOverlay()
		return
	}
	for _, da := range directionActions {
		if !in.Has(da.action) {
			continue
		}
		if g.session.Move(da.dir) {
			return
		}
		// Closed gate: face it and start the unlock dialog. Directions
		// with no neighbor are ignored.
		if _, err := g.session.Gate(da.dir); err == nil {
			g.mode = modeGate
			g.facing = da.dir
			g.clearOverlay()
		}
		return
	}
}

// stepGate handles the unlock dialog: digits toggle payment cards, Cycle
// picks a reward, Interact attempts the transaction. A failed attempt
// keeps the selection so the player can adjust it.
func (g *Game) stepGate(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.mode = modeRoam
		g.clearOverlay()
		return
	}
	if in.Has(core.ActionStore) {
		g.mode = modeStore
		g.clearOverlay()
		return
	}
	for _, da := range directionActions {
		if !in.Has(da.action) || da.dir == g.facing {
			continue
		}
		// Re-aim at a different gate, or just walk through an open one.
		if g.session.Move(da.dir) {
			g.mode = modeRoam
			g.clearOverlay()
			return
		}
		if _, err := g.session.Gate(da.dir); err == nil {
			g.facing = da.dir
			g.clearOverlay()
		}
		return
	}

	g.toggleCards(in)

	if in.Has(core.ActionCycle) {
		if req, err := g.session.Gate(g.facing); err == nil && len(req.Rewards) > 0 {
			g.rewardIndex = (g.rewardIndex + 1) % len(req.Rewards)
		}
	}

	if in.Has(core.ActionInteract) {
		err := g.session.AttemptUnlock(g.facing, g.selection(), g.rewardIndex)
		switch err {
		case nil:
			g.setMessage("GATE OPENED!")
			g.mode = modeRoam
			g.clearOverlay()
		case ErrWrongType:
			g.setMessage("WRONG CARD TYPE!")
		case ErrInsufficientPower:
			g.setMessage("NOT ENOUGH POWER!")
		case ErrNoRewardChosen:
			g.setMessage("CHOOSE A REWARD!")
		case ErrInvalidSelection:
			g.setMessage("SELECT CARDS FIRST!")
		case ErrGateOpen:
			// Opened out from under the dialog; just walk through.
			g.session.Move(g.facing)
			g.mode = modeRoam
			g.clearOverlay()
		}
	}
}

// stepStore handles the trade dialog: digits pick the two cards to merge,
// Cycle picks the target type, Interact attempts the trade.
func (g *Game) stepStore(in core.InputFrame) {
	if in.Has(core.ActionBack) || in.Has(core.ActionStore) {
		g.mode = modeRoam
		g.clearOverlay()
		return
	}

	g.toggleCards(in)

	if in.Has(core.ActionCycle) {
		g.targetType = nextRoomType(g.targetType)
	}

	if in.Has(core.ActionInteract) {
		merged, err := g.session.AttemptTrade(g.selection(), g.targetType)
		switch err {
		case nil:
			g.setMessage(fmt.Sprintf("TRADE SUCCESS! POWER %d", merged.Power))
			g.clearOverlay()
		case ErrStoreExhausted:
			g.setMessage("STORE EMPTY!")
		case ErrWrongSelectionCount, ErrInvalidSelection:
			g.setMessage("SELECT 2 CARDS!")
		case ErrTypeMismatch:
			g.setMessage("CARDS MUST BE SAME TYPE!")
		case ErrNoTargetType:
			g.setMessage("CHOOSE TARGET TYPE!")
		}
	}
}

// toggleCards flips the selection state of every card slot toggled this
// frame, ignoring slots past the end of the hand.
func (g *Game) toggleCards(in core.InputFrame) {
	for _, i := range in.CardToggles() {
		if i >= g.session.Hand().Len() {
			continue
		}
		if g.selected[i] {
			delete(g.selected, i)
		} else {
			g.selected[i] = true
		}
	}
}

// nextRoomType cycles through the store target types, starting from none.
func nextRoomType(t RoomType) RoomType {
	if t == RoomTypeNone {
		return RoomTypes[0]
	}
	return RoomTypes[(int(t)+1)%len(RoomTypes)]
}

// selection returns the selected hand positions in ascending order.
func (g *Game) selection() []int {
	out := make([]int, 0, len(g.selected))
	for i := range g.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (g *Game) clearOverlay() {
	g.selected = make(map[int]bool)
	g.rewardIndex = -1
	g.targetType = RoomTypeNone
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTicks = messageTickCount
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// State reports the run status. Score is the live point counter while
// playing and the multiplied final score after a win.
func (g *Game) State() core.GameState {
	st := g.session.State()
	score := g.session.Points()
	if st == StateWon {
		score = g.session.FinalScore()
	}
	return core.GameState{
		Score:    score,
		GameOver: st != StatePlaying,
		Won:      st == StateWon,
	}
}
