package towergate

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/towergate/internal/core"
)

// testGame creates a game on a fake clock. The returned advance function
// moves the clock forward; Step reads it on the next call.
func testGame(t *testing.T) (*Game, func(d time.Duration)) {
	t.Helper()

	clock := time.Unix(0, 0)
	g := New()
	g.now = func() time.Time { return clock }

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g.Reset(cfg)

	return g, func(d time.Duration) { clock = clock.Add(d) }
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameRegistration(t *testing.T) {
	g := New()
	if g.ID() != "towergate" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("empty title")
	}
}

func TestStepDecaysOnWallClock(t *testing.T) {
	g, advance := testGame(t)
	start := g.State().Score

	// Many steps with no elapsed time drain nothing.
	for i := 0; i < 100; i++ {
		g.Step(frame())
	}
	if got := g.State().Score; got != start {
		t.Errorf("score = %d after zero elapsed time, want %d", got, start)
	}

	advance(3 * time.Second)
	g.Step(frame())
	if got := g.State().Score; got != start-3*g.session.Difficulty().DecayPerSecond {
		t.Errorf("score = %d after 3s, want %d", got, start-3*g.session.Difficulty().DecayPerSecond)
	}
}

func TestStepLossAndRestart(t *testing.T) {
	g, advance := testGame(t)

	advance(time.Duration(g.session.Points()+10) * time.Second)
	g.Step(frame())

	st := g.State()
	if !st.GameOver || st.Won {
		t.Fatalf("state = %+v, want lost", st)
	}

	// Input other than restart is ignored after the end.
	g.Step(frame(core.ActionUp, core.ActionInteract))
	if !g.State().GameOver {
		t.Fatal("run resumed without restart")
	}

	g.Step(frame(core.ActionRestart))
	st = g.State()
	if st.GameOver {
		t.Fatal("still game over after restart")
	}
	if st.Score != g.session.Difficulty().MaxPoints {
		t.Errorf("score = %d after restart, want %d", st.Score, g.session.Difficulty().MaxPoints)
	}
}

func TestDirectionOpensGateDialog(t *testing.T) {
	g, _ := testGame(t)
	dir := closedDir(t, g.session)

	var action core.Action
	for _, da := range directionActions {
		if da.dir == dir {
			action = da.action
		}
	}

	before := g.session.CurrentRoom()
	g.Step(frame(action))

	if g.mode != modeGate || g.facing != dir {
		t.Fatalf("mode = %v facing %v, want gate dialog facing %v", g.mode, g.facing, dir)
	}
	if g.session.CurrentRoom() != before {
		t.Error("walked through a closed gate")
	}

	// Back returns to roaming and clears the selection.
	g.Step(frame(core.ActionCard1))
	g.Step(frame(core.ActionBack))
	if g.mode != modeRoam {
		t.Errorf("mode = %v after back, want roam", g.mode)
	}
	if len(g.selected) != 0 {
		t.Error("selection survived leaving the dialog")
	}
}

func TestGateDialogUnlock(t *testing.T) {
	g, _ := testGame(t)
	dir := closedDir(t, g.session)

	req, err := g.session.Gate(dir)
	if err != nil {
		t.Fatal(err)
	}
	need, _ := g.session.RequiredType(dir)
	g.session.hand = handOf(Card{need, req.Power})

	var action core.Action
	for _, da := range directionActions {
		if da.dir == dir {
			action = da.action
		}
	}
	before := g.session.CurrentRoom()

	g.Step(frame(action))              // face the gate
	g.Step(frame(core.ActionCard1))    // select the paying card
	g.Step(frame(core.ActionInteract)) // no reward chosen yet
	if g.session.CurrentRoom() != before {
		t.Fatal("unlock succeeded without a reward choice")
	}
	if g.message != "CHOOSE A REWARD!" {
		t.Errorf("message = %q", g.message)
	}

	g.Step(frame(core.ActionCycle))    // pick the first reward
	g.Step(frame(core.ActionInteract)) // pay

	if g.session.CurrentRoom() == before {
		t.Fatal("unlock did not move the player")
	}
	if g.mode != modeRoam {
		t.Errorf("mode = %v after unlock, want roam", g.mode)
	}
	if g.message != "GATE OPENED!" {
		t.Errorf("message = %q", g.message)
	}
}

func TestStoreDialogTrade(t *testing.T) {
	g, _ := testGame(t)
	g.session.hand = handOf(Card{Jungle, 4}, Card{Jungle, 4}, Card{Desert, 2})

	g.Step(frame(core.ActionStore))
	if g.mode != modeStore {
		t.Fatalf("mode = %v, want store", g.mode)
	}

	g.Step(frame(core.ActionCard1, core.ActionCard2))
	g.Step(frame(core.ActionInteract))
	if g.message != "CHOOSE TARGET TYPE!" {
		t.Errorf("message = %q", g.message)
	}

	g.Step(frame(core.ActionCycle)) // first target type
	g.Step(frame(core.ActionInteract))

	if g.message != "TRADE SUCCESS! POWER 8" {
		t.Errorf("message = %q", g.message)
	}
	if g.session.Hand().Len() != 2 {
		t.Errorf("hand len = %d, want 2", g.session.Hand().Len())
	}
	if len(g.selected) != 0 || g.targetType != RoomTypeNone {
		t.Error("trade did not reset the dialog selection")
	}
}

func TestCardToggle(t *testing.T) {
	g, _ := testGame(t)
	g.Step(frame(core.ActionStore))

	g.Step(frame(core.ActionCard3))
	if !g.selected[2] {
		t.Fatal("card 3 not selected")
	}
	g.Step(frame(core.ActionCard3))
	if g.selected[2] {
		t.Fatal("card 3 still selected after second toggle")
	}

	// Slots past the end of the hand are ignored.
	g.session.hand = handOf(Card{Jungle, 1})
	g.Step(frame(core.ActionCard9))
	if len(g.selected) != 0 {
		t.Error("selected a slot past the hand")
	}
}

func TestRenderSmoke(t *testing.T) {
	g, advance := testGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if screen.String() == core.NewScreen(80, 24).String() {
		t.Error("render drew nothing")
	}

	// Dialogs and the end overlay must render without panicking.
	g.Step(frame(core.ActionStore))
	g.Render(screen)

	advance(time.Duration(g.session.Points()+10) * time.Second)
	g.Step(frame())
	g.Render(screen)

	small := core.NewScreen(20, 5)
	g.Render(small)
}

func TestRenderClearsStaleCells(t *testing.T) {
	g, _ := testGame(t)
	screen := core.NewScreen(80, 24)

	g.setMessage("WRONG CARD TYPE!")
	g.Render(screen)
	if !strings.Contains(screen.Row(screen.Height()-1), "WRONG CARD TYPE!") {
		t.Fatal("status message not rendered")
	}

	// Let the message expire, then redraw into the same buffer.
	for i := 0; i < messageTickCount; i++ {
		g.Step(frame())
	}
	if g.message != "" {
		t.Fatalf("message = %q, want expired", g.message)
	}
	g.Render(screen)
	if strings.Contains(screen.Row(screen.Height()-1), "WRONG CARD TYPE!") {
		t.Error("expired message survived a redraw")
	}
}
