package towergate

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/towergate/internal/core"
)

// Layout constants for the default 80x24 screen.
const (
	minScreenW = 64
	minScreenH = 22

	roomBoxX = 2
	roomBoxY = 3
	roomBoxW = 34
	roomBoxH = 11

	handY = 16
)

// typeColor returns the display color for a room/card type.
func typeColor(t RoomType) core.Color {
	switch t {
	case Jungle:
		return core.ColorGreen
	case Desert:
		return core.ColorYellow
	case Ice:
		return core.ColorCyan
	case Volcanic:
		return core.ColorRed
	case Arcane:
		return core.ColorMagenta
	default:
		return core.ColorGray
	}
}

// typeRune returns the one-letter tag for a room/card type.
func typeRune(t RoomType) rune {
	switch t {
	case Jungle:
		return 'J'
	case Desert:
		return 'D'
	case Ice:
		return 'I'
	case Volcanic:
		return 'V'
	case Arcane:
		return 'A'
	default:
		return '?'
	}
}

// Render draws the full game view: HUD, current room with its gates, the
// hand, the minimap, the active dialog and any end-of-run overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	g.renderHUD(dst)
	g.renderRoom(dst)
	g.renderMinimap(dst)
	g.renderHand(dst)

	switch g.mode {
	case modeGate:
		g.renderGateDialog(dst)
	case modeStore:
		g.renderStoreDialog(dst)
	}

	if g.message != "" {
		dst.DrawTextCenteredColored(dst.Height()-1, g.message, core.ColorBrightYellow)
	}

	switch g.session.State() {
	case StateWon:
		g.renderEndOverlay(dst, "YOU ESCAPED!",
			fmt.Sprintf("FINAL SCORE %d", g.session.FinalScore()), core.ColorBrightGreen)
	case StateLost:
		g.renderEndOverlay(dst, "GAME OVER", "Your points ran out", core.ColorBrightRed)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("POINTS %4d   STORE %d   %s",
		g.session.Points(), g.session.StoreUsesLeft(), strings.ToUpper(g.session.Difficulty().Name))
	dst.DrawTextColored(roomBoxX, 0, hud, core.ColorBrightWhite)

	room, err := g.session.World().Room(g.session.CurrentRoom())
	if err != nil {
		return
	}
	loc := fmt.Sprintf("ROOM (%d,%d) %s", room.X, room.Y, room.Type)
	dst.DrawTextColored(roomBoxX, 1, loc, typeColor(room.Type))

	if g.session.Explored(g.session.FinishRoom()) {
		fin, _ := g.session.World().Room(g.session.FinishRoom())
		if fin != nil {
			dst.DrawTextColored(roomBoxX+len(loc)+3, 1,
				fmt.Sprintf("EXIT SEEN AT (%d,%d)", fin.X, fin.Y), core.ColorBrightYellow)
		}
	} else {
		dst.DrawTextColored(roomBoxX+len(loc)+3, 1, "FIND THE EXIT", core.ColorGray)
	}
}

// renderRoom draws the current room as a box with its four gates on the
// edges: open gates as doorways, closed gates with their price and the
// card type they demand.
func (g *Game) renderRoom(dst *core.Screen) {
	room, err := g.session.World().Room(g.session.CurrentRoom())
	if err != nil {
		return
	}

	box := core.NewRect(roomBoxX, roomBoxY, roomBoxW, roomBoxH)
	dst.DrawBox(box)

	cx, cy := box.Center()
	dst.SetColored(cx, cy, '@', core.ColorBrightWhite)
	name := room.Type.String()
	dst.DrawTextColored(box.X+(box.W-len(name))/2, cy+2, name, typeColor(room.Type))

	for _, d := range Directions {
		g.renderGateEdge(dst, box, room, d)
	}
}

// renderGateEdge draws one gate marker on the room box edge.
func (g *Game) renderGateEdge(dst *core.Screen, box core.Rect, room *Room, d Direction) {
	if _, ok := room.Link(d); !ok {
		return
	}

	label := ""
	color := core.ColorGreen
	if room.GateOpen(d) {
		label = "OPEN"
	} else {
		req, err := g.session.Gate(d)
		if err != nil {
			return
		}
		t, err := g.session.RequiredType(d)
		if err != nil {
			return
		}
		label = fmt.Sprintf("%c%d", typeRune(t), req.Power)
		color = typeColor(t)
		if g.mode == modeGate && d == g.facing {
			color = core.ColorBrightWhite
		}
	}

	cx, cy := box.Center()
	switch d {
	case DirUp:
		dst.SetColored(cx, box.Y, '^', color)
		dst.DrawTextColored(cx+2, box.Y, label, color)
	case DirDown:
		dst.SetColored(cx, box.Bottom()-1, 'v', color)
		dst.DrawTextColored(cx+2, box.Bottom()-1, label, color)
	case DirLeft:
		dst.SetColored(box.X, cy, '<', color)
		dst.DrawTextColored(box.X+1, cy-1, label, color)
	case DirRight:
		dst.SetColored(box.Right()-1, cy, '>', color)
		dst.DrawTextColored(box.Right()-1-len(label), cy-1, label, color)
	}
}

// renderMinimap draws the circular minimap to the right of the room box,
// centered on the current room. Visited rooms show their type letter,
// frontier rooms a dot, and the exit an X once it has been revealed.
func (g *Game) renderMinimap(dst *core.Screen) {
	world := g.session.World()
	cur, err := world.Room(g.session.CurrentRoom())
	if err != nil {
		return
	}

	radius := g.session.Difficulty().MinimapRadius
	if radius < 1 {
		radius = 1
	}
	w, h := world.Size()

	// Map cells are double-width so the map reads roughly square.
	originX := roomBoxX + roomBoxW + 6
	originY := roomBoxY
	dst.DrawTextColored(originX, originY-1, "MAP", core.ColorGray)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cur.X+dx, cur.Y+dy
			if x < 0 || x >= w || y < 0 || y >= h {
				continue
			}
			id := world.RoomAt(x, y)
			sx := originX + (dx+radius)*2
			sy := originY + dy + radius

			switch {
			case id == g.session.CurrentRoom():
				dst.SetColored(sx, sy, '@', core.ColorBrightWhite)
			case id == g.session.FinishRoom() && g.session.Explored(id):
				dst.SetColored(sx, sy, 'X', core.ColorBrightYellow)
			case g.session.Visited(id):
				room, _ := world.Room(id)
				dst.SetColored(sx, sy, typeRune(room.Type), typeColor(room.Type))
			case g.session.Explored(id):
				dst.SetColored(sx, sy, '.', core.ColorGray)
			}
		}
	}
}

// renderHand draws the card list with slot numbers. Selected cards get a
// bracket marker; in gate mode, cards matching the faced gate's type are
// highlighted so the player can see what is spendable.
func (g *Game) renderHand(dst *core.Screen) {
	cards := g.session.Hand().Cards()
	dst.DrawTextColored(roomBoxX, handY, "HAND", core.ColorGray)

	var wantType RoomType = RoomTypeNone
	if g.mode == modeGate {
		if t, err := g.session.RequiredType(g.facing); err == nil {
			wantType = t
		}
	}

	perRow := 5
	for i, c := range cards {
		x := roomBoxX + (i%perRow)*13
		y := handY + 1 + i/perRow

		slot := (i + 1) % 10 // tenth card is the 0 key
		color := typeColor(c.Type)
		if wantType != RoomTypeNone && c.Type != wantType {
			color = core.ColorGray
		}

		open, close := ' ', ' '
		if g.selected[i] {
			open, close = '[', ']'
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("%d:", slot), core.ColorWhite)
		dst.SetColored(x+2, y, open, core.ColorBrightWhite)
		dst.DrawTextColored(x+3, y, fmt.Sprintf("%c%d %s", typeRune(c.Type), c.Power, shortType(c.Type)), color)
		dst.SetColored(x+11, y, close, core.ColorBrightWhite)
	}
}

// shortType returns a 4-letter type tag for the hand row.
func shortType(t RoomType) string {
	s := t.String()
	if len(s) > 4 {
		return s[:4]
	}
	return s
}

// renderGateDialog draws the unlock panel for the faced gate: price,
// required type, the selected power so far and the reward choice.
func (g *Game) renderGateDialog(dst *core.Screen) {
	req, err := g.session.Gate(g.facing)
	if err != nil {
		return
	}
	t, err := g.session.RequiredType(g.facing)
	if err != nil {
		return
	}

	selectedPower := 0
	if chosen, err := g.session.Hand().Peek(g.selection()); err == nil {
		for _, c := range chosen {
			selectedPower += c.Power
		}
	}

	x := roomBoxX + roomBoxW + 6
	y := roomBoxY + 2*g.session.Difficulty().MinimapRadius + 3

	dst.DrawTextColored(x, y, fmt.Sprintf("GATE %s -> %s", strings.ToUpper(g.facing.String()), t), typeColor(t))
	payColor := core.ColorWhite
	if selectedPower >= req.Power {
		payColor = core.ColorBrightGreen
	}
	dst.DrawTextColored(x, y+1, fmt.Sprintf("PRICE %d  PAYING %d", req.Power, selectedPower), payColor)

	dst.DrawTextColored(x, y+2, "REWARD:", core.ColorGray)
	rx := x + 8
	for i, r := range req.Rewards {
		open, close := ' ', ' '
		if i == g.rewardIndex {
			open, close = '[', ']'
		}
		dst.SetColored(rx, y+2, open, core.ColorBrightWhite)
		dst.DrawTextColored(rx+1, y+2, fmt.Sprintf("%c%d", typeRune(r.Type), r.Power), typeColor(r.Type))
		dst.SetColored(rx+3, y+2, close, core.ColorBrightWhite)
		rx += 5
	}

	dst.DrawTextColored(x, y+4, "1-0 cards  TAB reward  E pay  B back", core.ColorGray)
}

// renderStoreDialog draws the trade panel: uses left, the target type and
// the key hints.
func (g *Game) renderStoreDialog(dst *core.Screen) {
	x := roomBoxX + roomBoxW + 6
	y := roomBoxY + 2*g.session.Difficulty().MinimapRadius + 3

	dst.DrawTextColored(x, y, fmt.Sprintf("STORE  %d uses left", g.session.StoreUsesLeft()), core.ColorBrightCyan)
	dst.DrawTextColored(x, y+1, "Merge 2 same-type cards into 1", core.ColorGray)

	if g.targetType == RoomTypeNone {
		dst.DrawTextColored(x, y+2, "TARGET: - (TAB to choose)", core.ColorGray)
	} else {
		dst.DrawTextColored(x, y+2, fmt.Sprintf("TARGET: %s", g.targetType), typeColor(g.targetType))
	}

	dst.DrawTextColored(x, y+4, "1-0 cards  TAB target  E trade  B back", core.ColorGray)
}

// renderEndOverlay draws the centered end-of-run banner.
func (g *Game) renderEndOverlay(dst *core.Screen, title, detail string, color core.Color) {
	w := core.Max(len(title), len(detail)) + 8
	h := 7
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(box.Y+1, title, color)
	dst.DrawTextCentered(box.Y+3, detail)
	dst.DrawTextCenteredColored(box.Y+5, "R restart   B menu   Q quit", core.ColorGray)
}
