// Package towergate implements the room-and-gate puzzle game: a 10x10 grid
// of themed rooms connected by priced gates, a hand of typed power cards to
// spend on them, and a decaying point counter racing the player to a hidden
// goal room. Game logic is pure and platform-free; the tui package drives it.
package towergate

// RoomType is one of the five thematic room/card kinds.
// Cards and rooms share the same type space: a gate is paid with cards
// matching the type of the room it leads to.
type RoomType int

const (
	Jungle RoomType = iota
	Desert
	Ice
	Volcanic
	Arcane

	// RoomTypeNone marks "no type chosen" in UI selections (store target).
	RoomTypeNone RoomType = -1
)

// RoomTypes lists all valid room types, for random assignment and UI cycling.
var RoomTypes = [...]RoomType{Jungle, Desert, Ice, Volcanic, Arcane}

// String returns the display name of the type.
func (t RoomType) String() string {
	switch t {
	case Jungle:
		return "Jungle"
	case Desert:
		return "Desert"
	case Ice:
		return "Ice"
	case Volcanic:
		return "Volcanic"
	case Arcane:
		return "Arcane"
	default:
		return "None"
	}
}

// Direction is a compass direction between adjacent rooms.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse direction. Gate state is kept symmetric:
// opening a gate in direction D also opens Opposite(D) on the neighbor.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the grid offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// Grid and card economy constants. The grid is fixed at world creation;
// card powers are uniform in [CardMinPower, CardMaxPower] except the opening
// hand, which is biased to [StrongMinPower, CardMaxPower].
const (
	GridWidth  = 10
	GridHeight = 10

	CardMinPower   = 1
	CardMaxPower   = 9
	StrongMinPower = 6

	// HandSize is the opening hand size and the UI layout capacity.
	// It is not enforced as a hard cap: gate rewards and trade results
	// are appended unconditionally.
	HandSize = 10

	// RewardChoices is how many reward cards a gate offers on unlock.
	RewardChoices = 2

	// MinFinishColumnGap is the minimum column distance between start and
	// finish rooms. Column distance only, matching the original rule; two
	// rooms four columns apart can still share a row.
	MinFinishColumnGap = 4
)

// Rules are the structural parameters of a run: the world dimensions and the
// card economy bounds. Difficulty tunes the scoring knobs; Rules tune the
// board itself and normally come from the config file.
type Rules struct {
	GridWidth  int
	GridHeight int

	CardMinPower   int
	CardMaxPower   int
	StrongMinPower int
	HandSize       int

	RewardChoices int
}

// DefaultRules returns the classic ruleset.
func DefaultRules() Rules {
	return Rules{
		GridWidth:      GridWidth,
		GridHeight:     GridHeight,
		CardMinPower:   CardMinPower,
		CardMaxPower:   CardMaxPower,
		StrongMinPower: StrongMinPower,
		HandSize:       HandSize,
		RewardChoices:  RewardChoices,
	}
}
