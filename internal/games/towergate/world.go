package towergate

import "math/rand"

// RoomID identifies a room: id = y*GridWidth + x.
type RoomID int

// Room is one cell of the grid. Everything except the gate flags is fixed
// at world creation. Gate flags flip to open exactly once, via World.OpenGate,
// and never revert.
type Room struct {
	ID   RoomID
	X, Y int
	Type RoomType

	links map[Direction]RoomID
	open  map[Direction]bool
}

// Link returns the neighbor in the given direction, if one exists.
// Rooms on the grid edge have no link through the outer wall.
func (r *Room) Link(d Direction) (RoomID, bool) {
	id, ok := r.links[d]
	return id, ok
}

// GateOpen reports whether the gate in the given direction has been opened.
// Directions without a link are never open.
func (r *Room) GateOpen(d Direction) bool {
	return r.open[d]
}

// World is the fixed 10x10 room graph. All rooms are created once and never
// added or destroyed; the only mutable state is the per-gate open flags.
type World struct {
	w, h  int
	rooms []*Room
}

// NewWorld builds the full grid: every room gets a uniformly random type and
// links to each in-bounds orthogonal neighbor. No wraparound. All gates
// start closed.
func NewWorld(w, h int, rng *rand.Rand) *World {
	world := &World{w: w, h: h, rooms: make([]*Room, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := RoomID(y*w + x)
			room := &Room{
				ID:    id,
				X:     x,
				Y:     y,
				Type:  RoomTypes[rng.Intn(len(RoomTypes))],
				links: make(map[Direction]RoomID),
				open:  make(map[Direction]bool),
			}
			for _, d := range Directions {
				dx, dy := d.Delta()
				nx, ny := x+dx, y+dy
				if nx >= 0 && nx < w && ny >= 0 && ny < h {
					room.links[d] = RoomID(ny*w + nx)
				}
			}
			world.rooms[id] = room
		}
	}
	return world
}

// Size returns the grid dimensions.
func (w *World) Size() (width, height int) {
	return w.w, w.h
}

// RoomAt returns the id of the room at grid position (x, y).
func (w *World) RoomAt(x, y int) RoomID {
	return RoomID(y*w.w + x)
}

// Room looks up a room by id. Ids are grid-derived, so a failure here is a
// caller bug, not a player condition.
func (w *World) Room(id RoomID) (*Room, error) {
	if id < 0 || int(id) >= len(w.rooms) {
		return nil, ErrRoomNotFound
	}
	return w.rooms[id], nil
}

// mustRoom is Room for grid-derived ids that cannot be out of range.
func (w *World) mustRoom(id RoomID) *Room {
	return w.rooms[id]
}

// OpenGate opens the gate from the given room in the given direction, and
// simultaneously the matching gate on the neighbor's side. This is the only
// mutator of world state. Opening an already-open gate is a no-op.
func (w *World) OpenGate(id RoomID, d Direction) error {
	room, err := w.Room(id)
	if err != nil {
		return err
	}
	next, ok := room.links[d]
	if !ok {
		return ErrNoSuchGate
	}
	room.open[d] = true
	w.mustRoom(next).open[d.Opposite()] = true
	return nil
}
