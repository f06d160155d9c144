package towergate

import "errors"

// Validation errors for gate and store transactions. All of these are
// recoverable: a failed transaction mutates nothing and the player may
// retry. They surface in the UI as transient status messages.
var (
	// Gate unlock failures.
	ErrInvalidSelection  = errors.New("towergate: selection indices out of range or duplicated")
	ErrWrongType         = errors.New("towergate: selected card type does not match the gate")
	ErrInsufficientPower = errors.New("towergate: selected cards sum below the gate price")
	ErrNoRewardChosen    = errors.New("towergate: no reward card chosen")

	// Store trade failures.
	ErrWrongSelectionCount = errors.New("towergate: trade requires exactly two cards")
	ErrTypeMismatch        = errors.New("towergate: traded cards must share a type")
	ErrNoTargetType        = errors.New("towergate: no target type chosen")
	ErrStoreExhausted      = errors.New("towergate: no store uses left")
)

// Structural errors. These indicate a programming mistake (querying a gate
// through an outer wall, a room id outside the grid, acting on an ended
// session) rather than a player-visible condition.
var (
	ErrRoomNotFound = errors.New("towergate: room id outside the grid")
	ErrNoSuchGate   = errors.New("towergate: no neighbor in that direction")
	ErrGateOpen     = errors.New("towergate: gate is already open")
	ErrSessionEnded = errors.New("towergate: session has ended")
)
