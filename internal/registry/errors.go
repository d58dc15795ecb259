package registry

import "errors"

// All registry failures are expected, caller-facing conditions. Handlers map
// them onto HTTP status codes; nothing here is process-fatal.
var (
	ErrRoomNotFound        = errors.New("room-not-found")
	ErrPlayerNotFound      = errors.New("player-not-found")
	ErrGameAlreadyStarted  = errors.New("game-already-started")
	ErrNameTaken           = errors.New("player-name-taken")
	ErrNotHost             = errors.New("not-host")
	ErrInvalidTransition   = errors.New("invalid-transition")
	ErrSelectionNotActive  = errors.New("selection-not-active")
	ErrCharacterTaken      = errors.New("character-taken")
	ErrIncompleteSelection = errors.New("incomplete-selection")
	ErrCannotKickSelf      = errors.New("cannot-kick-self")
	ErrPlayerNotInRoom     = errors.New("player-not-in-room")
)
