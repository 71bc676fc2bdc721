package contract

// Abort codes surfaced to callers. Every failed precondition aborts the
// whole call with one of these; nothing is written on failure.
const (
	ErrTooManyPlayers     = "TooManyPlayers"
	ErrGameFinished       = "GameFinished"
	ErrGameFull           = "GameFull"
	ErrAlreadyJoined      = "AlreadyJoined"
	ErrUnauthorized       = "Unauthorized"
	ErrUnauthorizedEr     = "UnauthorizedEr"
	ErrInvalidNonce       = "InvalidNonce"
	ErrInvalidWinner      = "InvalidWinner"
	ErrNoPlayers          = "NoPlayers"
	ErrInvalidTurnIndex   = "InvalidTurnIndex"
	ErrNotYourTurn        = "NotYourTurn"
	ErrNonceOverflow      = "NonceOverflow"
	ErrInvalidMover       = "InvalidMover"
	ErrMoverMismatch      = "MoverMismatch"
	ErrGameAlreadyStarted = "GameAlreadyStarted"
	ErrGameNotStarted     = "GameNotStarted"
	ErrInvalidVrfProgram  = "InvalidVrfProgram"
	ErrGameNotFinished    = "GameNotFinished"

	// RollAlreadyPending rejects a second requestRoll (or a passTurn)
	// while a randomness delivery is outstanding. Kept distinct from
	// NotYourTurn: the caller may well be the current player.
	ErrRollAlreadyPending = "RollAlreadyPending"

	ErrGameAlreadyExists = "GameAlreadyExists"
	ErrGameNotFound      = "GameNotFound"
	ErrInvalidMap        = "InvalidMap"
)
