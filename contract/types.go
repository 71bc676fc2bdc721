package contract

import "vrf-ladders/sdk"

// ---------- Types & Constants ----------

// GameState is the outer lifecycle of a room.
type GameState uint8

const (
	// Created means the room exists and accepts joins.
	Created GameState = 0
	// Started means the turn order is live and joins are closed.
	Started GameState = 1
	// Finished is terminal; only claimPrize and reads remain.
	Finished GameState = 2
)

// FinishRule decides what a roll past the final tile does.
type FinishRule uint8

const (
	// FinishExact requires landing exactly on the final tile;
	// an overshooting roll leaves the mover in place.
	FinishExact FinishRule = 0
	// FinishClamp caps the candidate tile at the final tile, so any
	// roll reaching or passing it wins.
	FinishClamp FinishRule = 1
)

const (
	// DefaultWinPosition is the finish tile.
	DefaultWinPosition uint8 = 100
	// MaxPlayers is the supported room capacity.
	MaxPlayers = 8
	// MaxMapSize caps the number of snake/ladder edges per room.
	MaxMapSize = 20
)

// Game is the authoritative record of one room. It lives under a single
// storage key derived from (creator, gameId) and is mutated only by the
// exported entry points, in consensus order.
//
// Positions, MapFrom and MapTo are fixed-capacity arrays indexed by join
// order / edge slot; Players carries the join order, MapLen the active
// edge count.
type Game struct {
	Creator          sdk.Address
	GameID           [32]byte
	MaxPlayers       uint8
	Players          []sdk.Address
	Positions        [MaxPlayers]uint8
	EntryFeeLamports uint64
	RollFeeLamports  uint64
	TotalPot         uint64
	CurrentTurnIndex uint8
	TurnNonce        uint64
	WinPosition      uint8
	State            GameState
	Finished         bool
	FinishRule       FinishRule
	Winner           *sdk.Address
	LastAnchor       [32]byte
	MapFrom          [MaxMapSize]uint8
	MapTo            [MaxMapSize]uint8
	MapLen           uint8
	PendingPlayer    *sdk.Address
}

// defaultMapFrom/defaultMapTo are the built-in snake and ladder edges
// installed when a room is created without a custom edge list.
var defaultMapFrom = [15]uint8{1, 4, 8, 21, 28, 32, 36, 48, 50, 62, 71, 80, 88, 95, 97}
var defaultMapTo = [15]uint8{38, 14, 30, 42, 76, 10, 6, 26, 67, 18, 92, 99, 24, 56, 78}
