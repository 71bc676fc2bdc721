package contract

import "vrf-ladders/sdk"

// Storage layout: one key per room, derived deterministically from the
// creator and the 32-byte game id. A room is created once under that key
// and never recreated; after payout it stays readable.

func gameKey(creator sdk.Address, gameID [32]byte) string {
	return "game:" + string(creator) + ":" + hex32(gameID)
}

func adminKey(name string) string { return "admin:" + name }

func saveGame(g *Game, chain SDKInterface) {
	chain.StateSetObject(gameKey(g.Creator, g.GameID), string(encodeGame(g)))
}

// LoadGame reads a room record by its (creator, gameId) address.
// Aborts with GameNotFound when no room exists there.
func LoadGame(chain SDKInterface, creator sdk.Address, gameID [32]byte) *Game {
	val := chain.StateGetObject(gameKey(creator, gameID))
	if val == nil || *val == "" {
		chain.Abort(ErrGameNotFound)
	}
	return decodeGame([]byte(*val), chain)
}

func gameExists(chain SDKInterface, creator sdk.Address, gameID [32]byte) bool {
	val := chain.StateGetObject(gameKey(creator, gameID))
	return val != nil && *val != ""
}

// loadRoomArgs parses the leading "creator|gameIdHex" fields every
// room-scoped entry point starts with and loads the record.
func loadRoomArgs(in *string, chain SDKInterface) *Game {
	creator := sdk.Address(nextField(in))
	gameID := parseHex32(nextField(in), "game id", chain)
	return LoadGame(chain, creator, gameID)
}
