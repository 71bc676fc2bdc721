package contract

import (
	"strings"

	"vrf-ladders/sdk"
)

// ---------- Entry: Create ----------

// CreateGameImpl initializes a room record at the address derived from
// (sender, gameId).
//
// Payload: gameIdHex|maxPlayers|entryFee|rollFee[|finishRule[|edges]]
//   - finishRule: "exact" (default) or "clamp", see FinishRule.
//   - edges: comma-separated "from:to" pairs overriding the default
//     snake/ladder table; validated against the board invariants.
func CreateGameImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	gameID := parseHex32(nextField(&in), "game id", chain)
	maxPlayers := parseU8(nextField(&in), chain)
	entryFee := parseU64(nextField(&in), chain)
	rollFee := parseU64(nextField(&in), chain)
	finishRule := parseFinishRule(nextField(&in), chain)
	edgeSpec := nextField(&in)
	require(in == "", "too many arguments", chain)

	require(maxPlayers <= MaxPlayers, ErrTooManyPlayers, chain)
	require(maxPlayers >= 1, ErrNoPlayers, chain)

	creator := chain.GetEnv().Sender
	require(!gameExists(chain, creator, gameID), ErrGameAlreadyExists, chain)

	g := &Game{
		Creator:          creator,
		GameID:           gameID,
		MaxPlayers:       maxPlayers,
		Players:          nil,
		EntryFeeLamports: entryFee,
		RollFeeLamports:  rollFee,
		TotalPot:         0,
		CurrentTurnIndex: 0,
		TurnNonce:        0,
		WinPosition:      DefaultWinPosition,
		State:            Created,
		Finished:         false,
		FinishRule:       finishRule,
	}
	installEdges(g, edgeSpec, chain)

	saveGame(g, chain)
	EmitGameCreated(g, chain)
	return nil
}

func parseFinishRule(s string, chain SDKInterface) FinishRule {
	switch s {
	case "", "exact":
		return FinishExact
	case "clamp":
		return FinishClamp
	default:
		chain.Abort("invalid finish rule: " + s)
	}
	return FinishExact
}

// installEdges sets the room's snake/ladder table, either the built-in one
// or a creator-supplied list, and enforces the edge invariants.
func installEdges(g *Game, spec string, chain SDKInterface) {
	from := defaultMapFrom[:]
	to := defaultMapTo[:]

	if spec != "" {
		from, to = nil, nil
		for _, pair := range strings.Split(spec, ",") {
			i := strings.IndexByte(pair, ':')
			require(i > 0, ErrInvalidMap, chain)
			from = append(from, parseU8(pair[:i], chain))
			to = append(to, parseU8(pair[i+1:], chain))
		}
	}

	if reason := validateEdges(from, to, g.WinPosition); reason != "" {
		chain.Abort(ErrInvalidMap + ": " + reason)
	}
	copy(g.MapFrom[:], from)
	copy(g.MapTo[:], to)
	g.MapLen = uint8(len(from))
}

// ---------- Entry: Join ----------

// JoinGameImpl appends the sender to the room's turn order and escrows the
// entry fee. Payload: creator|gameIdHex.
func JoinGameImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	require(in == "", "too many arguments", chain)

	joiner := chain.GetEnv().Sender

	require(g.State == Created, ErrGameAlreadyStarted, chain)
	require(uint8(len(g.Players)) < g.MaxPlayers, ErrGameFull, chain)
	for _, p := range g.Players {
		require(p != joiner, ErrAlreadyJoined, chain)
	}

	collectFee(g, g.EntryFeeLamports, chain)
	g.Positions[len(g.Players)] = 0
	g.Players = append(g.Players, joiner)

	saveGame(g, chain)
	EmitPlayerJoined(g, joiner, chain)
	return nil
}

// ---------- Entry: Start ----------

// StartGameImpl moves the room from Created to Started and opens the turn
// order at the first joiner. Creator only. Payload: creator|gameIdHex.
func StartGameImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	require(in == "", "too many arguments", chain)

	require(chain.GetEnv().Sender == g.Creator, ErrUnauthorized, chain)
	require(g.State == Created, ErrGameAlreadyStarted, chain)
	require(len(g.Players) > 0, ErrNoPlayers, chain)

	g.State = Started
	g.CurrentTurnIndex = 0
	g.TurnNonce = 0

	saveGame(g, chain)
	EmitGameStarted(g, chain)
	return nil
}

// currentPlayer returns the player whose turn it is, aborting when the
// turn index no longer points into the roster.
func currentPlayer(g *Game, chain SDKInterface) sdk.Address {
	require(int(g.CurrentTurnIndex) < len(g.Players), ErrInvalidTurnIndex, chain)
	return g.Players[g.CurrentTurnIndex]
}
