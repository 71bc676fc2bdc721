package contract

import "vrf-ladders/sdk"

// Roll sub-protocol, delivery side. The oracle answers a rollRequested
// event with an ordered consumeRandomness operation. Arbitrary time may
// have passed since the request, so every precondition is re-checked
// against the record as it stands now; the nonce and anchor echo make a
// stale or replayed delivery fail instead of moving the wrong player.

// ---------- Entry: ConsumeRandomness ----------

// ConsumeRandomnessImpl applies a randomness delivery to the pending roll:
// authenticates the oracle, matches the delivery to the outstanding
// request, derives the dice value, moves the player through the board
// edges, then finishes the game or advances the turn.
//
// Payload: creator|gameIdHex|nonce|mover|anchorHex|randomnessHex.
func ConsumeRandomnessImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	nonce := parseU64(nextField(&in), chain)
	mover := sdk.Address(nextField(&in))
	anchor := parseHex32(nextField(&in), "anchor", chain)
	randomness := parseHex32(nextField(&in), "randomness", chain)
	require(in == "", "too many arguments", chain)

	oracle := oracleAuthority(chain)
	require(oracle != nil, ErrInvalidVrfProgram, chain)
	require(chain.GetEnv().Sender == *oracle, ErrUnauthorizedEr, chain)

	require(!g.Finished, ErrGameFinished, chain)
	require(g.State == Started, ErrGameNotStarted, chain)

	// Correlate the delivery with the one outstanding request.
	require(g.PendingPlayer != nil, ErrInvalidNonce, chain)
	require(nonce == g.TurnNonce, ErrInvalidNonce, chain)
	require(anchor == g.LastAnchor, ErrInvalidNonce, chain)
	require(mover == *g.PendingPlayer, ErrMoverMismatch, chain)

	moverIndex := -1
	for i, p := range g.Players {
		if p == mover {
			moverIndex = i
			break
		}
	}
	require(moverIndex >= 0, ErrInvalidMover, chain)
	require(int(g.CurrentTurnIndex) == moverIndex, ErrInvalidTurnIndex, chain)

	dice := 1 + randomness[0]%6

	current := g.Positions[moverIndex]
	final := applyMove(g, current, dice)
	g.Positions[moverIndex] = final

	if final >= g.WinPosition {
		g.Winner = &mover
		g.State = Finished
		g.Finished = true
	} else {
		g.CurrentTurnIndex = uint8((int(g.CurrentTurnIndex) + 1) % len(g.Players))
	}
	g.PendingPlayer = nil

	saveGame(g, chain)
	EmitDiceRolled(g, mover, dice, current, final, chain)
	if g.Finished {
		EmitGameWon(g, mover, chain)
	}
	return nil
}

// applyMove computes the final tile for a dice value from the current one:
// overshoot handling per the room's finish rule, then edge resolution on
// the landing tile. An overshooting roll under FinishExact never lands, so
// no edge applies.
func applyMove(g *Game, current, dice uint8) uint8 {
	candidate := current + dice
	if candidate > g.WinPosition {
		if g.FinishRule == FinishExact {
			return current
		}
		candidate = g.WinPosition
	}
	if candidate == g.WinPosition {
		return candidate
	}
	return resolveTile(g, candidate)
}
