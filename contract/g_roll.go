package contract

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"vrf-ladders/sdk"
)

// Roll sub-protocol, request side. A roll is split across two ordered
// operations: requestRoll escrows the fee, arms the single pending slot and
// dispatches a randomness request; consumeRandomness (g_vrf.go) resolves
// it. Between the two, the room's turn order is frozen.

// computeAnchor derives the commitment binding a randomness delivery to one
// specific request: the room address, the nonce of the request, the mover
// and the mover's client seed all feed into it.
func computeAnchor(g *Game, nonce uint64, mover sdk.Address, clientSeed [32]byte) [32]byte {
	h := sha256.New()
	h.Write([]byte(gameKey(g.Creator, g.GameID)))
	var nb [8]byte
	binary.BigEndian.PutUint64(nb[:], nonce)
	h.Write(nb[:])
	h.Write([]byte(mover))
	h.Write(clientSeed[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// ---------- Entry: RequestRoll ----------

// RequestRollImpl escrows the roll fee, bumps the turn nonce, records the
// anchor commitment and arms PendingPlayer, then emits the rollRequested
// event the oracle answers. Payload: creator|gameIdHex|clientSeedHex.
func RequestRollImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	clientSeed := parseHex32(nextField(&in), "client seed", chain)
	require(in == "", "too many arguments", chain)

	require(!g.Finished, ErrGameFinished, chain)
	require(g.State == Started, ErrGameNotStarted, chain)
	require(g.PendingPlayer == nil, ErrRollAlreadyPending, chain)

	mover := currentPlayer(g, chain)
	sender := chain.GetEnv().Sender
	require(sender == mover, ErrNotYourTurn, chain)

	collectFee(g, g.RollFeeLamports, chain)

	require(g.TurnNonce < math.MaxUint64, ErrNonceOverflow, chain)
	g.TurnNonce++
	g.LastAnchor = computeAnchor(g, g.TurnNonce, mover, clientSeed)
	g.PendingPlayer = &mover

	saveGame(g, chain)
	EmitRollRequested(g, mover, chain)
	return nil
}

// ---------- Entry: PassTurn ----------

// PassTurnImpl advances the turn order without a roll and without a fee.
// Not allowed while a roll is pending. Payload: creator|gameIdHex.
func PassTurnImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	require(in == "", "too many arguments", chain)

	require(!g.Finished, ErrGameFinished, chain)
	require(g.State == Started, ErrGameNotStarted, chain)
	require(g.PendingPlayer == nil, ErrRollAlreadyPending, chain)
	require(len(g.Players) > 0, ErrNoPlayers, chain)

	player := currentPlayer(g, chain)
	require(chain.GetEnv().Sender == player, ErrNotYourTurn, chain)

	g.CurrentTurnIndex = uint8((int(g.CurrentTurnIndex) + 1) % len(g.Players))
	require(g.TurnNonce < math.MaxUint64, ErrNonceOverflow, chain)
	g.TurnNonce++

	saveGame(g, chain)
	EmitTurnPassed(g, player, chain)
	return nil
}
