package contract

import (
	"vrf-ladders/sdk"
)

// Pot accounting. Every lamport escrowed into a room is tracked in
// TotalPot; the only outflow is the winner's payout. Fee collection and the
// state change that justifies it commit in the same call, so a failed
// precondition never leaves a drawn fee behind.

// firstTransferAllow scans the call's intents for one transfer.allow
// instruction and returns its lamport limit. Nil if missing.
func firstTransferAllow(intents []sdk.Intent, chain SDKInterface) *uint64 {
	for _, intent := range intents {
		if intent.Type == "transfer.allow" {
			limit := parseU64(intent.Args["limit"], chain)
			return &limit
		}
	}
	return nil
}

// collectFee draws amount lamports from the sender into the room's escrow
// and adds them to the pot. The sender must have attached a transfer.allow
// intent covering the amount.
func collectFee(g *Game, amount uint64, chain SDKInterface) {
	if amount == 0 {
		return
	}
	allow := firstTransferAllow(chain.GetEnv().Intents, chain)
	require(allow != nil, "intent missing", chain)
	require(*allow >= amount, "intent limit below fee", chain)
	chain.Draw(amount)
	g.TotalPot += amount
}

// payoutPot transfers the whole pot to the winner and zeroes it.
// A zero pot transfers nothing, which makes claimPrize idempotent.
func payoutPot(g *Game, chain SDKInterface) uint64 {
	amount := g.TotalPot
	if amount == 0 {
		return 0
	}
	chain.Transfer(*g.Winner, amount)
	g.TotalPot = 0
	return amount
}

// ---------- Entry: DepositFee ----------

// DepositFeeImpl tops up a room's escrow with an arbitrary amount.
// Payload: creator|gameIdHex|amount. Used internally by join/roll flows on
// chains where fees arrive as separate transfers; exposed for completeness.
func DepositFeeImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	amount := parseU64(nextField(&in), chain)
	require(in == "", "too many arguments", chain)

	require(!g.Finished, ErrGameFinished, chain)

	collectFee(g, amount, chain)
	saveGame(g, chain)

	EmitFeeDeposited(g, chain.GetEnv().Sender, amount, chain)
	return nil
}
