package contract

// ---------- Entry: ClaimPrize ----------

// ClaimPrizeImpl pays the whole pot out to the winner and zeroes it.
// Safe to call again after a successful claim: the pot is already zero, so
// nothing moves and the call still succeeds. Payload: creator|gameIdHex.
func ClaimPrizeImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	require(in == "", "too many arguments", chain)

	require(g.State == Finished && g.Finished, ErrGameNotFinished, chain)
	require(g.Winner != nil, ErrInvalidWinner, chain)

	winner := chain.GetEnv().Sender
	require(winner == *g.Winner, ErrInvalidWinner, chain)

	amount := payoutPot(g, chain)
	saveGame(g, chain)

	EmitPrizeClaimed(g, winner, amount, chain)
	return nil
}
