package contract

import "vrf-ladders/sdk"

// Event is the common structure for everything the contract emits.
// Events are the contract's only push channel: the randomness oracle
// subscribes to rollRequested, UIs to the rest.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent logs an event as JSON through the chain.
func emitEvent(eventType string, attributes map[string]string, chain SDKInterface) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

func roomAttrs(g *Game) map[string]string {
	return map[string]string{
		"creator": string(g.Creator),
		"gameId":  hex32(g.GameID),
	}
}

// EmitGameCreated emits an event when a new room is created.
func EmitGameCreated(g *Game, chain SDKInterface) {
	a := roomAttrs(g)
	a["maxPlayers"] = UInt64ToString(uint64(g.MaxPlayers))
	a["entryFee"] = UInt64ToString(g.EntryFeeLamports)
	a["rollFee"] = UInt64ToString(g.RollFeeLamports)
	emitEvent("gameCreated", a, chain)
}

// EmitPlayerJoined emits an event when a player joins a room.
func EmitPlayerJoined(g *Game, player sdk.Address, chain SDKInterface) {
	a := roomAttrs(g)
	a["player"] = string(player)
	a["pot"] = UInt64ToString(g.TotalPot)
	emitEvent("playerJoined", a, chain)
}

// EmitGameStarted emits an event when the turn order goes live.
func EmitGameStarted(g *Game, chain SDKInterface) {
	a := roomAttrs(g)
	a["players"] = UInt64ToString(uint64(len(g.Players)))
	emitEvent("gameStarted", a, chain)
}

// EmitRollRequested is the randomness request dispatched to the oracle.
// It carries the mover, the turn nonce, and the anchor commitment the
// delivery must echo, so the callback binds to exactly this request.
func EmitRollRequested(g *Game, mover sdk.Address, chain SDKInterface) {
	a := roomAttrs(g)
	a["mover"] = string(mover)
	a["nonce"] = UInt64ToString(g.TurnNonce)
	a["anchor"] = hex32(g.LastAnchor)
	emitEvent("rollRequested", a, chain)
}

// EmitDiceRolled emits the resolved move of a randomness delivery.
func EmitDiceRolled(g *Game, mover sdk.Address, dice, from, to uint8, chain SDKInterface) {
	a := roomAttrs(g)
	a["mover"] = string(mover)
	a["dice"] = UInt64ToString(uint64(dice))
	a["from"] = UInt64ToString(uint64(from))
	a["to"] = UInt64ToString(uint64(to))
	emitEvent("diceRolled", a, chain)
}

// EmitTurnPassed emits an event when a player waives their roll.
func EmitTurnPassed(g *Game, player sdk.Address, chain SDKInterface) {
	a := roomAttrs(g)
	a["player"] = string(player)
	emitEvent("turnPassed", a, chain)
}

// EmitGameWon emits an event when a player reaches the final tile.
func EmitGameWon(g *Game, winner sdk.Address, chain SDKInterface) {
	a := roomAttrs(g)
	a["winner"] = string(winner)
	a["pot"] = UInt64ToString(g.TotalPot)
	emitEvent("gameWon", a, chain)
}

// EmitPrizeClaimed emits an event when the pot is paid out.
func EmitPrizeClaimed(g *Game, winner sdk.Address, amount uint64, chain SDKInterface) {
	a := roomAttrs(g)
	a["winner"] = string(winner)
	a["amount"] = UInt64ToString(amount)
	emitEvent("prizeClaimed", a, chain)
}

// EmitFeeDeposited emits an event when escrow is topped up.
func EmitFeeDeposited(g *Game, payer sdk.Address, amount uint64, chain SDKInterface) {
	a := roomAttrs(g)
	a["payer"] = string(payer)
	a["amount"] = UInt64ToString(amount)
	emitEvent("feeDeposited", a, chain)
}
