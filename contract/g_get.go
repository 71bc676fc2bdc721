package contract

// ---------- Entry: GetGame ----------

// GetGameImpl renders a room record as a pipe-delimited line for pollers:
//
//	creator|gameId|maxPlayers|state|finished|turnIndex|turnNonce|pot|
//	entryFee|rollFee|winPos|finishRule|winner|pending|anchor|
//	players(csv)|positions(csv)|edges(csv from:to)
//
// Payload: creator|gameIdHex.
func GetGameImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	g := loadRoomArgs(&in, chain)
	require(in == "", "too many arguments", chain)

	out := make([]byte, 0, 256)
	sep := func() { out = append(out, '|') }

	out = append(out, g.Creator...)
	sep()
	out = append(out, hex32(g.GameID)...)
	sep()
	out = appendU8(out, g.MaxPlayers)
	sep()
	out = appendU8(out, uint8(g.State))
	sep()
	if g.Finished {
		out = append(out, '1')
	} else {
		out = append(out, '0')
	}
	sep()
	out = appendU8(out, g.CurrentTurnIndex)
	sep()
	out = appendU64(out, g.TurnNonce)
	sep()
	out = appendU64(out, g.TotalPot)
	sep()
	out = appendU64(out, g.EntryFeeLamports)
	sep()
	out = appendU64(out, g.RollFeeLamports)
	sep()
	out = appendU8(out, g.WinPosition)
	sep()
	out = appendU8(out, uint8(g.FinishRule))
	sep()
	if g.Winner != nil {
		out = append(out, (*g.Winner)...)
	}
	sep()
	if g.PendingPlayer != nil {
		out = append(out, (*g.PendingPlayer)...)
	}
	sep()
	out = append(out, hex32(g.LastAnchor)...)
	sep()
	for i, p := range g.Players {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, p...)
	}
	sep()
	for i := 0; i < len(g.Players); i++ {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendU8(out, g.Positions[i])
	}
	sep()
	for i := uint8(0); i < g.MapLen; i++ {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendU8(out, g.MapFrom[i])
		out = append(out, ':')
		out = appendU8(out, g.MapTo[i])
	}

	s := string(out)
	return &s
}
