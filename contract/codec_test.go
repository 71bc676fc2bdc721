package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	req "github.com/stretchr/testify/require"

	"vrf-ladders/chainmock"
	"vrf-ladders/sdk"
)

func freshGame() *Game {
	g := &Game{
		Creator:          alice,
		GameID:           testGameID("codec"),
		MaxPlayers:       4,
		EntryFeeLamports: testEntryFee,
		RollFeeLamports:  testRollFee,
		WinPosition:      DefaultWinPosition,
		State:            Created,
	}
	copy(g.MapFrom[:], defaultMapFrom[:])
	copy(g.MapTo[:], defaultMapTo[:])
	g.MapLen = uint8(len(defaultMapFrom))
	return g
}

func TestCodecRoundTripFresh(t *testing.T) {
	chain := chainmock.New(alice)
	g := freshGame()
	got := decodeGame(encodeGame(g), chain)
	assert.Equal(t, g, got)
}

func TestCodecRoundTripLive(t *testing.T) {
	chain := chainmock.New(alice)
	g := freshGame()
	g.Players = []sdk.Address{alice, bob, carol}
	g.Positions[0] = 42
	g.Positions[1] = 7
	g.Positions[2] = 99
	g.State = Started
	g.CurrentTurnIndex = 2
	g.TurnNonce = 17
	g.TotalPot = 3*testEntryFee + 17*testRollFee
	g.FinishRule = FinishClamp
	g.LastAnchor = testGameID("anchor")
	pending := carol
	g.PendingPlayer = &pending

	got := decodeGame(encodeGame(g), chain)
	assert.Equal(t, g, got)
}

func TestCodecRoundTripFinished(t *testing.T) {
	chain := chainmock.New(alice)
	g := freshGame()
	g.Players = []sdk.Address{alice, bob}
	g.State = Finished
	g.Finished = true
	winner := bob
	g.Winner = &winner

	got := decodeGame(encodeGame(g), chain)
	req.NotNil(t, got.Winner)
	assert.Equal(t, g, got)
}

func TestCodecRejectsTrailingBytes(t *testing.T) {
	chain := chainmock.New(alice)
	b := encodeGame(freshGame())
	b = append(b, 0xff)
	expectAbort(t, "trailing bytes", func() { decodeGame(b, chain) })
}

func TestCodecRejectsWrongVersion(t *testing.T) {
	chain := chainmock.New(alice)
	b := encodeGame(freshGame())
	b[0] = codecVersion + 1
	expectAbort(t, "unsupported version", func() { decodeGame(b, chain) })
}
