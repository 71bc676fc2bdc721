package contract

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	req "github.com/stretchr/testify/require"

	"vrf-ladders/chainmock"
	"vrf-ladders/sdk"
)

func TestCreateGameDefaults(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("defaults")
	createRoom(t, chain, gameID, 4, "")

	g := LoadGame(chain, alice, gameID)
	assert.Equal(t, alice, g.Creator)
	assert.Equal(t, uint8(4), g.MaxPlayers)
	assert.Equal(t, testEntryFee, g.EntryFeeLamports)
	assert.Equal(t, testRollFee, g.RollFeeLamports)
	assert.Equal(t, Created, g.State)
	assert.Equal(t, FinishExact, g.FinishRule)
	assert.Equal(t, uint8(DefaultWinPosition), g.WinPosition)
	assert.Zero(t, g.TotalPot)
	assert.Empty(t, g.Players)

	req.Equal(t, uint8(len(defaultMapFrom)), g.MapLen)
	assert.Equal(t, defaultMapFrom[:], g.MapFrom[:g.MapLen])
	assert.Equal(t, defaultMapTo[:], g.MapTo[:g.MapLen])

	logs := chain.Logs()
	req.Len(t, logs, 1)
	assert.Contains(t, logs[0], `"type":"gameCreated"`)
}

func TestCreateGameClampRule(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("clamp")
	createRoom(t, chain, gameID, 2, "clamp")
	assert.Equal(t, FinishClamp, LoadGame(chain, alice, gameID).FinishRule)
}

func TestCreateGameCustomEdges(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("custom-edges")
	createRoom(t, chain, gameID, 2, "exact|36:6,50:55")

	g := LoadGame(chain, alice, gameID)
	req.Equal(t, uint8(2), g.MapLen)
	assert.Equal(t, []uint8{36, 50}, g.MapFrom[:2])
	assert.Equal(t, []uint8{6, 55}, g.MapTo[:2])
}

func TestCreateGameRejects(t *testing.T) {
	cases := []struct {
		name       string
		maxPlayers int
		opts       string
		code       string
	}{
		{"too many players", MaxPlayers + 1, "", ErrTooManyPlayers},
		{"zero players", 0, "", ErrNoPlayers},
		{"bad finish rule", 2, "sudden-death", "invalid finish rule"},
		{"self loop edge", 2, "exact|7:7", ErrInvalidMap},
		{"malformed edge", 2, "exact|7-9", ErrInvalidMap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chain := chainmock.New(alice)
			expectAbort(t, tc.code, func() {
				createRoom(t, chain, testGameID(tc.name), tc.maxPlayers, tc.opts)
			})
		})
	}
}

func TestCreateGameTwice(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("dup")
	createRoom(t, chain, gameID, 2, "")
	expectAbort(t, ErrGameAlreadyExists, func() {
		createRoom(t, chain, gameID, 2, "")
	})
}

func TestJoinGameEscrowsEntryFee(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("join")
	createRoom(t, chain, gameID, 2, "")
	joinRoom(t, chain, gameID, bob)

	g := LoadGame(chain, alice, gameID)
	req.Equal(t, []sdk.Address{bob}, g.Players)
	assert.Zero(t, g.Positions[0])
	assert.Equal(t, testEntryFee, g.TotalPot)
	assert.Equal(t, testBankroll-testEntryFee, chain.Balance(bob))
	assert.Equal(t, testEntryFee, chain.Escrow())
}

func TestJoinGameRequiresIntent(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("no-intent")
	createRoom(t, chain, gameID, 2, "")

	chain.Fund(bob, testBankroll)
	chain.SetSender(bob)
	payload := roomPayload(alice, gameID)
	expectAbort(t, "intent missing", func() { JoinGameImpl(&payload, chain) })
}

func TestJoinGameIntentBelowFee(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("low-intent")
	createRoom(t, chain, gameID, 2, "")

	chain.Fund(bob, testBankroll)
	chain.SetSender(bob)
	chain.AllowTransfer(testEntryFee - 1)
	payload := roomPayload(alice, gameID)
	expectAbort(t, "intent limit below fee", func() { JoinGameImpl(&payload, chain) })
}

func TestJoinGameInsufficientBalance(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("broke")
	createRoom(t, chain, gameID, 2, "")

	chain.Fund(bob, testEntryFee-1)
	chain.SetSender(bob)
	chain.AllowTransfer(testEntryFee)
	payload := roomPayload(alice, gameID)
	expectAbort(t, "insufficient balance", func() { JoinGameImpl(&payload, chain) })
}

func TestJoinGameZeroEntryFee(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("free")
	chain.SetSender(alice)
	payload := fmt.Sprintf("%s|2|0|0|", hex.EncodeToString(gameID[:]))
	CreateGameImpl(&payload, chain)

	// No intent and no balance needed when the entry fee is zero.
	chain.SetSender(bob)
	join := roomPayload(alice, gameID)
	JoinGameImpl(&join, chain)

	g := LoadGame(chain, alice, gameID)
	assert.Equal(t, []sdk.Address{bob}, g.Players)
	assert.Zero(t, g.TotalPot)
}

func TestJoinGameTwice(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("rejoin")
	createRoom(t, chain, gameID, 2, "")
	joinRoom(t, chain, gameID, bob)
	expectAbort(t, ErrAlreadyJoined, func() { joinRoom(t, chain, gameID, bob) })
}

func TestJoinGameFull(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("full")
	createRoom(t, chain, gameID, 1, "")
	joinRoom(t, chain, gameID, bob)
	expectAbort(t, ErrGameFull, func() { joinRoom(t, chain, gameID, carol) })
}

func TestJoinGameAfterStart(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("late")
	createRoom(t, chain, gameID, 3, "")
	joinRoom(t, chain, gameID, bob)
	startRoom(t, chain, gameID)
	expectAbort(t, ErrGameAlreadyStarted, func() { joinRoom(t, chain, gameID, carol) })
}

func TestJoinGameMissingRoom(t *testing.T) {
	chain := chainmock.New(alice)
	expectAbort(t, ErrGameNotFound, func() {
		joinRoom(t, chain, testGameID("nowhere"), bob)
	})
}

func TestStartGame(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("start")
	createRoom(t, chain, gameID, 2, "")
	joinRoom(t, chain, gameID, bob)
	joinRoom(t, chain, gameID, carol)
	startRoom(t, chain, gameID)

	g := LoadGame(chain, alice, gameID)
	assert.Equal(t, Started, g.State)
	assert.Zero(t, g.CurrentTurnIndex)
	assert.Zero(t, g.TurnNonce)
	assert.Nil(t, g.PendingPlayer)
}

func TestStartGameOnlyCreator(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("start-auth")
	createRoom(t, chain, gameID, 2, "")
	joinRoom(t, chain, gameID, bob)

	chain.SetSender(bob)
	payload := roomPayload(alice, gameID)
	expectAbort(t, ErrUnauthorized, func() { StartGameImpl(&payload, chain) })
}

func TestStartGameNeedsPlayers(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("start-empty")
	createRoom(t, chain, gameID, 2, "")
	expectAbort(t, ErrNoPlayers, func() { startRoom(t, chain, gameID) })
}

func TestStartGameTwice(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("restart")
	createRoom(t, chain, gameID, 2, "")
	joinRoom(t, chain, gameID, bob)
	startRoom(t, chain, gameID)
	expectAbort(t, ErrGameAlreadyStarted, func() { startRoom(t, chain, gameID) })
}

func TestGetGameRendersRecord(t *testing.T) {
	chain := chainmock.New(alice)
	gameID := testGameID("render")
	createRoom(t, chain, gameID, 2, "")
	joinRoom(t, chain, gameID, bob)
	joinRoom(t, chain, gameID, carol)

	payload := roomPayload(alice, gameID)
	out := GetGameImpl(&payload, chain)
	req.NotNil(t, out)

	fields := strings.Split(*out, "|")
	req.Len(t, fields, 18)
	assert.Equal(t, string(alice), fields[0])
	assert.Equal(t, hex.EncodeToString(gameID[:]), fields[1])
	assert.Equal(t, "2", fields[2])      // maxPlayers
	assert.Equal(t, "0", fields[3])      // state: Created
	assert.Equal(t, "0", fields[4])      // finished
	assert.Equal(t, "200000", fields[7]) // pot
	assert.Equal(t, "100", fields[10])   // win position
	assert.Empty(t, fields[12])          // winner
	assert.Empty(t, fields[13])          // pending
	assert.Equal(t, "hive:bob,hive:carol", fields[15])
	assert.Equal(t, "0,0", fields[16])
	assert.Contains(t, fields[17], "1:38")
}
