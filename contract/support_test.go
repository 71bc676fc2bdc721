package contract

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	req "github.com/stretchr/testify/require"

	"vrf-ladders/chainmock"
	"vrf-ladders/sdk"
)

const (
	testEntryFee uint64 = 100_000
	testRollFee  uint64 = 10_000
	testBankroll uint64 = 1_000_000
)

var (
	alice      = sdk.Address("hive:alice")
	bob        = sdk.Address("hive:bob")
	carol      = sdk.Address("hive:carol")
	oracleAcct = sdk.Address("hive:ladders.oracle")
)

func testGameID(name string) [32]byte { return sha256.Sum256([]byte(name)) }

func roomPayload(creator sdk.Address, gameID [32]byte) string {
	return string(creator) + "|" + hex.EncodeToString(gameID[:])
}

// expectAbort runs fn and asserts it aborts with the given code.
func expectAbort(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected abort %q, but call succeeded", code)
		}
		ae, ok := r.(*chainmock.AbortError)
		req.True(t, ok, "panic was not an abort: %v", r)
		req.True(t, strings.HasPrefix(ae.Msg, code), "aborted with %q, want %q", ae.Msg, code)
	}()
	fn()
}

func registerOracle(t *testing.T, chain *chainmock.MockChain) {
	t.Helper()
	chain.SetSender(ContractOwner)
	addr := string(oracleAcct)
	SetOracleImpl(&addr, chain)
}

// createRoom creates a room owned by alice with the test fee schedule.
// Extra payload fields (finish rule, edges) go into opts.
func createRoom(t *testing.T, chain *chainmock.MockChain, gameID [32]byte, maxPlayers int, opts string) {
	t.Helper()
	chain.SetSender(alice)
	payload := fmt.Sprintf("%s|%d|%d|%d|%s",
		hex.EncodeToString(gameID[:]), maxPlayers, testEntryFee, testRollFee, opts)
	CreateGameImpl(&payload, chain)
}

func joinRoom(t *testing.T, chain *chainmock.MockChain, gameID [32]byte, player sdk.Address) {
	t.Helper()
	chain.Fund(player, testBankroll)
	chain.SetSender(player)
	chain.AllowTransfer(testEntryFee)
	payload := roomPayload(alice, gameID)
	JoinGameImpl(&payload, chain)
}

func startRoom(t *testing.T, chain *chainmock.MockChain, gameID [32]byte) {
	t.Helper()
	chain.SetSender(alice)
	payload := roomPayload(alice, gameID)
	StartGameImpl(&payload, chain)
}

// startedRoom wires a full room: oracle registered, players joined, game
// started. Returns the chain.
func startedRoom(t *testing.T, gameID [32]byte, opts string, players ...sdk.Address) *chainmock.MockChain {
	t.Helper()
	chain := chainmock.New(alice)
	registerOracle(t, chain)
	createRoom(t, chain, gameID, len(players), opts)
	for _, p := range players {
		joinRoom(t, chain, gameID, p)
	}
	startRoom(t, chain, gameID)
	return chain
}

func requestRoll(t *testing.T, chain *chainmock.MockChain, gameID [32]byte, player sdk.Address) {
	t.Helper()
	chain.SetSender(player)
	chain.AllowTransfer(testRollFee)
	seed := sha256.Sum256([]byte("seed"))
	payload := roomPayload(alice, gameID) + "|" + hex.EncodeToString(seed[:])
	RequestRollImpl(&payload, chain)
}

// randomnessForDice builds a 32-byte randomness whose first byte maps to
// the wanted dice value.
func randomnessForDice(dice uint8) [32]byte {
	var r [32]byte
	r[0] = dice - 1
	return r
}

// deliverRoll submits the oracle callback for the room's pending request
// with randomness forcing the given dice value.
func deliverRoll(t *testing.T, chain *chainmock.MockChain, gameID [32]byte, dice uint8) {
	t.Helper()
	g := LoadGame(chain, alice, gameID)
	req.NotNil(t, g.PendingPlayer, "no pending roll to deliver")
	r := randomnessForDice(dice)
	payload := roomPayload(alice, gameID) + "|" +
		UInt64ToString(g.TurnNonce) + "|" +
		string(*g.PendingPlayer) + "|" +
		hex.EncodeToString(g.LastAnchor[:]) + "|" +
		hex.EncodeToString(r[:])
	chain.SetSender(oracleAcct)
	ConsumeRandomnessImpl(&payload, chain)
}

// rollDice is requestRoll + deliverRoll for the current player.
func rollDice(t *testing.T, chain *chainmock.MockChain, gameID [32]byte, dice uint8) {
	t.Helper()
	g := LoadGame(chain, alice, gameID)
	requestRoll(t, chain, gameID, g.Players[g.CurrentTurnIndex])
	deliverRoll(t, chain, gameID, dice)
}
