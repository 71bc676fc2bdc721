// Package oracle is a development-time randomness oracle. It plays the
// external VRF service's role against the mock chain: it watches for
// rollRequested events, draws 32 bytes of randomness from a kyber Ed25519
// suite, and submits the delivery as the registered oracle identity.
//
// The production oracle lives off-repo; the contract only ever sees the
// delivery operation, so this fulfiller exercises the exact same boundary.
package oracle

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"

	"go.dedis.ch/kyber/v4/suites"

	"vrf-ladders/chainmock"
	"vrf-ladders/contract"
	"vrf-ladders/sdk"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// LocalOracle fulfills pending rolls on a mock chain.
type LocalOracle struct {
	Chain     *chainmock.MockChain
	Authority sdk.Address
	Logger    *slog.Logger
}

// New returns an oracle submitting deliveries as authority.
func New(chain *chainmock.MockChain, authority sdk.Address, logger *slog.Logger) *LocalOracle {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalOracle{Chain: chain, Authority: authority, Logger: logger}
}

// Randomness draws a fresh 32-byte value from the suite's random stream.
func Randomness() [32]byte {
	scalar := suite.Scalar().Pick(suite.RandomStream())
	b, err := scalar.MarshalBinary()
	if err != nil {
		panic(err)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

// ErrNoPendingRequest is returned when no unanswered rollRequested event
// exists in the chain log.
var ErrNoPendingRequest = errors.New("oracle: no pending roll request")

// Fulfill answers the most recent unanswered roll request: it re-reads the
// request's room, nonce, mover and anchor from the event log, generates
// randomness, and submits the consumeRandomness operation. The delivered
// randomness is returned for callers that want to predict the dice value.
func (o *LocalOracle) Fulfill() ([32]byte, error) {
	req, ok := o.latestRequest()
	if !ok {
		return [32]byte{}, ErrNoPendingRequest
	}

	randomness := Randomness()
	payload := req["creator"] + "|" + req["gameId"] + "|" + req["nonce"] + "|" +
		req["mover"] + "|" + req["anchor"] + "|" + hex.EncodeToString(randomness[:])

	prevSender := o.Chain.GetEnv().Sender
	o.Chain.SetSender(o.Authority)
	defer o.Chain.SetSender(prevSender)

	contract.ConsumeRandomnessImpl(&payload, o.Chain)

	o.Logger.Info("roll fulfilled",
		"gameId", req["gameId"],
		"mover", req["mover"],
		"nonce", req["nonce"],
	)
	return randomness, nil
}

// latestRequest scans the event log backwards for a rollRequested event
// that has not been followed by a diceRolled for the same room and nonce.
func (o *LocalOracle) latestRequest() (map[string]string, bool) {
	logs := o.Chain.Logs()
	answered := false
	for i := len(logs) - 1; i >= 0; i-- {
		var ev contract.Event
		if err := json.Unmarshal([]byte(logs[i]), &ev); err != nil {
			continue
		}
		switch ev.Type {
		case "diceRolled":
			answered = true
		case "rollRequested":
			if answered {
				return nil, false
			}
			return ev.Attributes, true
		}
	}
	return nil, false
}
