// Package chainmock is an in-memory stand-in for the chain host. It backs
// the contract's SDKInterface with a keyed state store, per-account lamport
// balances and a contract escrow account, and gives tests and tooling full
// control over the transaction environment.
package chainmock

import (
	"fmt"

	"vrf-ladders/sdk"
)

// AbortError is the panic value raised by Abort, carrying the abort code so
// callers can assert on it.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return "abort: " + e.Msg }

// MockChain implements the contract's SDKInterface in memory.
type MockChain struct {
	state    map[string]string
	balances map[sdk.Address]uint64
	escrow   uint64
	env      sdk.Env
	logs     []string
}

// New returns an empty chain with the given sender as the active signer.
func New(sender sdk.Address) *MockChain {
	return &MockChain{
		state:    make(map[string]string),
		balances: make(map[sdk.Address]uint64),
		env: sdk.Env{
			Sender: sender,
			Caller: sender,
			TxId:   "tx-0",
		},
	}
}

// ---------- contract.SDKInterface ----------

func (m *MockChain) StateSetObject(key, value string) { m.state[key] = value }

func (m *MockChain) StateGetObject(key string) *string {
	val, ok := m.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockChain) Abort(msg string) { panic(&AbortError{Msg: msg}) }

func (m *MockChain) Log(msg string) { m.logs = append(m.logs, msg) }

func (m *MockChain) GetEnv() sdk.Env { return m.env }

func (m *MockChain) Draw(amount uint64) {
	sender := m.env.Sender
	if m.balances[sender] < amount {
		m.Abort(fmt.Sprintf("insufficient balance: %s has %d, needs %d", sender, m.balances[sender], amount))
	}
	m.balances[sender] -= amount
	m.escrow += amount
}

func (m *MockChain) Transfer(to sdk.Address, amount uint64) {
	if m.escrow < amount {
		m.Abort(fmt.Sprintf("escrow underflow: has %d, needs %d", m.escrow, amount))
	}
	m.escrow -= amount
	m.balances[to] += amount
}

// ---------- Environment control ----------

// SetSender switches the active signer for subsequent calls and clears any
// intents left over from the previous transaction.
func (m *MockChain) SetSender(sender sdk.Address) {
	m.env.Sender = sender
	m.env.Caller = sender
	m.env.Intents = nil
}

func (m *MockChain) SetTxId(txid string) { m.env.TxId = txid }

// AllowTransfer attaches a transfer.allow intent capping what the contract
// may draw from the sender in the next call.
func (m *MockChain) AllowTransfer(limit uint64) {
	m.env.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": fmt.Sprintf("%d", limit)},
	}}
}

// Fund credits an account with lamports out of thin air.
func (m *MockChain) Fund(account sdk.Address, amount uint64) {
	m.balances[account] += amount
}

// ---------- Inspection ----------

func (m *MockChain) Balance(account sdk.Address) uint64 { return m.balances[account] }

// Escrow is the contract account's balance, i.e. everything drawn and not
// yet paid out.
func (m *MockChain) Escrow() uint64 { return m.escrow }

// Logs returns every line the contract logged, oldest first.
func (m *MockChain) Logs() []string { return append([]string(nil), m.logs...) }
