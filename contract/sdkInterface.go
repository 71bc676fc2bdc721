package contract

import "vrf-ladders/sdk"

// SDKInterface abstracts the chain host so the same logic runs against the
// real host bindings on-chain and against an in-memory chain in tests and
// tooling. Abort must not return.
type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() sdk.Env

	// Draw moves amount lamports from the sender into the contract's
	// escrow. The host enforces the sender's transfer.allow intent.
	Draw(amount uint64)
	// Transfer pays amount lamports out of the contract's escrow.
	Transfer(to sdk.Address, amount uint64)
}

// RealSDK is the production implementation forwarding to the host bindings.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)       { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string      { return sdk.StateGetObject(key) }
func (RealSDK) Abort(msg string)                       { sdk.Abort(msg) }
func (RealSDK) Log(msg string)                         { sdk.Log(msg) }
func (RealSDK) GetEnv() sdk.Env                        { return sdk.GetEnv() }
func (RealSDK) Draw(amount uint64)                     { sdk.Draw(amount) }
func (RealSDK) Transfer(to sdk.Address, amount uint64) { sdk.Transfer(to, amount) }
