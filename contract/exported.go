//go:build wasm

package contract

// Exported wasm entry points, compiled only for the contract build. Each
// wraps its Impl with the production host bindings; tests and tooling call
// the Impl variants with a mock chain.

//go:wasmexport g_create
func CreateGame(payload *string) *string {
	return CreateGameImpl(payload, RealSDK{})
}

//go:wasmexport g_join
func JoinGame(payload *string) *string {
	return JoinGameImpl(payload, RealSDK{})
}

//go:wasmexport g_start
func StartGame(payload *string) *string {
	return StartGameImpl(payload, RealSDK{})
}

//go:wasmexport g_roll
func RequestRoll(payload *string) *string {
	return RequestRollImpl(payload, RealSDK{})
}

//go:wasmexport g_vrf
func ConsumeRandomness(payload *string) *string {
	return ConsumeRandomnessImpl(payload, RealSDK{})
}

//go:wasmexport g_pass
func PassTurn(payload *string) *string {
	return PassTurnImpl(payload, RealSDK{})
}

//go:wasmexport g_claim
func ClaimPrize(payload *string) *string {
	return ClaimPrizeImpl(payload, RealSDK{})
}

//go:wasmexport g_deposit
func DepositFee(payload *string) *string {
	return DepositFeeImpl(payload, RealSDK{})
}

//go:wasmexport g_get
func GetGame(payload *string) *string {
	return GetGameImpl(payload, RealSDK{})
}

//go:wasmexport a_set_oracle
func SetOracle(payload *string) *string {
	return SetOracleImpl(payload, RealSDK{})
}
