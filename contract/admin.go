package contract

import "vrf-ladders/sdk"

// ContractOwner is the administrative account allowed to register the
// randomness oracle identity.
const ContractOwner sdk.Address = "hive:ladders.admin"

// SetOracleImpl registers the oracle account whose deliveries g_vrf will
// accept. Payload: the oracle address. Owner only.
func SetOracleImpl(payload *string, chain SDKInterface) *string {
	address := *payload
	require(address != "", "oracle address is mandatory", chain)

	sender := chain.GetEnv().Sender
	require(sender == ContractOwner, ErrUnauthorized, chain)

	chain.StateSetObject(adminKey("oracle"), address)
	emitEvent("oracleSet", map[string]string{"oracle": address}, chain)
	return nil
}

// oracleAuthority returns the registered oracle identity, or nil when none
// has been configured yet.
func oracleAuthority(chain SDKInterface) *sdk.Address {
	val := chain.StateGetObject(adminKey("oracle"))
	if val == nil || *val == "" {
		return nil
	}
	a := sdk.Address(*val)
	return &a
}
