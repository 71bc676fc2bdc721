package sdk

// Address is a ledger account identity, e.g. "hive:someone".
type Address string

func (a Address) String() string { return string(a) }

// Intent is a caller-signed authorization attached to a transaction.
// The contract only acts on "transfer.allow" intents, which cap how many
// lamports the contract may draw from the sender within this call.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Env is the transaction environment the host exposes to the contract.
type Env struct {
	Sender  Address
	Caller  Address
	TxId    string
	Intents []Intent
}
