package model

// Direction marks whether a transaction moved value into or out of the wallet.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Transaction types emitted by classification.
const (
	TypeTransfer = "transfer"
	TypeApprove  = "approve"
	TypeRevoke   = "revoke"
)

// TokenDescriptor identifies the asset moved in a classified record.
type TokenDescriptor struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
	Logo    string `json:"logo"`
}

// Transaction is one classified wallet transaction. Type, Token, From, To,
// Value, and NativeToken are empty on simple (fee-only) records.
type Transaction struct {
	Wallet      string           `json:"wallet"`
	Chain       string           `json:"chain"`
	Type        string           `json:"type,omitempty"`
	Hash        string           `json:"hash"`
	Block       uint64           `json:"block"`
	Time        int64            `json:"time"`
	Direction   Direction        `json:"direction"`
	From        string           `json:"from,omitempty"`
	To          string           `json:"to,omitempty"`
	Token       *TokenDescriptor `json:"token,omitempty"`
	Value       float64          `json:"value"`
	Fee         float64          `json:"fee"`
	NativeToken string           `json:"nativeToken,omitempty"`
}

// FeeSummary aggregates gas expenditure across a wallet's outbound transactions.
type FeeSummary struct {
	Amount float64 `json:"amount"`
	Txs    int     `json:"txs"`
	Price  float64 `json:"price"`
}
