package model

// RawTransaction is one transaction item as returned by the indexing API.
type RawTransaction struct {
	BlockSignedAt string     `json:"block_signed_at"`
	BlockHeight   uint64     `json:"block_height"`
	TxHash        string     `json:"tx_hash"`
	Successful    bool       `json:"successful"`
	FromAddress   string     `json:"from_address"`
	ToAddress     string     `json:"to_address"`
	Value         string     `json:"value"`
	GasSpent      int64      `json:"gas_spent"`
	GasPrice      int64      `json:"gas_price"`
	LogEvents     []LogEvent `json:"log_events"`
}

// LogEvent is one emitted event within a transaction. Decoded is nil when the
// indexing service could not decode the log.
type LogEvent struct {
	TxHash         string        `json:"tx_hash"`
	SenderAddress  string        `json:"sender_address"`
	SenderSymbol   *string       `json:"sender_contract_ticker_symbol"`
	SenderDecimals int           `json:"sender_contract_decimals"`
	RawLogTopics   []string      `json:"raw_log_topics"`
	RawLogData     string        `json:"raw_log_data"`
	Decoded        *DecodedEvent `json:"decoded"`
}

// DecodedEvent is the indexing service's decoding of a log event.
type DecodedEvent struct {
	Name   string       `json:"name"`
	Params []EventParam `json:"params"`
}

// EventParam is one named parameter of a decoded event.
type EventParam struct {
	Name    string `json:"name"`
	Decoded bool   `json:"decoded"`
	Value   string `json:"value"`
}

// Param returns the parameter at index i, or false when out of range.
func (d *DecodedEvent) Param(i int) (EventParam, bool) {
	if d == nil || i < 0 || i >= len(d.Params) {
		return EventParam{}, false
	}
	return d.Params[i], true
}
