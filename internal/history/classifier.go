package history

import (
	"math"
	"strconv"
	"strings"
	"time"

	"walletscope/internal/blacklist"
	"walletscope/internal/model"
	"walletscope/internal/registry"
)

// Approvals are only classified on transactions with fewer log events than
// this, which excludes complex multi-call transactions.
const approvalLogCeiling = 3

// classifier turns raw transactions into classified records for one wallet on
// one chain. swapSeen deduplicates synthesized router swaps and is scoped to a
// single page fetch.
type classifier struct {
	wallet       string
	chain        registry.Chain
	chainID      uint64
	nativeToken  string
	nativeLogo   string
	wrappedToken string
	swapSeen     map[string]struct{}
}

// newClassifier resolves chain metadata once and lowercases the wallet before
// any event matching.
func newClassifier(chain registry.Chain, wallet string) (*classifier, error) {
	desc, err := registry.Lookup(chain)
	if err != nil {
		return nil, err
	}
	return &classifier{
		wallet:       strings.ToLower(wallet),
		chain:        chain,
		chainID:      desc.ID,
		nativeToken:  desc.Token,
		nativeLogo:   registry.TokenLogo(chain, desc.Token),
		wrappedToken: strings.ToLower(desc.WrappedToken),
		swapSeen:     make(map[string]struct{}),
	}, nil
}

// resetPage clears per-page state before classifying a new page.
func (c *classifier) resetPage() {
	c.swapSeen = make(map[string]struct{})
}

// classify emits zero or more records for one raw transaction. Failed
// transactions are dropped silently.
func (c *classifier) classify(tx model.RawTransaction) []model.Transaction {
	if !tx.Successful {
		return nil
	}

	base := model.Transaction{
		Wallet:      c.wallet,
		Chain:       string(c.chain),
		Hash:        tx.TxHash,
		Block:       tx.BlockHeight,
		Time:        parseBlockTime(tx.BlockSignedAt),
		Fee:         Fee(c.chain, tx.GasSpent, tx.GasPrice),
		NativeToken: c.nativeToken,
	}
	from := strings.ToLower(tx.FromAddress)
	to := strings.ToLower(tx.ToAddress)

	var out []model.Transaction
	if value := parseAmount(tx.Value); value > 0 {
		out = append(out, c.classifyNative(base, from, to, value/1e18)...)
	} else if len(tx.LogEvents) < approvalLogCeiling {
		out = append(out, c.classifyApprovals(base, tx.LogEvents)...)
	}
	out = append(out, c.classifyEvents(base, tx, from, to)...)

	return out
}

// classifyNative handles direct native-asset transfers, plus the implicit wrap
// leg when the recipient is the chain's wrapped-native contract.
func (c *classifier) classifyNative(base model.Transaction, from, to string, value float64) []model.Transaction {
	if from != c.wallet && to != c.wallet {
		return nil
	}

	record := base
	record.Type = model.TypeTransfer
	record.From = from
	record.To = to
	record.Token = c.nativeDescriptor()
	record.Value = value
	record.Direction = model.DirectionOut
	if to == c.wallet {
		record.Direction = model.DirectionIn
	}
	out := []model.Transaction{record}

	if c.wrappedToken != "" && to == c.wrappedToken {
		symbol := "W" + c.nativeToken
		wrap := base
		wrap.Type = model.TypeTransfer
		wrap.From = to
		wrap.To = from
		wrap.Token = &model.TokenDescriptor{
			Address: c.wrappedToken,
			Symbol:  symbol,
			Logo:    registry.TokenLogo(c.chain, symbol),
		}
		wrap.Value = value
		wrap.Direction = model.DirectionIn
		out = append(out, wrap)
	}

	return out
}

// classifyApprovals emits approve/revoke records for Approval events owned by
// the wallet.
func (c *classifier) classifyApprovals(base model.Transaction, events []model.LogEvent) []model.Transaction {
	var out []model.Transaction
	for _, event := range events {
		if event.Decoded == nil || event.SenderSymbol == nil || event.Decoded.Name != "Approval" {
			continue
		}
		owner, ok := event.Decoded.Param(0)
		if !ok || owner.Name != "owner" || strings.ToLower(owner.Value) != c.wallet {
			continue
		}
		amount, ok := event.Decoded.Param(2)
		if !ok {
			continue
		}

		record := base
		record.Type = model.TypeRevoke
		record.Direction = model.DirectionOut
		record.Token = c.eventToken(event)
		record.Value = parseAmount(amount.Value) / pow10(event.SenderDecimals)
		if record.Value > 0 {
			record.Type = model.TypeApprove
		}
		out = append(out, record)
	}
	return out
}

// classifyEvents evaluates the token-transfer and router-swap rules over every
// log event of a transaction.
func (c *classifier) classifyEvents(base model.Transaction, tx model.RawTransaction, from, to string) []model.Transaction {
	var out []model.Transaction
	for _, event := range tx.LogEvents {
		if event.Decoded == nil {
			continue
		}
		switch event.Decoded.Name {
		case "Transfer":
			out = append(out, c.classifyTokenTransfer(base, event)...)
		case "Withdrawal":
			if record, ok := c.classifyRouterSwap(base, tx, event, from, to); ok {
				out = append(out, record)
			}
		}
	}
	return out
}

// classifyTokenTransfer emits the outbound and inbound legs of a Transfer
// event independently; a self-transfer can produce both.
func (c *classifier) classifyTokenTransfer(base model.Transaction, event model.LogEvent) []model.Transaction {
	if blacklist.IsBlacklisted(c.chain, event.SenderAddress) || event.SenderSymbol == nil {
		return nil
	}
	amount, ok := event.Decoded.Param(2)
	if !ok || amount.Name != "value" {
		return nil
	}
	value := parseAmount(amount.Value)
	if value <= 0 {
		return nil
	}

	record := base
	record.Type = model.TypeTransfer
	record.Token = c.eventToken(event)
	record.Value = value / pow10(event.SenderDecimals)

	first, _ := event.Decoded.Param(0)
	second, _ := event.Decoded.Param(1)

	var out []model.Transaction
	if first.Name == "from" && strings.ToLower(first.Value) == c.wallet && amount.Decoded {
		leg := record
		leg.Direction = model.DirectionOut
		leg.From = c.wallet
		leg.To = strings.ToLower(second.Value)
		out = append(out, leg)
	} else if second.Name == "to" && strings.ToLower(second.Value) == c.wallet && amount.Decoded {
		leg := record
		leg.Direction = model.DirectionIn
		leg.From = strings.ToLower(first.Value)
		leg.To = c.wallet
		out = append(out, leg)
	}
	return out
}

// classifyRouterSwap infers a native-currency leg from a Withdrawal event
// emitted to the transaction's recipient (the router unwrapping native
// currency for the wallet).
func (c *classifier) classifyRouterSwap(base model.Transaction, tx model.RawTransaction, event model.LogEvent, from, to string) (model.Transaction, bool) {
	receiver, ok := event.Decoded.Param(0)
	if !ok || strings.ToLower(receiver.Value) != to {
		return model.Transaction{}, false
	}

	record := base
	record.Type = model.TypeTransfer
	record.Direction = model.DirectionIn
	record.From = to
	record.To = from
	record.Token = c.nativeDescriptor()

	if nullEvent := findUndecoded(tx.LogEvents); nullEvent != nil {
		// The undecoded event's hash keys dedup: one synthesized swap per
		// (transaction, undecoded event) pair.
		if _, seen := c.swapSeen[nullEvent.TxHash]; seen {
			return model.Transaction{}, false
		}
		c.swapSeen[nullEvent.TxHash] = struct{}{}

		value, ok := decodeAggregatorSwap(*nullEvent)
		if !ok {
			return model.Transaction{}, false
		}
		record.Value = value
		return record, true
	}

	amount, ok := event.Decoded.Param(1)
	if !ok {
		return model.Transaction{}, false
	}
	record.Value = parseAmount(amount.Value) / 1e18
	return record, true
}

func (c *classifier) nativeDescriptor() *model.TokenDescriptor {
	return &model.TokenDescriptor{
		Address: registry.NativeAddress,
		Symbol:  c.nativeToken,
		Logo:    c.nativeLogo,
	}
}

func (c *classifier) eventToken(event model.LogEvent) *model.TokenDescriptor {
	symbol := ""
	if event.SenderSymbol != nil {
		symbol = *event.SenderSymbol
	}
	return &model.TokenDescriptor{
		Address: strings.ToLower(event.SenderAddress),
		Symbol:  symbol,
		Logo:    registry.TokenLogo(c.chain, symbol),
	}
}

func findUndecoded(events []model.LogEvent) *model.LogEvent {
	for i := range events {
		if events[i].Decoded == nil {
			return &events[i]
		}
	}
	return nil
}

// parseAmount reads a raw integer-string amount into a float. Malformed or
// missing values count as zero and fall out of classification.
func parseAmount(raw string) float64 {
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseBlockTime(raw string) int64 {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0
	}
	return ts.Unix()
}

func pow10(decimals int) float64 {
	return math.Pow(10, float64(decimals))
}
