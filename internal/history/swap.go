package history

import (
	"math/big"
	"strings"

	"walletscope/internal/model"
	"walletscope/internal/registry"
)

// aggregatorSwapTopic is the topic0 of one DEX aggregator's non-standard swap
// event. Its payload is not decoded upstream, so the native amount is read
// straight out of the raw log data.
const aggregatorSwapTopic = "0x680ad12fcfabafe9b1f08214caef968eb651cf010bee4a2824adfaec965903e8"

// Offsets of the two amount words in the raw log data string, "0x" prefix
// included. The event reports expected and received amounts; the average is
// used as the swap value. Known to hold only for this aggregator's signature.
const (
	firstAmountOffset  = 194
	secondAmountOffset = 258
)

// decodeAggregatorSwap extracts the native swap amount (in whole tokens) from
// an undecoded aggregator log. The fourth topic must end with the
// native-currency sentinel, marking a swap into the native asset.
func decodeAggregatorSwap(event model.LogEvent) (float64, bool) {
	if len(event.RawLogTopics) < 4 {
		return 0, false
	}
	if !strings.EqualFold(event.RawLogTopics[0], aggregatorSwapTopic) {
		return 0, false
	}
	sentinel := strings.TrimPrefix(registry.NativeAddress, "0x")
	if !strings.HasSuffix(strings.ToLower(event.RawLogTopics[3]), sentinel) {
		return 0, false
	}

	first, ok := hexWord(event.RawLogData, firstAmountOffset)
	if !ok {
		return 0, false
	}
	second, ok := hexWord(event.RawLogData, secondAmountOffset)
	if !ok {
		return 0, false
	}

	return (first + second) / 2 / 1e18, true
}

// hexWord reads one 32-byte word of a hex blob as a float.
func hexWord(data string, offset int) (float64, bool) {
	if len(data) < offset+64 {
		return 0, false
	}
	word, ok := new(big.Int).SetString(data[offset:offset+64], 16)
	if !ok {
		return 0, false
	}
	value, _ := new(big.Float).SetInt(word).Float64()
	return value, true
}
