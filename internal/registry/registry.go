package registry

import (
	"fmt"
	"strings"
)

// Chain is one of the supported EVM-compatible networks.
type Chain string

const (
	Eth    Chain = "eth"
	BSC    Chain = "bsc"
	Poly   Chain = "poly"
	FTM    Chain = "ftm"
	AVAX   Chain = "avax"
	One    Chain = "one"
	Cronos Chain = "cronos"
	OP     Chain = "op"
	Arb    Chain = "arb"
)

// NativeAddress is the sentinel address used for a chain's native asset.
const NativeAddress = "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"

// Descriptor holds per-chain metadata. WrappedToken is empty when the chain has
// no canonical wrapped-native contract.
type Descriptor struct {
	ID           uint64 `json:"id"`
	Token        string `json:"token"`
	WrappedToken string `json:"wrappedToken"`
	RPCURL       string `json:"-"`
}

var descriptors = map[Chain]Descriptor{
	Eth: {
		ID:           1,
		Token:        "ETH",
		WrappedToken: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		RPCURL:       "https://eth.llamarpc.com",
	},
	BSC: {
		ID:           56,
		Token:        "BNB",
		WrappedToken: "0xbb4cdb9cbd36b01bd1cbaef60af814a3f6f0ee75",
		RPCURL:       "https://bsc-dataseed.binance.org",
	},
	Poly: {
		ID:           137,
		Token:        "MATIC",
		WrappedToken: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270",
		RPCURL:       "https://polygon-rpc.com",
	},
	FTM: {
		ID:           250,
		Token:        "FTM",
		WrappedToken: "0x21be370d5312f44cb42ce377bc9b8a0cef1a4c83",
		RPCURL:       "https://rpc.ftm.tools",
	},
	AVAX: {
		ID:           43114,
		Token:        "AVAX",
		WrappedToken: "0xb31f66aa3c1e785363f0875a1b74e27b85fd66c7",
		RPCURL:       "https://api.avax.network/ext/bc/C/rpc",
	},
	One: {
		ID:           1666600000,
		Token:        "ONE",
		WrappedToken: "0xcf664087a5bb0237a0bad6742852ec6c8d69a27a",
		RPCURL:       "https://api.harmony.one",
	},
	Cronos: {
		ID:           25,
		Token:        "CRO",
		WrappedToken: "0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23",
		RPCURL:       "https://evm.cronos.org",
	},
	OP: {
		ID:           10,
		Token:        "ETH",
		WrappedToken: "0x4200000000000000000000000000000000000006",
		RPCURL:       "https://mainnet.optimism.io",
	},
	Arb: {
		ID:           42161,
		Token:        "ETH",
		WrappedToken: "0x82af49447d8a07e3bd95bd0d56f35241523fbab1",
		RPCURL:       "https://arb1.arbitrum.io/rpc",
	},
}

// All returns the supported chains in a stable order.
func All() []Chain {
	return []Chain{Eth, BSC, Poly, FTM, AVAX, One, Cronos, OP, Arb}
}

// Parse validates a chain identifier from user input.
func Parse(input string) (Chain, error) {
	chain := Chain(strings.ToLower(strings.TrimSpace(input)))
	if _, ok := descriptors[chain]; !ok {
		return "", fmt.Errorf("unsupported chain: %s", input)
	}
	return chain, nil
}

// Lookup returns the descriptor for a chain. Unknown chains are an error; the
// caller must not fall back to defaults.
func Lookup(chain Chain) (Descriptor, error) {
	desc, ok := descriptors[chain]
	if !ok {
		return Descriptor{}, fmt.Errorf("unsupported chain: %s", chain)
	}
	return desc, nil
}

// Describe returns the descriptors for all chains, keyed by chain.
func Describe() map[Chain]Descriptor {
	out := make(map[Chain]Descriptor, len(descriptors))
	for chain, desc := range descriptors {
		out[chain] = desc
	}
	return out
}

// TokenLogo returns the logo URL for a token symbol on a chain.
func TokenLogo(chain Chain, symbol string) string {
	return fmt.Sprintf("https://assets.weaver.fi/tokens/%s/%s.svg", chain, strings.ToLower(symbol))
}
