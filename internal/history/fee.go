package history

import "walletscope/internal/registry"

// gasPriceCeiling guards against an upstream data bug: gas prices above this
// are actually the already-computed total fee in base units.
const gasPriceCeiling = 1_000_000_000_000_000

// Fixed settlement surcharge constants for chains settling to a base layer.
const (
	rollupGasUnits = 5000
	rollupGasPrice = 35_000_000_000
)

// Fee computes the native-currency gas cost of a transaction.
func Fee(chain registry.Chain, gasSpent, gasPrice int64) float64 {
	fee := float64(gasSpent) * float64(gasPrice) / 1e18
	if gasPrice > gasPriceCeiling {
		fee = float64(gasPrice) / 1e18
	}

	if chain == registry.OP {
		fee += float64(rollupGasUnits) * float64(rollupGasPrice) / 1e18
	}

	return fee
}
