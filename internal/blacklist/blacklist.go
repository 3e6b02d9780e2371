package blacklist

import (
	"strings"

	"walletscope/internal/registry"
)

// IsBlacklisted reports whether a token contract is excluded from transfer
// classification on the given chain. Membership is case-insensitive.
func IsBlacklisted(chain registry.Chain, address string) bool {
	set, ok := tokens[chain]
	if !ok {
		return false
	}
	_, hit := set[strings.ToLower(address)]
	return hit
}

func newSet(addresses ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		set[strings.ToLower(address)] = struct{}{}
	}
	return set
}
