// Package auth resolves API keys to rate limit tiers.
package auth

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// FreeTierID identifies unauthenticated callers.
const FreeTierID = 0

// tierLimits maps a tier to its requests-per-window allowance.
var tierLimits = map[int]int64{
	FreeTierID: 100,
	1:          1000,
	2:          3000,
	3:          8000,
}

// TierLimit returns the request allowance of a tier. Unknown tiers get the
// free allowance.
func TierLimit(tier int) int64 {
	if limit, ok := tierLimits[tier]; ok {
		return limit
	}
	return tierLimits[FreeTierID]
}

// Hash fingerprints a caller credential. Keys are stored and compared only
// as hashes.
func Hash(value string) string {
	return hex.EncodeToString(crypto.Keccak256([]byte(value)))
}

// Keyring maps key hashes to tiers.
type Keyring struct {
	tiers map[string]int
}

// NewKeyring builds a keyring from hash to tier assignments. Hashes are
// compared case-insensitively.
func NewKeyring(assignments map[string]int) *Keyring {
	tiers := make(map[string]int, len(assignments))
	for hash, tier := range assignments {
		tiers[strings.ToLower(hash)] = tier
	}
	return &Keyring{tiers: tiers}
}

// Resolve looks up the tier of a raw API key.
func (k *Keyring) Resolve(key string) (int, bool) {
	tier, ok := k.tiers[Hash(key)]
	return tier, ok
}

// Empty reports whether the keyring holds no keys.
func (k *Keyring) Empty() bool {
	return len(k.tiers) == 0
}
