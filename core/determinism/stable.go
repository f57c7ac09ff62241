// Package determinism provides primitives for deterministic output.
// Rankings and cache keys go through these helpers so that equal inputs
// always produce equal results.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// SortSlice sorts a slice in a stable, deterministic manner.
// Elements that compare equal keep their original order.
func SortSlice[T any](slice []T, less func(a, b T) bool) {
	sort.SliceStable(slice, func(i, j int) bool {
		return less(slice[i], slice[j])
	})
}

// ContentHash is a SHA-256 hash for content identity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// NormalizedHash hashes text after trimming, lower-casing and collapsing
// whitespace, so cosmetic edits map to the same hash
func NormalizedHash(text string) ContentHash {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	return ComputeHash([]byte(normalized))
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()[:16] + "..."
}
