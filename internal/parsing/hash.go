package parsing

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns the SHA-256 hex digest of the normalized text, used by
// the document store for content-addressed deduplication. Empty input hashes
// to the empty string sentinel.
func ContentHash(text string) string {
	if text == "" {
		return ""
	}
	normalized := Normalize(text)
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
