package pricing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeKey lowercases and trims a product name or billing unit. The
// normalized pair is the identity key for dedup and change detection.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GenerateProductID derives a stable ID from a product name and billing
// unit. The same normalized pair always yields the same ID; distinct pairs
// collide only with the probability of a 12-hex-char hash prefix.
func GenerateProductID(name, billingUnit string) string {
	idString := NormalizeKey(name) + "|" + NormalizeKey(billingUnit)
	sum := sha256.Sum256([]byte(idString))
	return hex.EncodeToString(sum[:])[:12]
}
