// Package proof computes deterministic fingerprints of event payloads.
package proof

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint returns the SHA-256 digest, as lowercase hex, of the canonical
// JSON form of payload. encoding/json marshals map keys in lexicographic
// order at every nesting level with no whitespace, so two logically equal
// payloads always produce the same digest regardless of how they were built.
// Payloads are maps of JSON-representable scalars, arrays and objects, for
// which Marshal cannot fail.
func Fingerprint(payload map[string]any) string {
	b, _ := json.Marshal(payload)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
