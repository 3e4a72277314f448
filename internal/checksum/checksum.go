// Package checksum fingerprints rendered reports so unchanged output can be suppressed.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Tracker remembers the last fingerprint it saw.
type Tracker struct {
	last string
}

// Changed records data and reports whether it differs from the previous call.
// The first call always reports a change.
func (t *Tracker) Changed(data []byte) bool {
	sum := Sum(data)
	if t.last != "" && sum == t.last {
		return false
	}
	t.last = sum
	return true
}
