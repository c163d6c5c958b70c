package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key derives a deterministic cache key from the reply text and the voice
// options that shape the synthesized audio. Equal inputs always produce the
// same key; any change to the text or to any option changes it.
func Key(text string, stability, similarity, style, rate float64) string {
	data := fmt.Sprintf("%s|%.4f|%.4f|%.4f|%.4f", text, stability, similarity, style, rate)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:16]) // First 16 bytes keep keys short
}
