package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Session returns a short random identifier used to correlate the log
// lines of one menu display cycle.
func Session() (string, error) {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
