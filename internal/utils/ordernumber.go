package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber returns a short human-facing order number: '#'
// followed by the last six digits of the current unix-millisecond clock and
// a two-digit random suffix. Unique with high probability without any
// pre-read against storage.
func GenerateOrderNumber() string {
	millis := time.Now().UnixMilli()
	ts := fmt.Sprintf("%d", millis)
	ts = ts[len(ts)-6:]

	n, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(time.Now().UnixNano() % 100)
	}

	return fmt.Sprintf("#%s%02d", ts, n.Int64())
}
