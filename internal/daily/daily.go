// Package daily derives the "code of the day": everyone playing the same
// difficulty on the same UTC date with the same salt gets the same code.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NewRNG returns a generator seeded with HMAC(salt, YYYY-MM-DD|key).
// The difficulty key is mixed in so each difficulty has its own daily code.
func NewRNG(date time.Time, salt, key string) *rand.Rand {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	h.Write([]byte{'|'})
	h.Write([]byte(key))
	sum := h.Sum(nil)
	// first 16 bytes seed the two PCG words
	return rand.New(rand.NewPCG(binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])))
}
