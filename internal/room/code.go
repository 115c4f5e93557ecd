package room

import (
	"crypto/rand"
	"time"
)

// Room codes avoid 0/O/1/I to survive being read aloud.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewCode returns a random code of n characters. Uniqueness against a store
// is the caller's job; codes collide rarely but not never.
func NewCode(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back
		// to timestamp-derived bytes rather than panic.
		seed := uint64(time.Now().UnixNano())
		for i := range b {
			b[i] = byte(seed)
			seed >>= 5
		}
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
