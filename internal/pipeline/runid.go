package pipeline

import (
	"crypto/rand"
	"time"
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// newRunID returns a 16-character, time-sortable identifier used to
// correlate the log lines of one run: 8 Crockford base32 characters of
// Unix seconds followed by 8 random ones.
func newRunID() string {
	var out [16]byte

	ts := uint64(time.Now().Unix())
	for i := 7; i >= 0; i-- {
		out[i] = crockford[ts&0x1f]
		ts >>= 5
	}

	var rnd [8]byte
	_, _ = rand.Read(rnd[:])
	for i, b := range rnd {
		out[8+i] = crockford[b&0x1f]
	}
	return string(out[:])
}
