// Package idgen generates the identifier formats used across the client:
// UUIDs for resources, timestamped IDs for logs and short prefixed IDs for
// display.
package idgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const shortIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const shortIDLength = 6

// UUID returns a random version 4 UUID.
func UUID() string {
	return uuid.NewString()
}

// ID returns a unique identifier built from the current millisecond
// timestamp and a random hex suffix, e.g. "1717243800123-9f3a01bc".
func ID() string {
	return fmt.Sprintf("%d-%08x", time.Now().UnixMilli(), rand.Uint32())
}

// ShortID returns a 6-character alphanumeric identifier for display
// purposes. It is not guaranteed unique.
func ShortID() string {
	b := make([]byte, shortIDLength)
	for i := range b {
		b[i] = shortIDCharset[rand.Intn(len(shortIDCharset))]
	}
	return string(b)
}

// Prefixed returns an identifier of the form "prefix-shortid-NNNN", where
// NNNN is the last four digits of the current Unix timestamp. Use short
// type prefixes such as "usr" or "doc".
func Prefixed(prefix string) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, ShortID(), time.Now().Unix()%10000)
}
