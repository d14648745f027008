package helpers

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

const toteIDChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const ToteIDLength = 6

// ToteIDPattern matches well-formed tote IDs: exactly six alphanumeric
// characters.
var ToteIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

// GenerateToteID returns a random 6-character alphanumeric ID. Uniqueness
// is the caller's problem: collisions are checked against the store and
// retried.
func GenerateToteID() string {
	id := make([]byte, ToteIDLength)
	max := big.NewInt(int64(len(toteIDChars)))
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		id[i] = toteIDChars[n.Int64()]
	}
	return string(id)
}
