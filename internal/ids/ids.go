package ids

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultLength = 16

// New returns a 16-character hex identifier. Identifiers mix a random UUID
// with a nanosecond timestamp and hash the result, so they are safe to
// generate concurrently without coordination.
func New() string {
	return NewN(defaultLength)
}

// NewN returns an identifier of the given length. Lengths outside 5..64 fall
// back to the default.
func NewN(length int) string {
	if length < 5 || length > 64 {
		length = defaultLength
	}
	seed := uuid.NewString() + strconv.FormatInt(time.Now().UnixNano(), 10)
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:length]
}
