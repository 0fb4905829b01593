package session

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const randomSuffixLen = 24

// NewToken builds a process-unique opaque token from a unix-nano
// prefix and a random alphanumeric suffix.
func NewToken() (string, error) {
	suffix := make([]byte, randomSuffixLen)

	for i := 0; i < randomSuffixLen; i++ {
		randomIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		suffix[i] = alphabet[randomIndex.Int64()]
	}

	return strconv.FormatInt(time.Now().UnixNano(), 10) + string(suffix), nil
}
