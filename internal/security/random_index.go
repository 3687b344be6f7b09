package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var errEmptyRange = errors.New("bound must be positive")

// RandomIndex returns a cryptographically secure, unbiased index in [0, bound).
func RandomIndex(bound int) (int, error) {
	if bound <= 0 {
		return 0, errEmptyRange
	}

	value, err := rand.Int(rand.Reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, err
	}

	return int(value.Int64()), nil
}
