// Package randcode generates short random codes from a cryptographically
// secure source. Each call draws fresh randomness; there is no shared
// generator state.
package randcode

import (
	"crypto/rand"
	"math/big"
)

const (
	alphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	numericAlphabet      = "0123456789"
)

// Alphanumeric returns an n-character code over A-Z0-9 (36 symbols).
func Alphanumeric(n int) (string, error) {
	return generate(n, alphanumericAlphabet)
}

// Numeric returns an n-digit code.
func Numeric(n int) (string, error) {
	return generate(n, numericAlphabet)
}

func generate(n int, alphabet string) (string, error) {
	size := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}
