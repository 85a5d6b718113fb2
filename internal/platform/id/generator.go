package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Generator creates short human-facing codes.
type Generator interface {
	NewID() (string, error)
}

// AlphabetGenerator draws fixed-length codes uniformly from an alphabet.
type AlphabetGenerator struct {
	alphabet string
	length   int
}

func NewAlphabetGenerator(alphabet string, length int) *AlphabetGenerator {
	return &AlphabetGenerator{alphabet: alphabet, length: length}
}

func (g *AlphabetGenerator) NewID() (string, error) {
	if g.alphabet == "" || g.length <= 0 {
		return "", fmt.Errorf("alphabet generator is not configured")
	}

	limit := big.NewInt(int64(len(g.alphabet)))
	var b strings.Builder
	b.Grow(g.length)
	for range g.length {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		b.WriteByte(g.alphabet[n.Int64()])
	}

	return b.String(), nil
}
