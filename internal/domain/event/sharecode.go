package event

import (
	"strings"

	idgen "github.com/riskibarqy/golf-scoring/internal/platform/id"
)

const (
	ShareCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	ShareCodeLength   = 6
)

// NewShareCodeGenerator returns a generator for public scoring codes.
func NewShareCodeGenerator() idgen.Generator {
	return idgen.NewAlphabetGenerator(ShareCodeAlphabet, ShareCodeLength)
}

// NewShareCode draws one code from NewShareCodeGenerator.
func NewShareCode() (string, error) {
	return NewShareCodeGenerator().NewID()
}

// CanonicalShareCode trims and upper-cases user input.
func CanonicalShareCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func ValidShareCode(code string) bool {
	if len(code) != ShareCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(ShareCodeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
