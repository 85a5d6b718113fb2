package event

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := NewShareCode()
		require.NoError(t, err)
		require.Len(t, code, ShareCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(ShareCodeAlphabet, r), "unexpected character %q in %s", r, code)
		}
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 190, "share codes should rarely collide")
}

func TestValidShareCode(t *testing.T) {
	assert.True(t, ValidShareCode("ABC234"))
	assert.False(t, ValidShareCode("ABC23"))
	assert.False(t, ValidShareCode("ABC10O"), "0, 1 and O are excluded from the alphabet")
	assert.False(t, ValidShareCode("abc234"))
	assert.Equal(t, "ABC234", CanonicalShareCode("  abc234 "))
}

func TestEventValidate(t *testing.T) {
	valid := Event{
		Name:       "Club Scramble",
		Date:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		CourseName: "Pine Valley",
		Format:     FormatScramble,
		HoleCount:  9,
		ParPerHole: DefaultParPerHole(9),
		ShareCode:  "QWERTY",
		Status:     StatusUpcoming,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Event)
	}{
		{name: "missing name", mutate: func(e *Event) { e.Name = " " }},
		{name: "missing date", mutate: func(e *Event) { e.Date = time.Time{} }},
		{name: "unknown format", mutate: func(e *Event) { e.Format = "Skins" }},
		{name: "unknown status", mutate: func(e *Event) { e.Status = "Done" }},
		{name: "twelve holes", mutate: func(e *Event) { e.HoleCount = 12; e.ParPerHole = DefaultParPerHole(12) }},
		{name: "par length mismatch", mutate: func(e *Event) { e.ParPerHole = DefaultParPerHole(18) }},
		{name: "zero par", mutate: func(e *Event) { e.ParPerHole = append([]int{0}, DefaultParPerHole(8)...) }},
		{name: "bad share code", mutate: func(e *Event) { e.ShareCode = "short" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := valid
			item.ParPerHole = append([]int(nil), valid.ParPerHole...)
			tc.mutate(&item)
			assert.Error(t, item.Validate())
		})
	}
}
