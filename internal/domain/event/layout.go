package event

import (
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

const (
	NineHoles  = 9
	MaxHoles   = 18
	DefaultPar = 4
)

// NormalizeHoleCount keeps a nine-hole layout and maps every other value,
// including legacy counts such as 12, to MaxHoles.
func NormalizeHoleCount(n int) int {
	if n == NineHoles {
		return NineHoles
	}
	return MaxHoles
}

// NormalizeParPerHole returns exactly holeCount positive pars, reusing par by
// index and filling the rest with DefaultPar.
func NormalizeParPerHole(holeCount int, par []int) []int {
	holeCount = NormalizeHoleCount(holeCount)
	out := make([]int, holeCount)
	for i := range out {
		out[i] = DefaultPar
		if i < len(par) && par[i] > 0 {
			out[i] = par[i]
		}
	}
	return out
}

// DefaultParPerHole builds the all-fours layout used for new events.
func DefaultParPerHole(holeCount int) []int {
	return NormalizeParPerHole(holeCount, nil)
}

// DecodeParPerHole reads a stored par list. The value may be a JSON array or
// a JSON string holding an array; anything unreadable yields an empty list.
// Entries that are not positive whole numbers become DefaultPar.
func DecodeParPerHole(raw []byte) []int {
	if len(raw) == 0 {
		return []int{}
	}

	var decoded any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return []int{}
	}
	if encoded, ok := decoded.(string); ok {
		decoded = nil
		if err := sonic.UnmarshalString(encoded, &decoded); err != nil {
			return []int{}
		}
	}

	items, ok := decoded.([]any)
	if !ok {
		return []int{}
	}

	out := make([]int, len(items))
	for i, item := range items {
		out[i] = coercePar(item)
	}
	return out
}

// EncodeParPerHole is the storage form read back by DecodeParPerHole.
func EncodeParPerHole(par []int) ([]byte, error) {
	if par == nil {
		par = []int{}
	}
	return sonic.Marshal(par)
}

func coercePar(v any) int {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return DefaultPar
		}
		f = parsed
	default:
		return DefaultPar
	}

	if f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return DefaultPar
	}
	return int(f)
}
