package event

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeParPerHole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{name: "array", raw: `[3,4,5]`, want: []int{3, 4, 5}},
		{name: "double encoded array", raw: `"[4,4,4]"`, want: []int{4, 4, 4}},
		{name: "numeric strings", raw: `["3","5"]`, want: []int{3, 5}},
		{name: "garbage entries default", raw: `[null,true,"x",0,-3,4.5,{}]`, want: []int{4, 4, 4, 4, 4, 4, 4}},
		{name: "integral float kept", raw: `[5.0]`, want: []int{5}},
		{name: "not json", raw: `4,4,4`, want: []int{}},
		{name: "object", raw: `{"par":4}`, want: []int{}},
		{name: "string that is not an array", raw: `"hello"`, want: []int{}},
		{name: "empty", raw: ``, want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeParPerHole([]byte(tc.raw))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected par list (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeParPerHole(t *testing.T) {
	tests := []struct {
		name      string
		holeCount int
		par       []int
		want      []int
	}{
		{name: "pads missing trailing holes", holeCount: 9, par: []int{3, 5}, want: []int{3, 5, 4, 4, 4, 4, 4, 4, 4}},
		{name: "drops excess holes", holeCount: 9, par: []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 5, 5}, want: []int{3, 3, 3, 3, 3, 3, 3, 3, 3}},
		{name: "replaces non-positive entries", holeCount: 9, par: []int{0, -1, 5, 3, 4, 4, 4, 4, 4}, want: []int{4, 4, 5, 3, 4, 4, 4, 4, 4}},
		{name: "missing hole count becomes eighteen", holeCount: 0, par: nil, want: DefaultParPerHole(18)},
		{name: "legacy twelve holes become eighteen", holeCount: 12, par: []int{3, 5}, want: append([]int{3, 5}, DefaultParPerHole(18)[2:]...)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeParPerHole(tc.holeCount, tc.par)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected par list (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEventNormalized_DoubleEncodedParOnEighteenHoles(t *testing.T) {
	item := Event{HoleCount: 18, ParPerHole: DecodeParPerHole([]byte(`"[4,4,4]"`))}

	got := item.Normalized()
	if len(got.ParPerHole) != 18 {
		t.Fatalf("expected 18 pars, got %d", len(got.ParPerHole))
	}
	for i, par := range got.ParPerHole {
		if par != 4 {
			t.Fatalf("hole %d: expected par 4, got %d", i+1, par)
		}
	}
	if item.HoleCount != 18 || len(item.ParPerHole) != 3 {
		t.Fatalf("normalization must not mutate the receiver")
	}
}

func TestEventNormalized_AlwaysConsistent(t *testing.T) {
	faker := gofakeit.New(42)
	for i := 0; i < 500; i++ {
		par := make([]int, faker.IntRange(0, 30))
		for j := range par {
			par[j] = faker.IntRange(-5, 9)
		}
		item := Event{HoleCount: faker.IntRange(-3, 40), ParPerHole: par}

		got := item.Normalized()
		if got.HoleCount != NineHoles && got.HoleCount != MaxHoles {
			t.Fatalf("hole count out of range: %d", got.HoleCount)
		}
		if len(got.ParPerHole) != got.HoleCount {
			t.Fatalf("par list length %d != hole count %d", len(got.ParPerHole), got.HoleCount)
		}
		for _, p := range got.ParPerHole {
			if p <= 0 {
				t.Fatalf("non-positive par %d in %v", p, got.ParPerHole)
			}
		}
	}
}

func TestEncodeParPerHole_RoundTripsThroughDecoder(t *testing.T) {
	raw, err := EncodeParPerHole([]int{4, 3, 5})
	if err != nil {
		t.Fatalf("encode par: %v", err)
	}
	if diff := cmp.Diff([]int{4, 3, 5}, DecodeParPerHole(raw)); diff != "" {
		t.Fatalf("unexpected decoded par (-want +got):\n%s", diff)
	}
}

func TestFormatScoringScope(t *testing.T) {
	cases := map[Format]Scope{
		FormatScramble:   ScopeTeam,
		FormatBestBall:   ScopeTeam,
		FormatStrokePlay: ScopePlayer,
		FormatMatchPlay:  ScopePlayer,
	}
	for format, want := range cases {
		if got := format.ScoringScope(); got != want {
			t.Fatalf("%s: expected scope %s, got %s", format, want, got)
		}
	}
}
