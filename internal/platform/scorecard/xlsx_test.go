package scorecard

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"Spring Scramble"},
		{"Hole", "1", "2", "3"},
		{"Par", "4", "3", "5", "", "Total"},
		{"Palmer, Arnold", "5", "-", "4", "13"},
		{},
		{"Nicklaus, Jack", "4", "3"},
	}

	card, err := parseRows(rows)
	require.NoError(t, err)

	want := Card{
		Par: []int{4, 3, 5},
		Rows: []Row{
			{Name: "Palmer, Arnold", Line: 4, Strokes: map[int]int{1: 5, 3: 4}},
			{Name: "Nicklaus, Jack", Line: 6, Strokes: map[int]int{1: 4, 2: 3}},
		},
	}
	if diff := cmp.Diff(want, card); diff != "" {
		t.Fatalf("unexpected card (-want +got):\n%s", diff)
	}
}

func TestParseRows_Errors(t *testing.T) {
	cases := map[string][][]string{
		"no par row":      {{"Hole", "1"}, {"Palmer", "4"}},
		"empty par row":   {{"Par"}},
		"bad par":         {{"Par", "four"}},
		"zero par":        {{"Par", "0"}},
		"bad strokes":     {{"Par", "4"}, {"Palmer", "x"}},
		"negative stroke": {{"Par", "4"}, {"Palmer", "-2"}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseRows(rows)
			assert.Error(t, err)
		})
	}
}

func TestWriteThenParseXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, "Scorecard",
		[]string{"Name", "1", "2"},
		[][]any{
			{"Par", 4, 3},
			{"Team One", 5, 3},
		},
	)
	require.NoError(t, err)

	card, err := ParseXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, card.Par)
	require.Len(t, card.Rows, 1)
	assert.Equal(t, "Team One", card.Rows[0].Name)
	assert.Equal(t, map[int]int{1: 5, 2: 3}, card.Rows[0].Strokes)
}

func TestParseXLSX_RejectsGarbage(t *testing.T) {
	_, err := ParseXLSX(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}
