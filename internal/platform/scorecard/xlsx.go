package scorecard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Card is a parsed paper scorecard: the par row plus one row per entrant.
type Card struct {
	Par  []int
	Rows []Row
}

// Row holds strokes by 1-based hole. Holes left blank on the card are absent.
type Row struct {
	Name    string
	Line    int
	Strokes map[int]int
}

// ParseXLSX reads the first sheet of a workbook. The sheet must contain a row
// whose first cell is "Par"; every later non-empty row is an entrant whose
// name is in the first column and whose hole strokes follow in order.
// Columns past the last par column (totals) are ignored.
func ParseXLSX(r io.Reader) (Card, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Card{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Card{}, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Card{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return parseRows(rows)
}

func parseRows(rows [][]string) (Card, error) {
	parIdx := -1
	for i, row := range rows {
		if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "par") {
			parIdx = i
			break
		}
	}
	if parIdx < 0 {
		return Card{}, fmt.Errorf("scorecard has no par row")
	}

	var card Card
	for col, cell := range rows[parIdx][1:] {
		value, blank, err := parseCell(cell)
		if err != nil {
			return Card{}, fmt.Errorf("par row, hole %d: %w", col+1, err)
		}
		if blank {
			break
		}
		if value <= 0 {
			return Card{}, fmt.Errorf("par row, hole %d: par must be positive", col+1)
		}
		card.Par = append(card.Par, value)
	}
	if len(card.Par) == 0 {
		return Card{}, fmt.Errorf("par row has no holes")
	}

	for i := parIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		entry := Row{Name: strings.TrimSpace(row[0]), Line: i + 1, Strokes: make(map[int]int)}
		for col, cell := range row[1:] {
			hole := col + 1
			if hole > len(card.Par) {
				break
			}
			value, blank, err := parseCell(cell)
			if err != nil {
				return Card{}, fmt.Errorf("line %d (%s), hole %d: %w", entry.Line, entry.Name, hole, err)
			}
			if blank {
				continue
			}
			if value < 0 {
				return Card{}, fmt.Errorf("line %d (%s), hole %d: strokes cannot be negative", entry.Line, entry.Name, hole)
			}
			entry.Strokes[hole] = value
		}
		card.Rows = append(card.Rows, entry)
	}

	return card, nil
}

func parseCell(cell string) (value int, blank bool, err error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return 0, true, nil
	}
	value, err = strconv.Atoi(cell)
	if err != nil {
		return 0, false, fmt.Errorf("non-numeric value %q", cell)
	}
	return value, false, nil
}

// WriteXLSX writes a single-sheet workbook with a bold header row.
func WriteXLSX(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if len(header) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(header))
		if err != nil {
			return fmt.Errorf("resolve header range: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolve row %d: %w", i+2, err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
