package draws

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"lotto-mcp/internal/lottery"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ErrMissingColumn is returned when an import file lacks a required header.
var ErrMissingColumn = errors.New("missing required column")

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

// Import reads draws from a .csv or .xlsx file. For spreadsheets the first
// sheet is used unless sheet is set.
//
// Recognised headers (case-insensitive): id, date, label, win_class, numbers,
// secondary. Numbers are separated by commas, spaces or dashes. Rows sharing
// an id (or date and label when id is empty) are merged into one draw with a
// result per row.
func Import(path string, lt lottery.Type, sheet string) ([]Draw, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return importXLSX(path, lt, sheet)
	default:
		return importCSVFile(path, lt)
	}
}

func importXLSX(path string, lt lottery.Type, sheet string) ([]Draw, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return parseRows(rows, lt)
}

func importCSVFile(path string, lt lottery.Type) ([]Draw, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()
	return ImportCSV(file, lt)
}

// ImportCSV parses CSV draw rows from r.
func ImportCSV(r io.Reader, lt lottery.Type) ([]Draw, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return parseRows(rows, lt)
}

type columns struct {
	id, date, label, winClass, numbers, secondary int
}

func headerIndex(header []string) (columns, error) {
	cols := columns{-1, -1, -1, -1, -1, -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id", "draw_id":
			cols.id = i
		case "date", "draw_date":
			cols.date = i
		case "label", "draw_label":
			cols.label = i
		case "win_class", "winclass":
			cols.winClass = i
		case "numbers", "winning_numbers":
			cols.numbers = i
		case "secondary", "secondary_numbers":
			cols.secondary = i
		}
	}
	if cols.date < 0 {
		return cols, fmt.Errorf("%w: date", ErrMissingColumn)
	}
	if cols.numbers < 0 {
		return cols, fmt.Errorf("%w: numbers", ErrMissingColumn)
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseRows(rows [][]string, lt lottery.Type) ([]Draw, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var out []Draw
	index := make(map[string]int)

	for i, row := range rows[1:] {
		line := i + 2
		date, err := parseDate(cell(row, cols.date))
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("Skipping row with invalid date")
			continue
		}
		numbers, err := parseNumbers(cell(row, cols.numbers))
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("Skipping row with invalid numbers")
			continue
		}
		secondary, err := parseNumbers(cell(row, cols.secondary))
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("Skipping row with invalid secondary numbers")
			continue
		}

		res := Result{Numbers: numbers, SecondaryNumbers: secondary}
		if wc := cell(row, cols.winClass); wc != "" {
			v, err := strconv.Atoi(wc)
			if err != nil {
				log.Warn().Int("line", line).Str("win_class", wc).Msg("Ignoring invalid win class")
			} else {
				res.WinClass = &v
			}
		}

		id := cell(row, cols.id)
		label := cell(row, cols.label)
		key := id
		if key == "" {
			key = date.Format(time.RFC3339) + "|" + label
		}

		if pos, ok := index[key]; ok {
			out[pos].Results = append(out[pos].Results, res)
			continue
		}
		if id == "" {
			// Stable across re-imports so the store can deduplicate.
			id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(string(lt)+"|"+key)).String()
		}
		index[key] = len(out)
		out = append(out, Draw{
			ID:        id,
			LottoType: lt,
			DrawDate:  date,
			DrawLabel: label,
			Results:   []Result{res},
		})
	}

	SortChronological(out)
	return out, nil
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", v)
}

func parseNumbers(v string) ([]int, error) {
	if v == "" {
		return nil, nil
	}
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '-' || r == ';'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
