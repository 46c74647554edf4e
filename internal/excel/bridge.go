// Package excel is the spreadsheet bridge: bulk import from and export to
// .xlsx workbooks for every form the bot manages.
package excel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"territorial-admin-bot/pkg/dates"
)

// ErrFileMissing marks an import whose expected file is simply absent:
// surfaced as a warning, never as a failure.
var ErrFileMissing = errors.New("archivo no encontrado")

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// headerIndex maps normalized header text to column position. Unknown
// headers are kept so extra columns are simply never looked up.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		index[normalizeHeader(cell)] = i
	}
	return index
}

// column returns the position of the first matching alias, or -1 when the
// column is absent (its values are then synthesized empty).
func column(index map[string]int, aliases ...string) int {
	for _, alias := range aliases {
		if i, ok := index[alias]; ok {
			return i
		}
	}
	return -1
}

// parseCellDate coerces a spreadsheet cell to a date. Handles the textual
// formats of pkg/dates plus Excel serial numbers. Anything unparseable
// coerces to nil rather than failing the row.
func parseCellDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		// Plausible serial range: years ~1941..2173. Keeps bare day numbers
		// and years from being read as dates.
		if serial >= 15000 && serial <= 100000 {
			if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
				day := dates.Midnight(parsed)
				return &day
			}
		}
		return nil
	}
	if parsed, err := dates.Parse(value); err == nil {
		return parsed
	}
	return nil
}

// normalizePhone strips the trailing ".0" that numeric phone cells pick up
// in spreadsheet round trips.
func normalizePhone(value string) string {
	s := strings.TrimSpace(value)
	if strings.HasSuffix(s, ".0") && isDigits(s[:len(s)-2]) {
		return s[:len(s)-2]
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// firstSheetRows opens a workbook and returns all rows of its first sheet.
func firstSheetRows(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo Excel: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("el archivo no contiene hojas")
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// openDataFile opens path, mapping absence to ErrFileMissing.
func openDataFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// writeRow writes one row of string cells starting at column A.
func writeRow(file *excelize.File, sheet string, rowNum int, cells []string) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// workbookBytes finalizes a workbook for download.
func workbookBytes(file *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
