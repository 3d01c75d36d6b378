package excel

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"pbpd-order-service/internal/model"
)

// ErrNoWorksheet is returned for workbooks without a readable first sheet
// or header row.
var ErrNoWorksheet = errors.New("first worksheet not found or empty")

// MissingHeadersError lists the required column headers absent from an
// uploaded workbook.
type MissingHeadersError struct {
	Headers []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Headers, ", "))
}

// requiredKeys are the fields a workbook must carry columns for; rows
// missing any of their values are skipped rather than imported.
var requiredKeys = []string{"namaPelanggan", "idPelanggan", "tglBayar", "tarifDayaBaru"}

// ParseWorkbook reads the first worksheet of the xlsx file at path and
// converts its data rows into order records. Ids are left unset; the order
// service assigns them when the batch is appended. Header matching is an
// exact, case-insensitive lookup against the export column set.
func ParseWorkbook(path string) ([]model.Order, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoWorksheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoWorksheet
	}

	headerMap := make(map[string]int)
	for idx, header := range rows[0] {
		if key, ok := headerKeys[normalizeHeader(header)]; ok {
			headerMap[key] = idx
		}
	}
	if missing := missingHeaders(headerMap); len(missing) > 0 {
		return nil, &MissingHeadersError{Headers: missing}
	}

	var orders []model.Order
	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(key string) string {
			idx, ok := headerMap[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if skip := missingCriticals(cell); len(skip) > 0 {
			slog.Warn("skipping import row with missing critical data",
				"row", rowNum, "fields", strings.Join(skip, ","))
			continue
		}
		if id := cell("idPelanggan"); !model.ValidAccountNumber(id) {
			slog.Warn("skipping import row with malformed account number",
				"row", rowNum, "idPelanggan", id)
			continue
		}
		var order model.Order
		for key := range headerMap {
			if key == "id" {
				continue
			}
			if ref := order.Field(key); ref != nil {
				*ref = cell(key)
			}
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func missingHeaders(headerMap map[string]int) []string {
	var missing []string
	for _, key := range requiredKeys {
		if _, ok := headerMap[key]; !ok {
			idx := columnIndex(key)
			missing = append(missing, exportColumns[idx].Header)
		}
	}
	return missing
}

func missingCriticals(cell func(string) string) []string {
	var missing []string
	for _, key := range requiredKeys {
		if cell(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
