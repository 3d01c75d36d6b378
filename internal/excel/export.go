package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"pbpd-order-service/internal/errs"
	"pbpd-order-service/internal/model"
)

const SheetName = "Data Order Pelanggan"

// ContentType is the xlsx MIME type sent on download responses.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook theme, kept close to the web UI palette.
const (
	colorHeaderBG = "4338CA"
	colorHeaderFG = "FFFFFF"
	colorBorder   = "C7D2FE"
	colorSheetTab = "059669"
	colorEvenRow  = "F8FAFB"
	colorOddRow   = "FFFFFF"
	colorFont     = "374151"
)

// Export renders the orders collection into a styled workbook: themed
// frozen header, banded rows, autofilter and a per-row total formula.
// An empty collection is an error, not an empty file.
func Export(orders []model.Order) (*excelize.File, error) {
	if len(orders) == 0 {
		return nil, errs.ErrNoOrders
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	tab := colorSheetTab
	if err := f.SetSheetProps(SheetName, &excelize.SheetPropsOptions{TabColorRGB: &tab}); err != nil {
		return nil, err
	}
	_ = f.SetDocProps(&excelize.DocProperties{
		Creator:        "Sistem Manajemen Order",
		LastModifiedBy: "Sistem",
	})

	headerStyle, oddStyle, evenStyle, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	for i, col := range exportColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, name, name, col.Width); err != nil {
			return nil, err
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, col.Header); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportColumns))
	_ = f.SetRowHeight(SheetName, 1, 28)
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	qtyAName, _ := excelize.ColumnNumberToName(columnIndex("conpresQty16_35") + 1)
	qtyBName, _ := excelize.ColumnNumberToName(columnIndex("conpresQty35_70") + 1)

	for rowIdx, order := range orders {
		row := rowIdx + 2
		_ = f.SetRowHeight(SheetName, row, 22)
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			if err := writeCell(f, cell, col.Key, &order, qtyAName, qtyBName, row); err != nil {
				return nil, err
			}
		}
		style := oddStyle
		if row%2 == 0 {
			style = evenStyle
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(exportColumns), row)
		if err := f.SetCellStyle(SheetName, first, last, style); err != nil {
			return nil, err
		}
	}

	if err := f.AutoFilter(SheetName, "A1:"+lastCol+"1", nil); err != nil {
		return nil, err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}
	return f, nil
}

func writeCell(f *excelize.File, cell, key string, order *model.Order, qtyACol, qtyBCol string, row int) error {
	switch key {
	case "id":
		return f.SetCellValue(SheetName, cell, order.ID)
	case "amrModem":
		return f.SetCellValue(SheetName, cell, displayAmrModem(order.AmrModem))
	case "cover":
		return f.SetCellValue(SheetName, cell, displayCover(order.Cover))
	case "conpresQty16_35", "conpresQty35_70":
		return writeQuantity(f, cell, *order.Field(key))
	case keyTotal:
		formula := fmt.Sprintf("%s%d+%s%d", qtyACol, row, qtyBCol, row)
		return f.SetCellFormula(SheetName, cell, formula)
	default:
		return f.SetCellValue(SheetName, cell, *order.Field(key))
	}
}

// writeQuantity keeps empty values as true empty cells rather than zeroes.
func writeQuantity(f *excelize.File, cell, value string) error {
	if value == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return f.SetCellValue(SheetName, cell, n)
	}
	return f.SetCellValue(SheetName, cell, value)
}

// displayAmrModem relabels the stored AMR flag for human readers: AMR
// becomes MODEM AMR, the Tidak sentinel becomes a blank cell.
func displayAmrModem(v string) string {
	switch strings.ToUpper(v) {
	case "AMR":
		return "MODEM AMR"
	case strings.ToUpper(model.SentinelNo):
		return ""
	}
	return v
}

// displayCover blanks the non-cover sentinels and keeps COVER as is.
func displayCover(v string) string {
	switch strings.ToUpper(v) {
	case "COVER":
		return "COVER"
	case "NON COVER", strings.ToUpper(model.SentinelNo):
		return ""
	}
	return v
}

func newStyles(f *excelize.File) (header, odd, even int, err error) {
	borders := func(color string) []excelize.Border {
		sides := []string{"top", "left", "bottom", "right"}
		out := make([]excelize.Border, 0, len(sides))
		for _, side := range sides {
			out = append(out, excelize.Border{Type: side, Color: color, Style: 1})
		}
		return out
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Segoe UI", Size: 11, Bold: true, Color: colorHeaderFG},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorHeaderBG}},
		Border:    borders(colorHeaderFG),
		Alignment: center,
	})
	if err != nil {
		return 0, 0, 0, err
	}
	dataStyle := func(bg string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: "Segoe UI", Size: 10, Color: colorFont},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bg}},
			Border:    borders(colorBorder),
			Alignment: center,
		})
	}
	if odd, err = dataStyle(colorOddRow); err != nil {
		return 0, 0, 0, err
	}
	if even, err = dataStyle(colorEvenRow); err != nil {
		return 0, 0, 0, err
	}
	return header, odd, even, nil
}
