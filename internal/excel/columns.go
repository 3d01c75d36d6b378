// Package excel maps the orders collection to and from styled xlsx
// workbooks.
package excel

import "strings"

// keyTotal marks the derived sum column; it has no backing order field.
const keyTotal = "totalConpres"

// Column binds one spreadsheet column to an order field key. Order matters:
// the formula column letters are derived from positions in this slice, so
// reordering columns keeps the formulas correct.
type Column struct {
	Header string
	Key    string
	Width  float64
}

var exportColumns = []Column{
	{"Order ID", "id", 12},
	{"NAMA PELANGGAN", "namaPelanggan", 32},
	{"ULP", "ulp", 22},
	{"ALAMAT", "alamat", 42},
	{"PB/PD", "pbPd", 16},
	{"TARIF/DAYA LAMA (EX:R2/5500 VA)", "tarifDayaLama", 26},
	{"TARIF / DAYA BARU", "tarifDayaBaru", 26},
	{"ID PELANGGAN", "idPelanggan", 22},
	{"No. AGENDA", "noAgenda", 26},
	{"TANGGAL BAYAR", "tglBayar", 20},
	{"CETAK PK", "cetakPk", 16},
	{"KEBUTUHAN KWH", "kebutuhanKwh", 22},
	{"KEBUTUHAN MCB", "kebutuhanMcb", 22},
	{"KEBUTUHAN BOX", "kebutuhanBoxApp", 30},
	{"KEBUTUHAN KABEL", "kebutuhanKabel", 22},
	{"JUMLAH KABEL", "jumlahKabel", 20},
	{"SEGEL", "segel", 15},
	{"MODEM AMR", "amrModem", 16},
	{"COVER", "cover", 12},
	{"CONPRES 16-35", "conpresQty16_35_2", 25},
	{"JUMLAH CONPRES 16-35", "conpresQty16_35", 25},
	{"CONPRES 35-70", "conpresQty35_70_2", 25},
	{"JUMLAH CONPRES 35-70", "conpresQty35_70", 25},
	{"TOTAL CONPRES", keyTotal, 25},
	{"Foto PK", "fotoPk", 35},
	{"Keterangan", "keterangan", 52},
	{"Status", "status", 15},
	{"Dibuat Pada", "createdAt", 25},
	{"Diupdate Pada", "updatedAt", 25},
}

// headerKeys maps normalized header text to the order field key, used by
// the importer's case-insensitive exact lookup. Built from the export
// config so an exported workbook always re-imports.
var headerKeys = func() map[string]string {
	m := make(map[string]string, len(exportColumns))
	for _, col := range exportColumns {
		if col.Key == keyTotal {
			continue
		}
		m[normalizeHeader(col.Header)] = col.Key
	}
	return m
}()

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// columnIndex returns the zero-based position of a field key in the export
// layout, or -1.
func columnIndex(key string) int {
	for i, col := range exportColumns {
		if col.Key == key {
			return i
		}
	}
	return -1
}
