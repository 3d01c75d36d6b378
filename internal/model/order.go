package model

import (
	"time"

	"pbpd-order-service/internal/errs"
)

// Sentinel values persisted in place of null/empty so the stored document,
// the form UI and the spreadsheet all agree on what "unset" looks like.
const (
	PhotoNone   = "Tidak ada foto"
	SentinelNo  = "Tidak"
	SentinelNot = "Belum"
	SentinelNA  = "-"
)

// Order is one PB/PD service-order record. JSON keys match the persisted
// orders.json document and the multipart form field names.
type Order struct {
	ID            int    `json:"id"`
	NamaPelanggan string `json:"namaPelanggan"`
	ULP           string `json:"ulp"`
	Alamat        string `json:"alamat"`
	PBPD          string `json:"pbPd"`
	TarifDayaLama string `json:"tarifDayaLama"`
	TarifDayaBaru string `json:"tarifDayaBaru"`
	IDPelanggan   string `json:"idPelanggan"`
	NoAgenda      string `json:"noAgenda"`
	TglBayar      string `json:"tglBayar"`
	CetakPK       string `json:"cetakPk"`
	KebutuhanKwh  string `json:"kebutuhanKwh"`
	KebutuhanMcb  string `json:"kebutuhanMcb"`
	KebutuhanBox  string `json:"kebutuhanBoxApp"`
	KebutuhanKbl  string `json:"kebutuhanKabel"`
	JumlahKabel   string `json:"jumlahKabel"`
	Segel         string `json:"segel"`
	AmrModem      string `json:"amrModem"`
	Cover         string `json:"cover"`
	ConpresQtyA   string `json:"conpresQty16_35"`
	ConpresDescA  string `json:"conpresQty16_35_2"`
	ConpresQtyB   string `json:"conpresQty35_70"`
	ConpresDescB  string `json:"conpresQty35_70_2"`
	FotoPK        string `json:"fotoPk"`
	Keterangan    string `json:"keterangan"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// FieldKeys lists every client-settable field in document order. The id and
// timestamps are service-owned and deliberately absent.
var FieldKeys = []string{
	"namaPelanggan", "ulp", "alamat", "pbPd", "tarifDayaLama", "tarifDayaBaru",
	"idPelanggan", "noAgenda", "tglBayar", "cetakPk", "kebutuhanKwh",
	"kebutuhanMcb", "kebutuhanBoxApp", "kebutuhanKabel", "jumlahKabel",
	"segel", "amrModem", "cover", "conpresQty16_35", "conpresQty16_35_2",
	"conpresQty35_70", "conpresQty35_70_2", "fotoPk", "keterangan", "status",
}

// Field returns a pointer to the field stored under the given JSON key, or
// nil for unknown keys. Shared by the update merge and the export/import
// column mapping so there is exactly one key-to-field table.
func (o *Order) Field(key string) *string {
	switch key {
	case "namaPelanggan":
		return &o.NamaPelanggan
	case "ulp":
		return &o.ULP
	case "alamat":
		return &o.Alamat
	case "pbPd":
		return &o.PBPD
	case "tarifDayaLama":
		return &o.TarifDayaLama
	case "tarifDayaBaru":
		return &o.TarifDayaBaru
	case "idPelanggan":
		return &o.IDPelanggan
	case "noAgenda":
		return &o.NoAgenda
	case "tglBayar":
		return &o.TglBayar
	case "cetakPk":
		return &o.CetakPK
	case "kebutuhanKwh":
		return &o.KebutuhanKwh
	case "kebutuhanMcb":
		return &o.KebutuhanMcb
	case "kebutuhanBoxApp":
		return &o.KebutuhanBox
	case "kebutuhanKabel":
		return &o.KebutuhanKbl
	case "jumlahKabel":
		return &o.JumlahKabel
	case "segel":
		return &o.Segel
	case "amrModem":
		return &o.AmrModem
	case "cover":
		return &o.Cover
	case "conpresQty16_35":
		return &o.ConpresQtyA
	case "conpresQty16_35_2":
		return &o.ConpresDescA
	case "conpresQty35_70":
		return &o.ConpresQtyB
	case "conpresQty35_70_2":
		return &o.ConpresDescB
	case "fotoPk":
		return &o.FotoPK
	case "keterangan":
		return &o.Keterangan
	case "status":
		return &o.Status
	case "createdAt":
		return &o.CreatedAt
	case "updatedAt":
		return &o.UpdatedAt
	}
	return nil
}

// Apply merges the supplied field values over the record. Unknown keys are
// ignored; fields absent from changes keep their prior values.
func (o *Order) Apply(changes map[string]string) {
	for key, value := range changes {
		if key == "id" || key == "createdAt" || key == "updatedAt" {
			continue
		}
		if ref := o.Field(key); ref != nil {
			*ref = value
		}
	}
}

// Normalize fills every optional field with its documented default. It is
// the single normalization pass run on create, update and import.
func (o *Order) Normalize() {
	dashed := []*string{
		&o.TarifDayaLama, &o.KebutuhanKwh, &o.KebutuhanMcb,
		&o.KebutuhanBox, &o.KebutuhanKbl, &o.Segel, &o.Keterangan,
	}
	for _, ref := range dashed {
		if *ref == "" {
			*ref = SentinelNA
		}
	}
	if o.Cover == "" {
		o.Cover = SentinelNo
	}
	if o.AmrModem == "" {
		o.AmrModem = SentinelNo
	}
	if o.CetakPK == "" {
		o.CetakPK = SentinelNot
	}
	if o.FotoPK == "" {
		o.FotoPK = PhotoNone
	}
}

// requiredFields lists the JSON keys that must be non-empty; ordering
// keeps error messages stable.
var requiredFields = []string{
	"namaPelanggan", "ulp", "idPelanggan", "tglBayar", "tarifDayaBaru",
	"status", "alamat",
}

// Validate checks the required fields and the customer account number
// format (numeric, at least 8 digits).
func (o *Order) Validate() error {
	var bad []string
	for _, key := range requiredFields {
		if *o.Field(key) == "" {
			bad = append(bad, key)
		}
	}
	if o.IDPelanggan != "" && !ValidAccountNumber(o.IDPelanggan) {
		bad = append(bad, "idPelanggan")
	}
	if len(bad) > 0 {
		return errs.NewValidation(bad...)
	}
	return nil
}

// ValidAccountNumber reports whether s is a well-formed customer account
// number: numeric, at least 8 digits. Shared by Validate and the import
// row filter so every entry point enforces the same rule.
func ValidAccountNumber(s string) bool {
	if len(s) < 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// HasPhoto reports whether fotoPk references a stored upload rather than
// the no-photo sentinel.
func (o *Order) HasPhoto() bool {
	return o.FotoPK != "" && o.FotoPK != PhotoNone
}

// NextID returns max(id)+1 over the collection, or 1 when it is empty.
// Deleted ids are never handed out again because the maximum only grows.
func NextID(orders []Order) int {
	max := 0
	for _, o := range orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// Timestamp formats t the way the persisted document stores instants.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
