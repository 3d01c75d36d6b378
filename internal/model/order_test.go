package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbpd-order-service/internal/errs"
)

func validOrder() Order {
	return Order{
		NamaPelanggan: "Budi Santoso",
		ULP:           "ULP TIMUR",
		IDPelanggan:   "521234567890",
		TglBayar:      "2024-03-11",
		TarifDayaBaru: "R1/1300 VA",
		Status:        "Proses",
		Alamat:        "Jl. Merdeka No. 1",
	}
}

func TestValidateAcceptsCompleteOrder(t *testing.T) {
	o := validOrder()
	require.NoError(t, o.Validate())
}

func TestValidateNamesMissingFields(t *testing.T) {
	o := validOrder()
	o.NamaPelanggan = ""
	o.Alamat = ""

	err := o.Validate()
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"namaPelanggan", "alamat"}, verr.Fields)
}

func TestValidateAccountNumberFormat(t *testing.T) {
	cases := map[string]bool{
		"52123456":     true,
		"521234567890": true,
		"1234567":      false, // too short
		"12345abc":     false, // not numeric
	}
	for input, ok := range cases {
		assert.Equal(t, ok, ValidAccountNumber(input), input)
		o := validOrder()
		o.IDPelanggan = input
		err := o.Validate()
		if ok {
			assert.NoError(t, err, input)
		} else {
			assert.Error(t, err, input)
		}
	}
}

func TestNormalizeAppliesDocumentedDefaults(t *testing.T) {
	o := validOrder()
	o.Normalize()

	for _, key := range []string{
		"tarifDayaLama", "kebutuhanKwh", "kebutuhanMcb", "kebutuhanBoxApp",
		"kebutuhanKabel", "segel", "keterangan",
	} {
		assert.Equal(t, SentinelNA, *o.Field(key), key)
	}
	assert.Equal(t, SentinelNo, o.Cover)
	assert.Equal(t, SentinelNo, o.AmrModem)
	assert.Equal(t, SentinelNot, o.CetakPK)
	assert.Equal(t, PhotoNone, o.FotoPK)
	// Quantity fields stay empty strings, never zeroes.
	assert.Equal(t, "", o.ConpresQtyA)
	assert.Equal(t, "", o.JumlahKabel)
	assert.Equal(t, "", o.NoAgenda)
}

func TestNormalizeKeepsSuppliedValues(t *testing.T) {
	o := validOrder()
	o.Cover = "COVER"
	o.ConpresQtyA = "3"
	o.Normalize()

	assert.Equal(t, "COVER", o.Cover)
	assert.Equal(t, "3", o.ConpresQtyA)
}

func TestApplyMergesOnlySuppliedFields(t *testing.T) {
	o := validOrder()
	o.Keterangan = "catatan lama"
	o.Apply(map[string]string{
		"namaPelanggan": "Siti Aminah",
		"id":            "999", // service-owned, ignored
		"createdAt":     "2020-01-01T00:00:00Z",
	})

	assert.Equal(t, "Siti Aminah", o.NamaPelanggan)
	assert.Equal(t, "catatan lama", o.Keterangan)
	assert.Zero(t, o.ID)
	assert.Empty(t, o.CreatedAt)
}

func TestFieldCoversEveryKey(t *testing.T) {
	var o Order
	for _, key := range FieldKeys {
		require.NotNil(t, o.Field(key), key)
	}
	assert.Nil(t, o.Field("unknown"))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 8, NextID([]Order{{ID: 3}, {ID: 7}, {ID: 2}}))
}

func TestHasPhoto(t *testing.T) {
	o := Order{FotoPK: PhotoNone}
	assert.False(t, o.HasPhoto())
	o.FotoPK = "/uploads/1710000000-pk.jpg"
	assert.True(t, o.HasPhoto())
}
