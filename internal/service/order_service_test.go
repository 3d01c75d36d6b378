package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbpd-order-service/internal/errs"
	"pbpd-order-service/internal/model"
)

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	dir := t.TempDir()
	uploads := filepath.Join(dir, "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0o755))
	return NewOrderService(filepath.Join(dir, "orders.json"), uploads)
}

func validOrder() model.Order {
	return model.Order{
		NamaPelanggan: "Budi Santoso",
		ULP:           "ULP TIMUR",
		IDPelanggan:   "521234567890",
		TglBayar:      "2024-03-11",
		TarifDayaBaru: "R1/1300 VA",
		Status:        "Proses",
		Alamat:        "Jl. Merdeka No. 1",
	}
}

// storePhoto drops a fake photo file into the uploads dir and returns its
// public path.
func storePhoto(t *testing.T, s *OrderService, name string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(s.uploadsDir, name), []byte("jpeg"), 0o644))
	return uploadsPrefix + name
}

func photoExists(s *OrderService, public string) bool {
	name := filepath.Base(public)
	_, err := os.Stat(filepath.Join(s.uploadsDir, name))
	return err == nil
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	first, err := s.Create(ctx, validOrder())
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := s.Create(ctx, validOrder())
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateIDContinuesFromMax(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Create(ctx, validOrder())
		require.NoError(t, err)
	}
	require.NoError(t, s.Delete(ctx, 2))

	created, err := s.Create(ctx, validOrder())
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}

func TestCreateNormalizesAndStampsCreation(t *testing.T) {
	s := newOrderService(t)

	created, err := s.Create(context.Background(), validOrder())
	require.NoError(t, err)
	assert.Equal(t, model.SentinelNo, created.Cover)
	assert.Equal(t, model.SentinelNot, created.CetakPK)
	assert.Equal(t, model.PhotoNone, created.FotoPK)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Empty(t, created.UpdatedAt)

	// The record landed in the persisted collection.
	orders, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created, orders[0])
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	s := newOrderService(t)
	bad := validOrder()
	bad.TglBayar = ""

	_, err := s.Create(context.Background(), bad)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tglBayar")

	orders, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateMergesAndPreservesCreatedAt(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()
	s.now = func() time.Time { return time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC) }

	created, err := s.Create(ctx, validOrder())
	require.NoError(t, err)

	s.now = func() time.Time { return time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC) }
	updated, err := s.Update(ctx, created.ID, map[string]string{"status": "Selesai"})
	require.NoError(t, err)

	assert.Equal(t, "Selesai", updated.Status)
	assert.Equal(t, created.NamaPelanggan, updated.NamaPelanggan)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "2024-03-12T09:30:00Z", updated.UpdatedAt)
}

func TestUpdateUnknownID(t *testing.T) {
	s := newOrderService(t)
	_, err := s.Update(context.Background(), 42, map[string]string{"status": "Selesai"})
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestUpdateRejectsClearingRequiredField(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()
	created, err := s.Create(ctx, validOrder())
	require.NoError(t, err)

	_, err = s.Update(ctx, created.ID, map[string]string{"namaPelanggan": ""})
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpdatePhotoReplacementDeletesOldFile(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	old := storePhoto(t, s, "old.jpg")
	order := validOrder()
	order.FotoPK = old
	created, err := s.Create(ctx, order)
	require.NoError(t, err)

	replacement := storePhoto(t, s, "new.jpg")
	updated, err := s.Update(ctx, created.ID, map[string]string{"fotoPk": replacement})
	require.NoError(t, err)
	assert.Equal(t, replacement, updated.FotoPK)
	assert.False(t, photoExists(s, old))
	assert.True(t, photoExists(s, replacement))
}

func TestUpdateExplicitPhotoRemoval(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	public := storePhoto(t, s, "pk.jpg")
	order := validOrder()
	order.FotoPK = public
	created, err := s.Create(ctx, order)
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, map[string]string{"fotoPk": model.PhotoNone})
	require.NoError(t, err)
	assert.Equal(t, model.PhotoNone, updated.FotoPK)
	assert.False(t, photoExists(s, public))
}

func TestDeleteRemovesRecordAndPhoto(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	public := storePhoto(t, s, "pk.jpg")
	order := validOrder()
	order.FotoPK = public
	created, err := s.Create(ctx, order)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.False(t, photoExists(s, public))

	orders, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	assert.ErrorIs(t, s.Delete(ctx, created.ID), errs.ErrOrderNotFound)
}

func TestDeleteWithoutPhotoLeavesUploadsUntouched(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	bystander := storePhoto(t, s, "other.jpg")
	created, err := s.Create(ctx, validOrder())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.True(t, photoExists(s, bystander))
}

func TestResetEmptiesCollectionAndDeletesPhotos(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	a := storePhoto(t, s, "a.jpg")
	b := storePhoto(t, s, "b.jpg")
	for _, public := range []string{a, b} {
		order := validOrder()
		order.FotoPK = public
		_, err := s.Create(ctx, order)
		require.NoError(t, err)
	}

	require.NoError(t, s.Reset(ctx))
	orders, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.False(t, photoExists(s, a))
	assert.False(t, photoExists(s, b))
}

func TestBulkCreateContinuesIDsFromMax(t *testing.T) {
	s := newOrderService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, validOrder())
	require.NoError(t, err)

	rows := []model.Order{validOrder(), validOrder()}
	count, err := s.BulkCreate(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	orders, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, 2, orders[1].ID)
	assert.Equal(t, 3, orders[2].ID)
	// Imported rows go through the same normalization as create.
	assert.Equal(t, model.SentinelNo, orders[2].Cover)
}

func TestPhotoDestUsesTimestampPrefix(t *testing.T) {
	s := newOrderService(t)
	s.now = func() time.Time { return time.UnixMilli(1710000000000) }

	dst, public := s.PhotoDest("pk.jpg")
	assert.Equal(t, filepath.Join(s.uploadsDir, "1710000000000-pk.jpg"), dst)
	assert.Equal(t, "/uploads/1710000000000-pk.jpg", public)
}
