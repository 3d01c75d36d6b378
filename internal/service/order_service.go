package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pbpd-order-service/internal/errs"
	"pbpd-order-service/internal/model"
	"pbpd-order-service/internal/storage"
)

// uploadsPrefix is the public path prefix under which stored photos are
// served and referenced from order records.
const uploadsPrefix = "/uploads/"

type ordersDocument struct {
	Orders []model.Order `json:"orders"`
}

// OrderService owns the orders document and the photo files it references.
// A single mutex serializes every read-modify-write so concurrent requests
// cannot clobber each other's writes.
type OrderService struct {
	mu         sync.Mutex
	path       string
	uploadsDir string
	now        func() time.Time
}

func NewOrderService(path, uploadsDir string) *OrderService {
	return &OrderService{path: path, uploadsDir: uploadsDir, now: time.Now}
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}

// Create validates and normalizes the order, assigns the next id and
// persists the grown collection. The returned record is the stored one.
func (s *OrderService) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := order.Validate(); err != nil {
		return model.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return model.Order{}, err
	}
	order.ID = model.NextID(doc.Orders)
	order.CreatedAt = model.Timestamp(s.now())
	order.UpdatedAt = ""
	order.Normalize()
	doc.Orders = append(doc.Orders, order)
	if err := s.write(doc); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// Update merges the supplied fields over the stored record, re-normalizes,
// validates and persists. A replaced or explicitly removed photo has its
// old file deleted from disk.
func (s *OrderService) Update(ctx context.Context, id int, changes map[string]string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return model.Order{}, err
	}
	idx := -1
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Order{}, errs.ErrOrderNotFound
	}
	merged := doc.Orders[idx]
	oldPhoto := merged.FotoPK
	merged.Apply(changes)
	merged.Normalize()
	if err := merged.Validate(); err != nil {
		return model.Order{}, err
	}
	if merged.FotoPK != oldPhoto && oldPhoto != model.PhotoNone {
		s.removePhoto(oldPhoto)
	}
	merged.UpdatedAt = model.Timestamp(s.now())
	doc.Orders[idx] = merged
	if err := s.write(doc); err != nil {
		return model.Order{}, err
	}
	return merged, nil
}

// Delete removes the record and its stored photo file, if any.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	idx := -1
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errs.ErrOrderNotFound
	}
	if doc.Orders[idx].HasPhoto() {
		s.removePhoto(doc.Orders[idx].FotoPK)
	}
	doc.Orders = append(doc.Orders[:idx], doc.Orders[idx+1:]...)
	return s.write(doc)
}

// Reset deletes every stored photo referenced by any order and replaces the
// collection with an empty list. The admin credential is checked by the
// handler before this runs.
func (s *OrderService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	for _, order := range doc.Orders {
		if order.HasPhoto() {
			s.removePhoto(order.FotoPK)
		}
	}
	doc.Orders = nil
	return s.write(doc)
}

// BulkCreate appends pre-validated imported rows, assigning ids that
// continue from the current maximum, in one persisted write. Returns the
// number of rows appended.
func (s *OrderService) BulkCreate(ctx context.Context, rows []model.Order) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return 0, err
	}
	next := model.NextID(doc.Orders)
	for i := range rows {
		rows[i].ID = next
		next++
		if rows[i].CreatedAt == "" {
			rows[i].CreatedAt = model.Timestamp(s.now())
		}
		rows[i].Normalize()
	}
	doc.Orders = append(doc.Orders, rows...)
	if err := s.write(doc); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// PhotoDest builds the on-disk destination and the public path for an
// uploaded photo. The timestamp prefix keeps repeated uploads of the same
// filename from colliding.
func (s *OrderService) PhotoDest(originalName string) (dst, public string) {
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), filepath.Base(originalName))
	return filepath.Join(s.uploadsDir, name), uploadsPrefix + name
}

// RemovePhoto deletes the stored file behind a public photo path.
// Best-effort: a failed deletion is logged, never propagated, and does not
// roll back the record mutation it accompanied.
func (s *OrderService) RemovePhoto(public string) {
	s.removePhoto(public)
}

func (s *OrderService) removePhoto(public string) {
	if !strings.HasPrefix(public, uploadsPrefix) {
		return
	}
	abs := filepath.Join(s.uploadsDir, strings.TrimPrefix(public, uploadsPrefix))
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to delete photo file", "path", abs, "error", err)
	}
}

func (s *OrderService) read() (ordersDocument, error) {
	return storage.ReadCollection(s.path, ordersDocument{Orders: []model.Order{}})
}

func (s *OrderService) write(doc ordersDocument) error {
	if doc.Orders == nil {
		doc.Orders = []model.Order{}
	}
	return storage.WriteCollection(s.path, doc)
}
