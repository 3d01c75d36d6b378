// Package view holds the client-side order store backing list screens:
// the full loaded collection plus a derived filtered view.
package view

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"pbpd-order-service/internal/model"
)

// Loader fetches the full orders collection for the store.
type Loader interface {
	FetchOrders(ctx context.Context) ([]model.Order, error)
}

// APILoader loads orders over HTTP from the orders endpoint.
type APILoader struct {
	BaseURL string
	Client  *http.Client
}

func NewAPILoader(baseURL string) *APILoader {
	return &APILoader{BaseURL: strings.TrimRight(baseURL, "/"), Client: http.DefaultClient}
}

func (l *APILoader) FetchOrders(ctx context.Context) ([]model.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.BaseURL+"/api/orders", nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch orders: unexpected status %d", resp.StatusCode)
	}
	var orders []model.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// Store keeps the loaded collection and recomputes the filtered view from
// scratch on every predicate change. Not safe for concurrent use; it backs
// a single UI session.
type Store struct {
	loader Loader

	all      []model.Order
	filtered []model.Order
	search   string
	ulp      string
}

func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Load fetches the collection and recomputes the view. Refresh is the same
// operation; both are the store's only entry points for new data.
func (s *Store) Load(ctx context.Context) error {
	orders, err := s.loader.FetchOrders(ctx)
	if err != nil {
		return err
	}
	s.all = orders
	s.apply()
	return nil
}

func (s *Store) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// SetSearch updates the free-text term and recomputes.
func (s *Store) SetSearch(term string) {
	s.search = term
	s.apply()
}

// SetULP updates the exact-match category filter; empty means pass-through.
func (s *Store) SetULP(ulp string) {
	s.ulp = ulp
	s.apply()
}

// Reset clears both predicate components and recomputes.
func (s *Store) Reset() {
	s.search = ""
	s.ulp = ""
	s.apply()
}

// All returns the full loaded collection.
func (s *Store) All() []model.Order {
	return s.all
}

// Filtered returns the current filtered view; the displayed list mirrors
// it exactly. Recomputes build a fresh slice, so slices returned earlier
// keep the results they held at the time.
func (s *Store) Filtered() []model.Order {
	return s.filtered
}

func (s *Store) apply() {
	term := strings.ToLower(s.search)
	filtered := make([]model.Order, 0, len(s.all))
	for _, order := range s.all {
		if matchesSearch(&order, term) && matchesULP(&order, s.ulp) {
			filtered = append(filtered, order)
		}
	}
	s.filtered = filtered
}

// searchKeys are the fields the free-text predicate scans.
var searchKeys = []string{"namaPelanggan", "idPelanggan", "noAgenda", "alamat", "keterangan", "pbPd"}

func matchesSearch(order *model.Order, term string) bool {
	if term == "" {
		return true
	}
	for _, key := range searchKeys {
		if strings.Contains(strings.ToLower(*order.Field(key)), term) {
			return true
		}
	}
	return false
}

func matchesULP(order *model.Order, ulp string) bool {
	return ulp == "" || order.ULP == ulp
}
