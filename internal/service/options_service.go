package service

import (
	"context"
	"sync"

	"pbpd-order-service/internal/errs"
	"pbpd-order-service/internal/model"
	"pbpd-order-service/internal/storage"
)

type optionsDocument struct {
	Options model.OptionMap `json:"options"`
}

// OptionsService owns the dropdown option lists document (db.json).
type OptionsService struct {
	mu   sync.Mutex
	path string
}

func NewOptionsService(path string) *OptionsService {
	return &OptionsService{path: path}
}

func (s *OptionsService) List(ctx context.Context) (model.OptionMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Options, nil
}

// ReplaceCategory overwrites one category's list in full. Unknown
// categories are rejected, as are replacement lists carrying
// case-insensitive duplicates.
func (s *OptionsService) ReplaceCategory(ctx context.Context, category model.Category, values []string) error {
	if !category.Known() {
		return errs.ErrCategoryNotFound
	}
	for i, v := range values {
		if model.ContainsFold(values[:i], v) {
			return errs.ErrDuplicateValue
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	if values == nil {
		values = []string{}
	}
	doc.Options[category] = values
	return s.write(doc)
}

// ReplaceAll overwrites the entire mapping. Every key must be a known
// category; categories absent from the replacement keep empty lists.
func (s *OptionsService) ReplaceAll(ctx context.Context, options model.OptionMap) error {
	for category := range options {
		if !category.Known() {
			return errs.ErrCategoryNotFound
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	next := model.DefaultOptions()
	for category, values := range options {
		if values == nil {
			values = []string{}
		}
		next[category] = values
	}
	doc.Options = next
	return s.write(doc)
}

// AddValue appends one value to a category. Duplicate values, compared
// case-insensitively, are rejected and leave the list untouched.
func (s *OptionsService) AddValue(ctx context.Context, category model.Category, value string) error {
	if !category.Known() {
		return errs.ErrCategoryNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	if model.ContainsFold(doc.Options[category], value) {
		return errs.ErrDuplicateValue
	}
	doc.Options[category] = append(doc.Options[category], value)
	return s.write(doc)
}

// RemoveValue deletes one value from a category, matched exactly.
func (s *OptionsService) RemoveValue(ctx context.Context, category model.Category, value string) error {
	if !category.Known() {
		return errs.ErrCategoryNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	values := doc.Options[category]
	for i, existing := range values {
		if existing == value {
			doc.Options[category] = append(values[:i], values[i+1:]...)
			return s.write(doc)
		}
	}
	return errs.ErrValueNotFound
}

func (s *OptionsService) read() (optionsDocument, error) {
	doc, err := storage.ReadCollection(s.path, optionsDocument{Options: model.DefaultOptions()})
	if err != nil {
		return doc, err
	}
	// A hand-edited document may drop categories; reseed the closed set.
	if doc.Options == nil {
		doc.Options = model.DefaultOptions()
	}
	for _, category := range model.Categories {
		if doc.Options[category] == nil {
			doc.Options[category] = []string{}
		}
	}
	return doc, nil
}

func (s *OptionsService) write(doc optionsDocument) error {
	return storage.WriteCollection(s.path, doc)
}
