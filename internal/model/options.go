package model

import "strings"

// Category identifies one dropdown option list. The set is closed: writes
// against any other name are rejected at the boundary.
type Category string

const (
	CategoryULP          Category = "ulp"
	CategoryTarifDaya    Category = "tarifDaya"
	CategoryKebutuhanKwh Category = "kebutuhanKwh"
	CategoryKebutuhanMcb Category = "kebutuhanMcb"
	CategoryKebutuhanBox Category = "kebutuhanBoxApp"
	CategoryKebutuhanKbl Category = "kebutuhanKabel"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryULP,
	CategoryTarifDaya,
	CategoryKebutuhanKwh,
	CategoryKebutuhanMcb,
	CategoryKebutuhanBox,
	CategoryKebutuhanKbl,
}

func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// OptionMap holds the full category-to-values mapping persisted in db.json
// under the "options" key.
type OptionMap map[Category][]string

// DefaultOptions seeds an empty list for every known category; written to
// disk on first run.
func DefaultOptions() OptionMap {
	m := make(OptionMap, len(Categories))
	for _, c := range Categories {
		m[c] = []string{}
	}
	return m
}

// ContainsFold reports whether values already holds v, compared
// case-insensitively.
func ContainsFold(values []string, v string) bool {
	for _, existing := range values {
		if strings.EqualFold(existing, v) {
			return true
		}
	}
	return false
}
