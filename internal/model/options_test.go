package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryKnown(t *testing.T) {
	assert.True(t, CategoryULP.Known())
	assert.True(t, Category("tarifDaya").Known())
	assert.False(t, Category("warna").Known())
}

func TestDefaultOptionsSeedsEveryCategory(t *testing.T) {
	m := DefaultOptions()
	assert.Len(t, m, len(Categories))
	for _, c := range Categories {
		assert.NotNil(t, m[c], string(c))
		assert.Empty(t, m[c], string(c))
	}
}

func TestContainsFold(t *testing.T) {
	values := []string{"ULP Timur", "ULP Barat"}
	assert.True(t, ContainsFold(values, "ulp timur"))
	assert.False(t, ContainsFold(values, "ULP Selatan"))
}
