package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with rounded price", func(t *testing.T) {
		catID := uuid.New()
		p, err := NewProduct("  Running Shoe ", "light", decimal.RequireFromString("49.999"), &catID)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, "Running Shoe", p.Name)
		assert.Equal(t, "50", p.Price.String())
		assert.Equal(t, &catID, p.CategoryID)
		assert.Empty(t, p.Slug)
		assert.False(t, p.Featured)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("   ", "", decimal.NewFromInt(1), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name cannot be empty")
	})

	t.Run("rejects long name", func(t *testing.T) {
		_, err := NewProduct(strings.Repeat("a", 101), "", decimal.NewFromInt(1), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "100 characters")
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Shoe", "", decimal.NewFromInt(-1), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("rejects price beyond column precision", func(t *testing.T) {
		_, err := NewProduct("Shoe", "", decimal.NewFromInt(100000000), nil)
		require.Error(t, err)
	})
}

func TestProduct_AssignSlug(t *testing.T) {
	p, err := NewProduct("Shoe", "", decimal.NewFromInt(1), nil)
	require.NoError(t, err)

	p.AssignSlug("shoe")
	p.AssignSlug("other")
	assert.Equal(t, "shoe", p.Slug)
}

func TestProduct_PriceInCents(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{"10", 1000},
		{"19.99", 1999},
		{"0.1", 10},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			p := &Product{Price: decimal.RequireFromString(tt.price)}
			assert.Equal(t, tt.want, p.PriceInCents())
		})
	}
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Shoes", "categories/shoes.png")
	require.NoError(t, err)
	assert.Equal(t, "Shoes", c.Name)
	assert.Equal(t, "categories/shoes.png", c.Image)

	_, err = NewCategory("", "")
	require.Error(t, err)
}
