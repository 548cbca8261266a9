package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	shoes := seedCategory(t, db, "Shoes")
	seedCategory(t, db, "Bags")

	t.Run("find by slug", func(t *testing.T) {
		c, err := repo.FindBySlug(ctx, "shoes")
		require.NoError(t, err)
		assert.Equal(t, shoes.ID, c.ID)
		assert.Equal(t, "Shoes", c.Name)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, "hats")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("find all ordered by name", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Bags", all[0].Name)
	})

	t.Run("exists by slug", func(t *testing.T) {
		ok, err := repo.ExistsBySlug(ctx, "bags")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsBySlug(ctx, "hats")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		dup, err := catalog.NewCategory("Shoes", "")
		require.NoError(t, err)
		dup.AssignSlug("shoes")
		assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)
	})
}

func TestGormProductRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	shoes := seedCategory(t, db, "Shoes")
	outdoor := seedCategory(t, db, "Outdoor Gear")
	runner := seedProduct(t, db, "Runner", "49.99", shoes)
	trail := seedProduct(t, db, "Trail Boot", "89.00", shoes)
	tent := seedProduct(t, db, "Tent", "120.00", outdoor)
	mug := seedProduct(t, db, "Mug 100%", "5.00", nil)

	runner.SetFeatured(true)
	require.NoError(t, repo.Save(ctx, runner))
	tent.SetFeatured(true)
	require.NoError(t, repo.Save(ctx, tent))

	t.Run("find by slug loads category and price", func(t *testing.T) {
		p, err := repo.FindBySlug(ctx, "runner")
		require.NoError(t, err)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("49.99")))
		require.NotNil(t, p.Category)
		assert.Equal(t, "Shoes", p.Category.Name)
	})

	t.Run("product without category", func(t *testing.T) {
		p, err := repo.FindByID(ctx, mug.ID)
		require.NoError(t, err)
		assert.Nil(t, p.CategoryID)
		assert.Nil(t, p.Category)
	})

	t.Run("featured with and without limit", func(t *testing.T) {
		all, err := repo.FindFeatured(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		one, err := repo.FindFeatured(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, one, 1)
	})

	t.Run("by category excluding self", func(t *testing.T) {
		similar, err := repo.FindByCategory(ctx, shoes.ID, &runner.ID)
		require.NoError(t, err)
		require.Len(t, similar, 1)
		assert.Equal(t, trail.ID, similar[0].ID)

		all, err := repo.FindByCategory(ctx, shoes.ID, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("search matches name description and category", func(t *testing.T) {
		byName, err := repo.Search(ctx, "TRAIL")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, trail.ID, byName[0].ID)

		byCategory, err := repo.Search(ctx, "outdoor")
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, tent.ID, byCategory[0].ID)

		// both shoes match through their category
		byBoth, err := repo.Search(ctx, "shoe")
		require.NoError(t, err)
		assert.Len(t, byBoth, 2)

		byDescription, err := repo.Search(ctx, "boot description")
		require.NoError(t, err)
		assert.Len(t, byDescription, 1)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		hits, err := repo.Search(ctx, "100%")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, mug.ID, hits[0].ID)

		none, err := repo.Search(ctx, "%")
		require.NoError(t, err)
		assert.Len(t, none, 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("slug uniqueness", func(t *testing.T) {
		exists, err := repo.ExistsBySlug(ctx, "tent")
		require.NoError(t, err)
		assert.True(t, exists)

		dup, err := catalog.NewProduct("Tent", "", decimal.NewFromInt(1), nil)
		require.NoError(t, err)
		dup.AssignSlug("tent")
		assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)
	})
}
