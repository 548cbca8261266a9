package persistence

import (
	"context"
	"testing"

	"github.com/shopline/backend/internal/domain/order"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	a := seedProduct(t, db, "Product A", "10.00", nil)
	b := seedProduct(t, db, "Product B", "5.00", nil)

	first, err := order.NewPaidOrder("cs_test_1", 2500, "usd", "jane@example.com", []byte(`{"id":"cs_test_1"}`))
	require.NoError(t, err)
	first.CreatedAt = at(0)
	require.NoError(t, first.AddItem(a.ID, 2))
	require.NoError(t, first.AddItem(b.ID, 1))
	require.NoError(t, repo.Create(ctx, first))

	second, err := order.NewPaidOrder("cs_test_2", 1000, "usd", "jane@example.com", nil)
	require.NoError(t, err)
	second.CreatedAt = at(30)
	require.NoError(t, second.AddItem(a.ID, 1))
	require.NoError(t, repo.Create(ctx, second))

	t.Run("exists by checkout id", func(t *testing.T) {
		ok, err := repo.ExistsByCheckoutID(ctx, "cs_test_1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsByCheckoutID(ctx, "cs_missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("session id is unique", func(t *testing.T) {
		dup, err := order.NewPaidOrder("cs_test_1", 1, "usd", "", nil)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("duplicate session inside a transaction keeps it usable", func(t *testing.T) {
		tx := NewGormTxManager(db)
		dup, err := order.NewPaidOrder("cs_test_1", 1, "usd", "other@example.com", nil)
		require.NoError(t, err)
		require.NoError(t, dup.AddItem(a.ID, 3))

		err = tx.WithinTransaction(ctx, func(txCtx context.Context) error {
			assert.ErrorIs(t, repo.Create(txCtx, dup), shared.ErrAlreadyExists)
			_, err := repo.ExistsByCheckoutID(txCtx, "cs_test_1")
			return err
		})
		require.NoError(t, err)

		var items int64
		require.NoError(t, db.Table("order_items").Where("order_id = ?", dup.ID).Count(&items).Error)
		assert.Zero(t, items)
	})

	t.Run("find by email newest first with items", func(t *testing.T) {
		orders, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Equal(t, "cs_test_2", orders[0].StripeCheckoutID)
		assert.Equal(t, order.StatusPaid, orders[1].Status)
		assert.Equal(t, int64(2500), orders[1].Amount)
		assert.JSONEq(t, `{"id":"cs_test_1"}`, string(orders[1].SessionSnapshot))
		require.Len(t, orders[1].Items, 2)
		for _, item := range orders[1].Items {
			require.NotNil(t, item.Product)
		}

		none, err := repo.FindByEmail(ctx, "other@example.com")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
