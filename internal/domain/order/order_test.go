package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaidOrder(t *testing.T) {
	o, err := NewPaidOrder("cs_test_1", 2500, "USD", " a@b.co ", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, o.Status)
	assert.Equal(t, "usd", o.Currency)
	assert.Equal(t, "a@b.co", o.CustomerEmail)
	assert.Equal(t, int64(2500), o.Amount)

	_, err = NewPaidOrder("", 1, "usd", "", nil)
	assert.Error(t, err)

	_, err = NewPaidOrder("cs_1", -1, "usd", "", nil)
	assert.Error(t, err)
}

func TestOrder_AddItem(t *testing.T) {
	o, err := NewPaidOrder("cs_test_1", 100, "usd", "", nil)
	require.NoError(t, err)

	productID := uuid.New()
	require.NoError(t, o.AddItem(productID, 2))
	require.Error(t, o.AddItem(productID, 0))

	require.Len(t, o.Items, 1)
	assert.Equal(t, o.ID, o.Items[0].OrderID)
	assert.Equal(t, productID, o.Items[0].ProductID)
	assert.Equal(t, 2, o.Items[0].Quantity)
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPaid.IsValid())
	assert.True(t, StatusPending.IsValid())
	assert.False(t, Status("Shipped").IsValid())
}
