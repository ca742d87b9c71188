package billing

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobishop/pos-api/pkg/apperror"
)

func TestCartAddProduct(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	id := uuid.New()

	require.NoError(t, cart.AddProduct(id, "Charger", 100, 5))
	require.NoError(t, cart.AddProduct(id, "Charger", 100, 5))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Zero(t, lines[0].DiscountPercent)
	assert.Zero(t, lines[0].GSTPercent)
}

func TestCartAddOutOfStock(t *testing.T) {
	t.Parallel()

	cart := NewCart()

	err := cart.AddProduct(uuid.New(), "Charger", 100, 0)
	assert.Equal(t, apperror.ErrOutOfStock, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartAddBeyondStock(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	id := uuid.New()

	require.NoError(t, cart.AddProduct(id, "Charger", 100, 1))
	err := cart.AddProduct(id, "Charger", 100, 1)
	assert.Equal(t, apperror.ErrInsufficientStock, err)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCartSetQuantity(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	id := uuid.New()
	require.NoError(t, cart.AddProduct(id, "Charger", 100, 10))

	require.NoError(t, cart.SetQuantity(id, 7, 10))
	assert.Equal(t, 7, cart.Lines()[0].Quantity)

	// Above stock leaves the previous quantity in place
	err := cart.SetQuantity(id, 11, 10)
	assert.Equal(t, apperror.ErrInsufficientStock, err)
	assert.Equal(t, 7, cart.Lines()[0].Quantity)

	// Zero removes the line
	require.NoError(t, cart.SetQuantity(id, 0, 10))
	assert.True(t, cart.IsEmpty())
}

func TestCartSetQuantityUnknownProduct(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	err := cart.SetQuantity(uuid.New(), 3, 10)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCartDiscountAndGSTClampNaN(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	id := uuid.New()
	require.NoError(t, cart.AddProduct(id, "Charger", 100, 10))

	require.NoError(t, cart.SetDiscountPercent(id, math.NaN()))
	require.NoError(t, cart.SetGSTPercent(id, math.NaN()))

	line := cart.Lines()[0]
	assert.Zero(t, line.DiscountPercent)
	assert.Zero(t, line.GSTPercent)

	require.NoError(t, cart.SetDiscountPercent(id, 12.5))
	require.NoError(t, cart.SetGSTPercent(id, 18))
	line = cart.Lines()[0]
	assert.Equal(t, 12.5, line.DiscountPercent)
	assert.Equal(t, 18.0, line.GSTPercent)
}

func TestCartRemoveAndClear(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	a, b := uuid.New(), uuid.New()
	require.NoError(t, cart.AddProduct(a, "A", 10, 5))
	require.NoError(t, cart.AddProduct(b, "B", 20, 5))

	cart.Remove(a)
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, b, cart.Lines()[0].ProductID)

	// Removing an absent product is silent
	cart.Remove(uuid.New())
	require.Len(t, cart.Lines(), 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	cart := NewCart()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, cart.AddProduct(id, "P", 10, 5))
	}

	lines := cart.Lines()
	require.Len(t, lines, 3)
	for i, id := range ids {
		assert.Equal(t, id, lines[i].ProductID)
	}
}
