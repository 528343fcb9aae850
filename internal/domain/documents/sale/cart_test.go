package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
	"shopledger/internal/domain/catalogs/product"
)

func newProduct(name, price string, stock int) product.Product {
	return product.New(product.Input{
		Name:  name,
		Price: types.MustMoney(price),
		Stock: stock,
	}, time.Now())
}

func TestCart_MergesRepeatedProduct(t *testing.T) {
	hammer := newProduct("Hammer", "10", 5)
	cart := NewCart()

	require.NoError(t, cart.Add(hammer, 1))
	require.NoError(t, cart.Add(hammer, 2))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].Total.Equal(types.MustMoney("30")))
}

func TestCart_KeepsPriceFromFirstAdd(t *testing.T) {
	hammer := newProduct("Hammer", "10", 5)
	cart := NewCart()
	require.NoError(t, cart.Add(hammer, 1))

	hammer.Price = types.MustMoney("12")
	require.NoError(t, cart.Add(hammer, 1))

	items := cart.Items()
	assert.True(t, items[0].UnitPrice.Equal(types.MustMoney("10")))
	assert.True(t, items[0].Total.Equal(types.MustMoney("20")))
}

func TestCart_SetQuantity(t *testing.T) {
	hammer := newProduct("Hammer", "10", 5)
	saw := newProduct("Saw", "4.50", 5)
	cart := NewCart()
	require.NoError(t, cart.Add(hammer, 1))
	require.NoError(t, cart.Add(saw, 1))

	cart.SetQuantity(saw.ID, 4)
	assert.True(t, cart.Items()[1].Total.Equal(types.MustMoney("18")))

	cart.SetQuantity(hammer.ID, 0)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, saw.ID, items[0].ProductID)

	cart.SetQuantity(id.New(), 3)
	assert.Len(t, cart.Items(), 1, "unknown product is ignored")
}

func TestCart_RejectsNonPositiveAdd(t *testing.T) {
	cart := NewCart()
	assert.Error(t, cart.Add(newProduct("Hammer", "10", 5), 0))
	assert.True(t, cart.IsEmpty())
}

func TestCart_Candidate(t *testing.T) {
	hammer := newProduct("Hammer", "10", 5)
	cart := NewCart()
	require.NoError(t, cart.Add(hammer, 3))

	c := cart.Candidate(Checkout{
		CustomerName:  "Walk-in",
		PaymentMethod: PaymentCash,
		DocumentType:  DocReceipt,
	})

	assert.True(t, c.Subtotal.Equal(types.MustMoney("30")))
	assert.True(t, c.Tax.Equal(types.MustMoney("5.40")))
	assert.True(t, c.Total.Equal(types.MustMoney("35.40")))
	assert.Equal(t, StatusCompleted, c.Status)

	cart.Clear()
	assert.Len(t, c.Items, 1, "candidate owns its items")
}
