package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart() *Cart {
	now := time.Now().UTC()
	return &Cart{ID: "cart-1", Items: []CartItem{}, CreatedAt: now, UpdatedAt: now}
}

func subtotalOf(c *Cart) float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Total
	}
	return sum
}

func TestApplyAddItemAppendsNewLine(t *testing.T) {
	cart := newCart()
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 10})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 2.0, cart.Items[0].Quantity)
	assert.Equal(t, 20.0, cart.Items[0].Total)
	assert.Equal(t, 20.0, cart.Subtotal)
}

func TestApplyAddItemMergesByProductID(t *testing.T) {
	cart := newCart()
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 10})
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", ProductName: "Widget", Quantity: 3, Price: 10})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5.0, cart.Items[0].Quantity)
	assert.Equal(t, 50.0, cart.Items[0].Total)
	assert.Equal(t, 50.0, cart.Subtotal)
}

func TestApplyAddItemMergeRepricesWholeLine(t *testing.T) {
	cart := newCart()
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 10})
	// The incoming price overwrites the stored price, so the previously
	// added units are re-priced too.
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", ProductName: "Widget", Quantity: 1, Price: 4})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3.0, cart.Items[0].Quantity)
	assert.Equal(t, 4.0, cart.Items[0].Price)
	assert.Equal(t, 12.0, cart.Items[0].Total)
	assert.Equal(t, 12.0, cart.Subtotal)
}

func TestDistinctProductsKeepDistinctLines(t *testing.T) {
	cart := newCart()
	for i := 0; i < 5; i++ {
		cart.ApplyAddItem(AddItemInput{
			ProductID:   fmt.Sprintf("p%d", i),
			ProductName: fmt.Sprintf("Product %d", i),
			Quantity:    float64(i + 1),
			Price:       2.5,
		})
	}

	assert.Len(t, cart.Items, 5)
	assert.Equal(t, subtotalOf(cart), cart.Subtotal)
	for _, item := range cart.Items {
		assert.Equal(t, item.Quantity*item.Price, item.Total)
	}
}

func TestApplyRemoveItemDeletesExactlyThatLine(t *testing.T) {
	cart := newCart()
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", Quantity: 1, Price: 5})
	cart.ApplyAddItem(AddItemInput{ProductID: "p2", Quantity: 2, Price: 7})

	cart.ApplyRemoveItem("p1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
	assert.Equal(t, 14.0, cart.Subtotal)
}

func TestApplyRemoveItemUnknownProductIsNoOpButBumpsUpdatedAt(t *testing.T) {
	cart := newCart()
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", Quantity: 2, Price: 10})
	before := cart.UpdatedAt

	time.Sleep(time.Millisecond)
	cart.ApplyRemoveItem("unknown")

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 20.0, cart.Subtotal)
	assert.True(t, cart.UpdatedAt.After(before))
}

func TestRemoveLastItemZeroesSubtotal(t *testing.T) {
	cart := newCart()
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", Quantity: 2, Price: 10})
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", Quantity: 3, Price: 10})
	cart.ApplyRemoveItem("p1")

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Subtotal)
}

func TestNegativeAndFractionalValuesPropagate(t *testing.T) {
	cart := newCart()
	cart.ApplyAddItem(AddItemInput{ProductID: "p1", Quantity: -2, Price: 10})
	cart.ApplyAddItem(AddItemInput{ProductID: "p2", Quantity: 0.5, Price: 3})

	assert.Equal(t, -20.0, cart.Items[0].Total)
	assert.Equal(t, 1.5, cart.Items[1].Total)
	assert.Equal(t, -18.5, cart.Subtotal)
}
