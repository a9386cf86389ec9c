package models

import "time"

// CartItem is one line in a cart. ProductID is unique within a cart;
// merge-on-insert enforces that.
type CartItem struct {
	ProductID   string  `bson:"productId" json:"productId"`
	ProductName string  `bson:"productName" json:"productName"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
	Total       float64 `bson:"total" json:"total"`
}

// Cart is a shopping cart. Subtotal is derived: after every mutation it
// equals the sum of all item totals.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	AccountID string     `bson:"accountId,omitempty" json:"accountId,omitempty"`
	Items     []CartItem `bson:"items" json:"items"`
	Subtotal  float64    `bson:"subtotal" json:"subtotal"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// CreateCartInput carries the fields accepted when creating a cart.
type CreateCartInput struct {
	AccountID string `json:"accountId,omitempty"`
}

// AddItemInput describes an item to add to a cart.
type AddItemInput struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// RemoveItemInput names the product line to remove.
type RemoveItemInput struct {
	ProductID string `json:"productId"`
}

// ApplyAddItem merges the item into the cart. An existing line with the same
// productId gains the incoming quantity and is re-priced at the incoming
// price (the merged total is merged-quantity times incoming price); otherwise
// a new line is appended. Quantity and price are not validated here, so
// negative or fractional values propagate into the totals.
func (c *Cart) ApplyAddItem(in AddItemInput) {
	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == in.ProductID {
			c.Items[i].Quantity += in.Quantity
			c.Items[i].Price = in.Price
			c.Items[i].Total = c.Items[i].Quantity * in.Price
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, CartItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			Price:       in.Price,
			Total:       in.Quantity * in.Price,
		})
	}
	c.recomputeSubtotal()
	c.UpdatedAt = time.Now().UTC()
}

// ApplyRemoveItem drops the line with the given productId. Removing an
// unknown productId is a no-op on the items but still bumps UpdatedAt.
func (c *Cart) ApplyRemoveItem(productID string) {
	kept := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.recomputeSubtotal()
	c.UpdatedAt = time.Now().UTC()
}

// recomputeSubtotal derives the subtotal from scratch rather than adjusting
// it incrementally, so the invariant subtotal == sum(item totals) cannot
// drift across repeated mutations.
func (c *Cart) recomputeSubtotal() {
	var sum float64
	for _, item := range c.Items {
		sum += item.Total
	}
	c.Subtotal = sum
}
