// Package pos holds the in-memory cart a terminal builds up before
// checkout. The cart never touches storage; stock figures come from the
// product snapshot the caller loaded, and the real stock check happens
// again atomically at checkout.
package pos

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrItemNotInCart   = errors.New("item not in cart")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// InsufficientStockError reports an attempt to put more units in the
// cart than the product snapshot has on hand.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available, %d requested", e.ProductName, e.Available, e.Requested)
}

// Item is one product line in the cart
type Item struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   int64 // cents
	Quantity    int
	Stock       int
}

// Subtotal returns the line total in cents
func (i *Item) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Cart accumulates items for a single checkout. It is not safe for
// concurrent use; each terminal request builds its own cart.
type Cart struct {
	items []Item
}

// New returns an empty cart
func New() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID uuid.UUID) *Item {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return &c.items[i]
		}
	}
	return nil
}

// Add puts quantity units of product in the cart, merging with an
// existing line for the same product. The combined quantity is capped
// at the product's stock; exceeding it leaves the cart unchanged and
// returns an InsufficientStockError.
func (c *Cart) Add(product *entity.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	existing := c.find(product.ID)
	current := 0
	if existing != nil {
		current = existing.Quantity
	}

	if current+quantity > product.Stock {
		return &InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   current + quantity,
		}
	}

	if existing != nil {
		existing.Quantity += quantity
		return nil
	}

	c.items = append(c.items, Item{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.UnitPrice,
		Quantity:    quantity,
		Stock:       product.Stock,
	})
	return nil
}

// UpdateQuantity sets a line's quantity outright, still capped at the
// stock recorded when the line was added. A quantity of zero removes
// the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		return c.Remove(productID)
	}

	item := c.find(productID)
	if item == nil {
		return ErrItemNotInCart
	}
	if quantity > item.Stock {
		return &InsufficientStockError{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Available:   item.Stock,
			Requested:   quantity,
		}
	}

	item.Quantity = quantity
	return nil
}

// Remove drops a line from the cart
func (c *Cart) Remove(productID uuid.UUID) error {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotInCart
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.items)
}

// Total returns the cart total in cents
func (c *Cart) Total() int64 {
	var total int64
	for i := range c.items {
		total += c.items[i].Subtotal()
	}
	return total
}
