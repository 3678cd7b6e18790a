package market

import "agromarket/internal/models"

// CartItem is a listing plus the quantity the buyer wants.
type CartItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart is an ordered collection of cart items, one per distinct product.
// All operations return a new cart and leave the receiver untouched.
type Cart []CartItem

// Add puts a listing in the cart. If the product is already present its
// quantity is incremented instead of a duplicate line being created. Line
// order is stable: merging keeps the line where it was, new products append.
func (c Cart) Add(p models.Product, quantity int) Cart {
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	for i, item := range out {
		if item.Product.ID == p.ID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, CartItem{Product: p, Quantity: quantity})
}

// Remove deletes the line for a product entirely, regardless of quantity.
// Removing an absent product is a no-op.
func (c Cart) Remove(productID string) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

// Adjust changes a line's quantity by delta, clamping at a floor of 1. A
// delta can never empty a line; Remove is the only way to drop it.
func (c Cart) Adjust(productID string, delta int) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	for i, item := range out {
		if item.Product.ID == productID {
			if q := item.Quantity + delta; q >= 1 {
				out[i].Quantity = q
			}
			return out
		}
	}
	return out
}

// LineTotal is the subtotal of one cart line.
func LineTotal(item CartItem) float64 {
	return item.Product.Price * float64(item.Quantity)
}

// Total sums the line subtotals across the cart.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += LineTotal(item)
	}
	return total
}

// Count sums the quantities across the cart, which differs from the number
// of distinct lines.
func (c Cart) Count() int {
	var count int
	for _, item := range c {
		count += item.Quantity
	}
	return count
}
