package basket

import (
	"time"
)

// Basket is the aggregate that guards all invariants around a buyer's selection:
// at most one item per product and quantities that never drop below one.
type Basket struct {
	UID          string
	BuyerUID     string
	CreatedAt    time.Time
	LastModified *time.Time
	Items        []BasketItem
}

// BasketItem holds a quantity of one product. It only references the product,
// product attributes are resolved at projection time.
type BasketItem struct {
	ProductUID string
	Quantity   int
}

// AddItem merges: repeated adds of the same product accumulate in a single item
func (b *Basket) AddItem(productUID string, quantity int) {
	for i, item := range b.Items {
		if item.ProductUID == productUID {
			b.Items[i].Quantity += quantity
			return
		}
	}

	b.Items = append(b.Items, BasketItem{
		ProductUID: productUID,
		Quantity:   quantity,
	})
}

// RemoveItem decrements the quantity of the matching item. When the quantity is
// exhausted the item disappears entirely: a quantity of zero is never kept.
// Removing a product that is not in the basket has no effect.
// Returns the quantity that was actually removed.
func (b *Basket) RemoveItem(productUID string, quantity int) int {
	for i, item := range b.Items {
		if item.ProductUID != productUID {
			continue
		}

		if quantity >= item.Quantity {
			removed := item.Quantity
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			return removed
		}

		b.Items[i].Quantity -= quantity
		return quantity
	}

	return 0
}

func (b Basket) IsEmpty() bool {
	return len(b.Items) == 0
}

func (b Basket) QuantityOf(productUID string) int {
	for _, item := range b.Items {
		if item.ProductUID == productUID {
			return item.Quantity
		}
	}
	return 0
}
