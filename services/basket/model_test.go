package basket

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/basketbackend/services/catalog"
)

func TestAddItem(t *testing.T) {

	t.Run("Add creates a single item", func(t *testing.T) {
		b := Basket{}

		b.AddItem("product_tennis_racket", 2)

		assert.Len(t, b.Items, 1)
		assert.Equal(t, 2, b.QuantityOf("product_tennis_racket"))
	})

	t.Run("Repeated adds accumulate in one item", func(t *testing.T) {
		b := Basket{}

		b.AddItem("product_tennis_racket", 2)
		b.AddItem("product_tennis_racket", 3)

		assert.Len(t, b.Items, 1)
		assert.Equal(t, 5, b.QuantityOf("product_tennis_racket"))
	})

	t.Run("Distinct products get distinct items", func(t *testing.T) {
		b := Basket{}

		b.AddItem("product_tennis_racket", 1)
		b.AddItem("product_tennis_balls", 6)

		assert.Len(t, b.Items, 2)
		assert.Equal(t, 1, b.QuantityOf("product_tennis_racket"))
		assert.Equal(t, 6, b.QuantityOf("product_tennis_balls"))
	})
}

func TestRemoveItem(t *testing.T) {

	t.Run("Partial removal decrements", func(t *testing.T) {
		b := Basket{}
		b.AddItem("product_tennis_racket", 5)

		removed := b.RemoveItem("product_tennis_racket", 3)

		assert.Equal(t, 3, removed)
		assert.Equal(t, 2, b.QuantityOf("product_tennis_racket"))
	})

	t.Run("Exact removal deletes the item", func(t *testing.T) {
		b := Basket{}
		b.AddItem("product_tennis_racket", 5)

		removed := b.RemoveItem("product_tennis_racket", 5)

		assert.Equal(t, 5, removed)
		assert.True(t, b.IsEmpty())
	})

	t.Run("Over-removal clamps by deleting the item", func(t *testing.T) {
		b := Basket{}
		b.AddItem("product_tennis_racket", 1)

		removed := b.RemoveItem("product_tennis_racket", 5)

		assert.Equal(t, 1, removed)
		assert.True(t, b.IsEmpty())
	})

	t.Run("Removing an absent product is a no-op", func(t *testing.T) {
		b := Basket{}
		b.AddItem("product_tennis_balls", 6)

		removed := b.RemoveItem("product_tennis_racket", 2)

		assert.Equal(t, 0, removed)
		assert.Equal(t, 6, b.QuantityOf("product_tennis_balls"))
		assert.Len(t, b.Items, 1)
	})

	t.Run("Other items survive a removal", func(t *testing.T) {
		b := Basket{}
		b.AddItem("product_tennis_racket", 1)
		b.AddItem("product_tennis_balls", 6)

		b.RemoveItem("product_tennis_racket", 1)

		assert.Len(t, b.Items, 1)
		assert.Equal(t, 6, b.QuantityOf("product_tennis_balls"))
	})

	t.Run("Add remove lifecycle", func(t *testing.T) {
		b := Basket{}

		b.AddItem("product_tennis_racket", 2)
		b.AddItem("product_tennis_racket", 3)
		assert.Equal(t, 5, b.QuantityOf("product_tennis_racket"))

		b.RemoveItem("product_tennis_racket", 5)
		assert.True(t, b.IsEmpty())
	})
}

func TestProjectBasket(t *testing.T) {

	t.Run("Empty basket projects to empty item list", func(t *testing.T) {
		b := Basket{UID: "basket-1", BuyerUID: "buyer-1"}

		projection := projectBasket(b, map[string]catalog.Product{})

		assert.Equal(t, "basket-1", projection.UID)
		assert.Equal(t, "buyer-1", projection.BuyerUID)
		assert.Empty(t, projection.Items)
		assert.Equal(t, 0, projection.TotalPrice)
	})

	t.Run("Items are denormalised with current product attributes", func(t *testing.T) {
		b := Basket{UID: "basket-1", BuyerUID: "buyer-1"}
		b.AddItem("product_tennis_racket", 2)
		b.AddItem("product_tennis_balls", 6)

		projection := projectBasket(b, map[string]catalog.Product{
			"product_tennis_racket": {UID: "product_tennis_racket", Name: "Tennis racket", Brand: "Wilson", ProductType: "Tennis", Price: 16900, Currency: "EUR", ImageURL: "/images/product_tennis_racket.png"},
			"product_tennis_balls":  {UID: "product_tennis_balls", Name: "Tennis balls", Brand: "Dunlop", ProductType: "Tennis", Price: 1000, Currency: "EUR", ImageURL: "/images/product_tennis_balls.png"},
		})

		assert.Len(t, projection.Items, 2)
		assert.Equal(t, "Tennis racket", projection.Items[0].Name)
		assert.Equal(t, "Wilson", projection.Items[0].Brand)
		assert.Equal(t, 16900, projection.Items[0].Price)
		assert.Equal(t, 2, projection.Items[0].Quantity)
		assert.Equal(t, "Dunlop", projection.Items[1].Brand)
		assert.Equal(t, 6, projection.Items[1].Quantity)
		assert.Equal(t, 2*16900+6*1000, projection.TotalPrice)
		assert.Equal(t, "EUR", projection.Currency)
	})
}
