package basket

import (
	"github.com/MarcGrol/basketbackend/services/basketapi"
	"github.com/MarcGrol/basketbackend/services/catalog"
)

// projectBasket flattens the basket and the current product attributes into the
// externally visible response shape. Pure: a basket without items projects to
// an empty item list with the identifiers intact.
func projectBasket(b Basket, products map[string]catalog.Product) basketapi.Basket {
	projection := basketapi.Basket{
		UID:      b.UID,
		BuyerUID: b.BuyerUID,
		Items:    []basketapi.BasketItem{},
	}

	for _, item := range b.Items {
		product := products[item.ProductUID]

		projection.Items = append(projection.Items, basketapi.BasketItem{
			ProductUID:  item.ProductUID,
			Name:        product.Name,
			Brand:       product.Brand,
			ProductType: product.ProductType,
			Price:       product.Price,
			Currency:    product.Currency,
			ImageURL:    product.ImageURL,
			Quantity:    item.Quantity,
		})

		projection.TotalPrice += product.Price * item.Quantity
		if projection.Currency == "" {
			projection.Currency = product.Currency
		}
	}

	return projection
}
