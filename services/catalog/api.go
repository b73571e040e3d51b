package catalog

import (
	"context"
)

// ProductCatalog is the read-surface that other services use to resolve products
//
//go:generate mockgen -source=api.go -package catalog -destination catalog_mock.go ProductCatalog
type ProductCatalog interface {
	GetProductByUID(c context.Context, productUID string) (Product, bool, error)
	ListProducts(c context.Context) ([]Product, error)
}
