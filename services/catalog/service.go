package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/MarcGrol/basketbackend/lib/mylog"
	"github.com/MarcGrol/basketbackend/lib/mystore"
	"github.com/MarcGrol/basketbackend/lib/mytime"
)

type service struct {
	productStore mystore.Store[Product]
	nower        mytime.Nower
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Product], nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		productStore: store,
		nower:        nower,
		logger:       logger,
	}
}

func (s *service) listProducts(c context.Context) ([]Product, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch all products")

	products, err := s.productStore.List(c)
	if err != nil {
		return nil, fmt.Errorf("error fetching all products: %s", err)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].UID < products[j].UID
	})

	return products, nil
}

func (s *service) getProduct(c context.Context, productUID string) (Product, bool, error) {
	product, found, err := s.productStore.Get(c, productUID)
	if err != nil {
		return Product{}, false, fmt.Errorf("error fetching product with uid %s: %s", productUID, err)
	}

	return product, found, nil
}

// seed stores the initial assortment. Existing products are left untouched
// so that price adjustments survive a restart.
func (s *service) seed(c context.Context, products []Product) error {
	return s.productStore.RunInTransaction(c, func(c context.Context) error {
		for _, p := range products {
			_, exists, err := s.productStore.Get(c, p.UID)
			if err != nil {
				return fmt.Errorf("error checking product with uid %s: %s", p.UID, err)
			}
			if exists {
				continue
			}

			p.CreatedAt = s.nower.Now()
			err = s.productStore.Put(c, p.UID, p)
			if err != nil {
				return fmt.Errorf("error storing product with uid %s: %s", p.UID, err)
			}
		}
		return nil
	})
}
