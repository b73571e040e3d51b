package basket

import (
	"context"
	"fmt"

	"github.com/MarcGrol/basketbackend/lib/myerrors"
	"github.com/MarcGrol/basketbackend/lib/mylog"
	"github.com/MarcGrol/basketbackend/services/basketapi"
	"github.com/MarcGrol/basketbackend/services/basket/basketevents"
	"github.com/MarcGrol/basketbackend/services/catalog"
)

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, basketevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", basketevents.TopicName, err)
	}

	return nil
}

func (s *service) getBasket(c context.Context, buyerUID string) (basketapi.Basket, error) {
	if buyerUID == "" {
		return basketapi.Basket{}, myerrors.NewNotFoundError(fmt.Errorf("no basket for unidentified buyer"))
	}

	s.logger.Log(c, buyerUID, mylog.SeverityInfo, "Fetch basket of buyer %s", buyerUID)

	basket, found, err := s.basketStore.Get(c, buyerUID)
	if err != nil {
		return basketapi.Basket{}, myerrors.NewInternalError(err)
	}
	if !found {
		return basketapi.Basket{}, myerrors.NewNotFoundError(fmt.Errorf("no basket found for buyer %s", buyerUID))
	}

	return s.hydrate(c, basket)
}

func (s *service) addItem(c context.Context, incomingBuyerUID string, addItem basketapi.AddItem) (basketapi.Basket, bool, error) {
	buyerUID, isNewBuyer := s.identity.resolve(incomingBuyerUID)

	s.logger.Log(c, buyerUID, mylog.SeverityInfo, "Add %d x %s to basket of buyer %s", addItem.Quantity, addItem.ProductUID, buyerUID)

	// Resolve the product up-front: an unknown product must not leave any trace
	product, found, err := s.catalog.GetProductByUID(c, addItem.ProductUID)
	if err != nil {
		return basketapi.Basket{}, false, myerrors.NewInternalError(err)
	}
	if !found {
		return basketapi.Basket{}, false, myerrors.NewInvalidInputErrorf("product with uid %s not found", addItem.ProductUID)
	}

	now := s.nower.Now()

	var basket Basket
	err = s.basketStore.RunInTransaction(c, func(c context.Context) error {
		var exists bool
		var err error
		basket, exists, err = s.basketStore.Get(c, buyerUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		basketCreated := false
		if !exists {
			basket = Basket{
				UID:       s.uuider.Create(),
				BuyerUID:  buyerUID,
				CreatedAt: now,
				Items:     []BasketItem{},
			}
			basketCreated = true
		}

		basket.AddItem(product.UID, addItem.Quantity)
		basket.LastModified = &now

		err = s.basketStore.Put(c, buyerUID, basket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		if basketCreated {
			err = s.publisher.Publish(c, basketevents.TopicName, basketevents.BasketCreated{
				BasketUID: basket.UID,
				BuyerUID:  buyerUID,
			})
			if err != nil {
				return myerrors.NewInternalError(err)
			}
		}

		err = s.publisher.Publish(c, basketevents.TopicName, basketevents.BasketItemAdded{
			BasketUID:  basket.UID,
			ProductUID: product.UID,
			Quantity:   addItem.Quantity,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return basketapi.Basket{}, false, err
	}

	projection, err := s.hydrate(c, basket)

	return projection, isNewBuyer, err
}

func (s *service) removeItem(c context.Context, buyerUID string, productUID string, quantity int) (basketapi.Basket, error) {
	if buyerUID == "" {
		return basketapi.Basket{}, myerrors.NewNotFoundError(fmt.Errorf("no basket for unidentified buyer"))
	}

	s.logger.Log(c, buyerUID, mylog.SeverityInfo, "Remove %d x %s from basket of buyer %s", quantity, productUID, buyerUID)

	now := s.nower.Now()

	var basket Basket
	err := s.basketStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		basket, found, err = s.basketStore.Get(c, buyerUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("no basket found for buyer %s", buyerUID))
		}

		removed := basket.RemoveItem(productUID, quantity)
		if removed == 0 {
			// nothing to remove is not an error
			return nil
		}

		basket.LastModified = &now

		err = s.basketStore.Put(c, buyerUID, basket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, basketevents.TopicName, basketevents.BasketItemRemoved{
			BasketUID:  basket.UID,
			ProductUID: productUID,
			Quantity:   removed,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return basketapi.Basket{}, err
	}

	return s.hydrate(c, basket)
}

// hydrate eagerly resolves the product attributes of every item so that the
// projection never has to reach back into the catalog.
func (s *service) hydrate(c context.Context, basket Basket) (basketapi.Basket, error) {
	products := map[string]catalog.Product{}

	for _, item := range basket.Items {
		product, found, err := s.catalog.GetProductByUID(c, item.ProductUID)
		if err != nil {
			return basketapi.Basket{}, myerrors.NewInternalError(err)
		}
		if !found {
			// product disappeared from the catalog after it was added:
			// keep the line, the projection will carry the quantity only
			s.logger.Log(c, basket.UID, mylog.SeverityWarn, "Product %s in basket %s no longer exists", item.ProductUID, basket.UID)
			continue
		}
		products[item.ProductUID] = product
	}

	return projectBasket(basket, products), nil
}
