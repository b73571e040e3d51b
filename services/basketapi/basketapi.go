package basketapi

import (
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/basketbackend/lib/myerrors"
)

// AddItem is the payload with which a caller puts a quantity of a product in its basket
type AddItem struct {
	ProductUID string `form:"productUid"`
	Quantity   int    `form:"quantity"`
}

func NewAddItemFromRequest(r *http.Request) (AddItem, error) {
	err := r.ParseForm()
	if err != nil {
		return AddItem{}, myerrors.NewInvalidInputError(err)
	}

	return newAddItemFromValues(r.Form)
}

func newAddItemFromValues(values url.Values) (AddItem, error) {
	addItem := AddItem{
		Quantity: 1,
	}
	err := formcodec.NewDecoder().Decode(&addItem, values)
	if err != nil {
		return addItem, myerrors.NewInvalidInputErrorf("error decoding form: %s", err)
	}

	if addItem.ProductUID == "" {
		return addItem, myerrors.NewInvalidInputErrorf("missing productUid")
	}
	if addItem.Quantity < 1 {
		return addItem, myerrors.NewInvalidInputErrorf("quantity must be at least 1, got %d", addItem.Quantity)
	}

	return addItem, nil
}

// Basket is the read-optimised view that is returned to the caller
type Basket struct {
	UID        string
	BuyerUID   string
	TotalPrice int
	Currency   string
	Items      []BasketItem
}

// BasketItem denormalises the current product attributes next to the stored quantity
type BasketItem struct {
	ProductUID  string
	Name        string
	Brand       string
	ProductType string
	Price       int
	Currency    string
	ImageURL    string
	Quantity    int
}
