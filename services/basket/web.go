package basket

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/basketbackend/lib/mycontext"
	"github.com/MarcGrol/basketbackend/lib/myerrors"
	"github.com/MarcGrol/basketbackend/lib/myhttp"
	"github.com/MarcGrol/basketbackend/lib/mylog"
	"github.com/MarcGrol/basketbackend/lib/mypublisher"
	"github.com/MarcGrol/basketbackend/lib/mystore"
	"github.com/MarcGrol/basketbackend/lib/mytime"
	"github.com/MarcGrol/basketbackend/lib/myuuid"
	"github.com/MarcGrol/basketbackend/services/basketapi"
	"github.com/MarcGrol/basketbackend/services/catalog"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[Basket], productCatalog catalog.ProductCatalog, nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher) *webService {
	logger := mylog.New("basket")
	return &webService{
		service: newService(store, productCatalog, nower, uuider, logger, pub),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/basket", s.getBasketPage()).Methods("GET")
	router.HandleFunc("/api/basket/item", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/basket/item/{productUID}", s.removeItemPage()).Methods("DELETE")

	return s.service.CreateTopics(c)
}

func (s *webService) getBasketPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		basket, err := s.service.getBasket(c, readBuyerUID(r))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, basket)
	}
}

func (s *webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		addItem, err := basketapi.NewAddItemFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		basket, isNewBuyer, err := s.service.addItem(c, readBuyerUID(r), addItem)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if isNewBuyer {
			writeBuyerUID(w, basket.BuyerUID)
		}

		errorWriter.Write(c, w, http.StatusOK, basket)
	}
}

func (s *webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		quantity := 1
		if q := r.URL.Query().Get("quantity"); q != "" {
			var err error
			quantity, err = strconv.Atoi(q)
			if err != nil || quantity < 1 {
				errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("invalid quantity %s", q))
				return
			}
		}

		basket, err := s.service.removeItem(c, readBuyerUID(r), productUID, quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, basket)
	}
}

func readBuyerUID(r *http.Request) string {
	cookie, err := r.Cookie(BuyerUIDCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// The buyer-uid cookie is essential: losing it orphans the basket
func writeBuyerUID(w http.ResponseWriter, buyerUID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     BuyerUIDCookieName,
		Value:    buyerUID,
		Path:     "/",
		Expires:  time.Now().Add(BuyerUIDMaxAge),
		MaxAge:   int(BuyerUIDMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
