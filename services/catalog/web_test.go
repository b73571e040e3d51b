package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/basketbackend/lib/mylog"
	"github.com/MarcGrol/basketbackend/lib/mystore"
	"github.com/MarcGrol/basketbackend/lib/mytime"
)

func TestCatalogService(t *testing.T) {

	t.Run("List products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "product_tennis_racket")
		assert.Contains(t, got, "Tennis racket")
		assert.Contains(t, got, "product_running_shoes")
	})

	t.Run("Get product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product/product_tennis_balls", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "Tennis balls")
		assert.Contains(t, got, "Dunlop")
	})

	t.Run("Get product not exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product/product_golf_clubs", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Lookup product as collaborator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, _, sut := setup(t, ctrl)

		// when
		product, found, err := sut.GetProductByUID(ctx, "product_tennis_racket")

		// then
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Wilson", product.Brand)
		assert.Equal(t, 16900, product.Price)
		assert.Equal(t, "EUR 169.00", product.GetPriceInCurrency())
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *webService) {
	c := context.TODO()
	storer, _, _ := mystore.NewInMemoryStore[Product](c)
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	sut := NewService(storer, nower, mylog.New("catalog"))
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, sut
}
