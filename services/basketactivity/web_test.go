package basketactivity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/basketbackend/lib/myevents"
	"github.com/MarcGrol/basketbackend/lib/mypubsub"
	"github.com/MarcGrol/basketbackend/lib/mystore"
	"github.com/MarcGrol/basketbackend/lib/mytime"
	"github.com/MarcGrol/basketbackend/lib/myuuid"
	"github.com/MarcGrol/basketbackend/services/basket/basketevents"
)

func TestBasketActivityService(t *testing.T) {

	t.Run("Handle basket created event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, storer, nower, uuider := setup(t, ctrl)

		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("activity-1")

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/event",
			strings.NewReader(createPubsubMessage(basketevents.BasketCreated{BasketUID: "basket-1", BuyerUID: "buyer-1"})))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		activity, exists, _ := storer.Get(c, "activity-1")
		assert.True(t, exists)
		assert.Equal(t, "basket-1", activity.BasketUID)
		assert.Equal(t, "basket.created", activity.EventType)
		assert.Equal(t, mytime.ExampleTime, activity.CreatedAt)
	})

	t.Run("Handle item added event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, storer, nower, uuider := setup(t, ctrl)

		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("activity-1")

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/event",
			strings.NewReader(createPubsubMessage(basketevents.BasketItemAdded{BasketUID: "basket-1", ProductUID: "product_tennis_racket", Quantity: 2})))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		activity, exists, _ := storer.Get(c, "activity-1")
		assert.True(t, exists)
		assert.Equal(t, "basket.item.added", activity.EventType)
		assert.Equal(t, "product_tennis_racket", activity.ProductUID)
		assert.Equal(t, 2, activity.Quantity)
	})

	t.Run("Handle item removed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, storer, nower, uuider := setup(t, ctrl)

		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("activity-1")

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/event",
			strings.NewReader(createPubsubMessage(basketevents.BasketItemRemoved{BasketUID: "basket-1", ProductUID: "product_tennis_balls", Quantity: 1})))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		activity, exists, _ := storer.Get(c, "activity-1")
		assert.True(t, exists)
		assert.Equal(t, "basket.item.removed", activity.EventType)
		assert.Equal(t, 1, activity.Quantity)
	})

	t.Run("Handle unrecognized event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/event",
			strings.NewReader(createPubsubMessageOfType("basket.exploded", `{}`)))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 501, response.Code)
	})

	t.Run("Handle malformed push request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/basket/event", strings.NewReader("this is not json"))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("List activity of one basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, storer, _, _ := setup(t, ctrl)

		_ = storer.Put(c, "activity-1", Activity{UID: "activity-1", BasketUID: "basket-1", EventType: "basket.created", CreatedAt: mytime.ExampleTime})
		_ = storer.Put(c, "activity-2", Activity{UID: "activity-2", BasketUID: "basket-1", EventType: "basket.item.added", ProductUID: "product_tennis_racket", Quantity: 1, CreatedAt: mytime.ExampleTime.Add(1)})
		_ = storer.Put(c, "activity-3", Activity{UID: "activity-3", BasketUID: "basket-2", EventType: "basket.created", CreatedAt: mytime.ExampleTime.Add(2)})

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/basket/activity?basketUID=basket-1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "activity-1")
		assert.Contains(t, response.Body.String(), "activity-2")
		assert.NotContains(t, response.Body.String(), "activity-3")
	})
}

func createPubsubMessage(event myevents.Event) string {
	eventBytes, _ := json.Marshal(event)

	return createPubsubMessageOfType(event.GetEventTypeName(), string(eventBytes))
}

func createPubsubMessageOfType(eventTypeName string, payload string) string {
	envelope := myevents.EventEnvelope{
		UID:           "123",
		CreatedAt:     mytime.ExampleTime,
		Topic:         basketevents.TopicName,
		AggregateUID:  "basket-1",
		EventTypeName: eventTypeName,
		EventPayload:  payload,
	}
	envelopeBytes, _ := json.Marshal(envelope)

	req := myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: envelopeBytes,
		},
		Subscription: basketevents.TopicName,
	}
	reqBytes, _ := json.Marshal(req)

	return string(reqBytes)
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[Activity], *mytime.MockNower, *myuuid.MockUUIDer) {
	c := context.TODO()
	storer, _, _ := mystore.New[Activity](c)
	subscriber := mypubsub.NewMockPubSub(ctrl)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)

	sut := NewService(storer, subscriber, nower, uuider)
	router := mux.NewRouter()

	// This is called by the following call to RegisterEndpoints()
	subscriber.EXPECT().Subscribe(c, basketevents.TopicName, "http://localhost:8080/api/basket/event").Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, storer, nower, uuider
}
