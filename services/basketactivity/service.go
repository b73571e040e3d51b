package basketactivity

import (
	"context"
	"fmt"
	"sort"

	"github.com/MarcGrol/basketbackend/lib/myerrors"
	"github.com/MarcGrol/basketbackend/lib/myhttp"
	"github.com/MarcGrol/basketbackend/lib/mylog"
	"github.com/MarcGrol/basketbackend/lib/mypubsub"
	"github.com/MarcGrol/basketbackend/lib/mystore"
	"github.com/MarcGrol/basketbackend/lib/mytime"
	"github.com/MarcGrol/basketbackend/lib/myuuid"
	"github.com/MarcGrol/basketbackend/services/basket/basketevents"
)

type service struct {
	activityStore mystore.Store[Activity]
	subscriber    mypubsub.PubSub
	nower         mytime.Nower
	uuider        myuuid.UUIDer
	logger        mylog.Logger
}

func newService(store mystore.Store[Activity], subscriber mypubsub.PubSub, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		activityStore: store,
		subscriber:    subscriber,
		nower:         nower,
		uuider:        uuider,
		logger:        logger,
	}
}

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.Subscribe(c, basketevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/basket/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", basketevents.TopicName, err)
	}

	return nil
}

func (s *service) OnBasketCreated(c context.Context, topic string, event basketevents.BasketCreated) error {
	return s.record(c, Activity{
		BasketUID: event.BasketUID,
		EventType: event.GetEventTypeName(),
	})
}

func (s *service) OnBasketItemAdded(c context.Context, topic string, event basketevents.BasketItemAdded) error {
	return s.record(c, Activity{
		BasketUID:  event.BasketUID,
		EventType:  event.GetEventTypeName(),
		ProductUID: event.ProductUID,
		Quantity:   event.Quantity,
	})
}

func (s *service) OnBasketItemRemoved(c context.Context, topic string, event basketevents.BasketItemRemoved) error {
	return s.record(c, Activity{
		BasketUID:  event.BasketUID,
		EventType:  event.GetEventTypeName(),
		ProductUID: event.ProductUID,
		Quantity:   event.Quantity,
	})
}

func (s *service) record(c context.Context, activity Activity) error {
	activity.UID = s.uuider.Create()
	activity.CreatedAt = s.nower.Now()

	s.logger.Log(c, activity.BasketUID, mylog.SeverityInfo, "Webhook: record %s on basket %s", activity.EventType, activity.BasketUID)

	err := s.activityStore.Put(c, activity.UID, activity)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

func (s *service) listActivities(c context.Context, basketUID string) ([]Activity, error) {
	all, err := s.activityStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	activities := []Activity{}
	for _, a := range all {
		if basketUID == "" || a.BasketUID == basketUID {
			activities = append(activities, a)
		}
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.Before(activities[j].CreatedAt)
	})

	return activities, nil
}
