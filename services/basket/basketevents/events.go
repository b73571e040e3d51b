package basketevents

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/MarcGrol/basketbackend/lib/myerrors"
	"github.com/MarcGrol/basketbackend/lib/myevents"
)

const (
	TopicName             = "basket"
	basketCreatedName     = TopicName + ".created"
	basketItemAddedName   = TopicName + ".item.added"
	basketItemRemovedName = TopicName + ".item.removed"
)

type BasketEventService interface {
	Subscribe(c context.Context) error
	OnBasketCreated(c context.Context, topic string, event BasketCreated) error
	OnBasketItemAdded(c context.Context, topic string, event BasketItemAdded) error
	OnBasketItemRemoved(c context.Context, topic string, event BasketItemRemoved) error
}

func DispatchEvent(c context.Context, reader io.Reader, service BasketEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case basketCreatedName:
		{
			event := BasketCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnBasketCreated(c, envelope.Topic, event)
		}
	case basketItemAddedName:
		{
			event := BasketItemAdded{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnBasketItemAdded(c, envelope.Topic, event)
		}
	case basketItemRemovedName:
		{
			event := BasketItemRemoved{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnBasketItemRemoved(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(errors.New(envelope.EventTypeName))
	}
}

type BasketCreated struct {
	BasketUID string
	BuyerUID  string
}

func (e BasketCreated) GetEventTypeName() string {
	return basketCreatedName
}

func (e BasketCreated) GetAggregateName() string {
	return e.BasketUID
}

type BasketItemAdded struct {
	BasketUID  string
	ProductUID string
	Quantity   int
}

func (e BasketItemAdded) GetEventTypeName() string {
	return basketItemAddedName
}

func (e BasketItemAdded) GetAggregateName() string {
	return e.BasketUID
}

type BasketItemRemoved struct {
	BasketUID  string
	ProductUID string
	Quantity   int
}

func (e BasketItemRemoved) GetEventTypeName() string {
	return basketItemRemovedName
}

func (e BasketItemRemoved) GetAggregateName() string {
	return e.BasketUID
}
