package events

import (
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

const TopicPrefix = "events."

var Marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

func NewEventBus(pub message.Publisher) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(pub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return TopicPrefix + params.EventName, nil
		},
		Marshaler: Marshaler,
	})
}

// OutboxTopic is the watermill-sql topic the forwarder drains into the message broker.
const OutboxTopic = "events_to_forward"
