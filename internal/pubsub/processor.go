package pubsub

import (
	"fmt"
	"trekBooker/internal/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

func RegisterEventHandlers(
	rdb *redis.Client,
	router *message.Router,
	handlers []cqrs.EventHandler,
	watermillLogger watermill.LoggerAdapter,
) error {
	ep, err := cqrs.NewEventProcessorWithConfig(
		router,
		cqrs.EventProcessorConfig{
			SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
				return newRedisSubscriber(rdb, params.HandlerName, watermillLogger)
			},
			GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
				return events.TopicPrefix + params.EventName, nil
			},
			Marshaler: events.Marshaler,
			Logger:    watermillLogger,
		})
	if err != nil {
		return fmt.Errorf("could not create event processor: %w", err)
	}

	if err = ep.AddHandlers(handlers...); err != nil {
		return fmt.Errorf("could not add handlers to event processor: %w", err)
	}

	return nil
}
