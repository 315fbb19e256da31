package pubsub

import (
	"fmt"
	"trekBooker/internal/events"

	"github.com/ThreeDotsLabs/watermill"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
)

// NewForwarder drains the Postgres outbox into pub. The caller runs it with Run(ctx).
func NewForwarder(db *sqlx.DB, pub message.Publisher, watermillLogger watermill.LoggerAdapter) (*forwarder.Forwarder, error) {
	sub, err := watermillSQL.NewSubscriber(db, watermillSQL.SubscriberConfig{
		SchemaAdapter:    watermillSQL.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillSQL.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
	}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("could not create outbox subscriber: %w", err)
	}

	fwd, err := forwarder.NewForwarder(sub, pub, watermillLogger, forwarder.Config{
		ForwarderTopic: events.OutboxTopic,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create forwarder: %w", err)
	}

	return fwd, nil
}
