package postgres

import (
	"fmt"
	"trekBooker/internal/events"

	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/jmoiron/sqlx"
)

// newOutboxEventBus publishes into the outbox table through the given transaction, so the
// event becomes visible to the forwarder only if the transaction commits.
func (s *Storage) newOutboxEventBus(tx *sqlx.Tx) (*cqrs.EventBus, error) {
	sqlPublisher, err := watermillSQL.NewPublisher(
		tx,
		watermillSQL.PublisherConfig{
			SchemaAdapter: watermillSQL.DefaultPostgreSQLSchema{},
		},
		s.wmLogger,
	)
	if err != nil {
		return nil, err
	}

	publisher := forwarder.NewPublisher(sqlPublisher, forwarder.PublisherConfig{
		ForwarderTopic: events.OutboxTopic,
	})

	return events.NewEventBus(publisher)
}

// InitOutbox creates the outbox table so in-transaction publishing never has to.
func (s *Storage) InitOutbox() error {
	sub, err := watermillSQL.NewSubscriber(s.db, watermillSQL.SubscriberConfig{
		SchemaAdapter:    watermillSQL.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillSQL.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
	}, s.wmLogger)
	if err != nil {
		return fmt.Errorf("storage.postgres.InitOutbox: %w", err)
	}
	defer sub.Close()

	if err = sub.SubscribeInitialize(events.OutboxTopic); err != nil {
		return fmt.Errorf("storage.postgres.InitOutbox: %w", err)
	}

	return nil
}
