package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/travigo/agency-tools/pkg/util"
)

const exchangeName = "agency-tools"

var errNotConfirmed = errors.New("publish was not confirmed by the server")

type Publisher interface {
	Publish(ctx context.Context, event *DatasetGenerated) error
	Close() error
}

// NoopPublisher is used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event *DatasetGenerated) error {
	log.Debug().Str("dataset", event.DatasetID).Msg("No event broker configured, skipping event")
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

type AMQPPublisher struct {
	connection    *amqp.Connection
	channel       *amqp.Channel
	notifyConfirm chan amqp.Confirmation
}

// NewPublisher connects to AGENCYTOOLS_AMQP_URL, or returns a NoopPublisher when it is unset
func NewPublisher(ctx context.Context) (Publisher, error) {
	addr := util.GetEnvironmentVariable("AGENCYTOOLS_AMQP_URL", "")
	if addr == "" {
		return NoopPublisher{}, nil
	}

	var connection *amqp.Connection
	retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	err := backoff.RetryNotify(func() error {
		var err error
		connection, err = amqp.Dial(addr)
		return err
	}, retry, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("wait", wait.String()).Msg("Failed to connect to AMQP, retrying")
	})
	if err != nil {
		return nil, err
	}

	channel, err := connection.Channel()
	if err != nil {
		connection.Close()
		return nil, err
	}

	if err := channel.Confirm(false); err != nil {
		connection.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		connection.Close()
		return nil, err
	}

	publisher := &AMQPPublisher{
		connection:    connection,
		channel:       channel,
		notifyConfirm: channel.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	log.Info().Str("exchange", exchangeName).Msg("Connected to AMQP")

	return publisher, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event *DatasetGenerated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,               // exchange
		DatasetGeneratedRoutingKey, // routing key
		false,                      // mandatory
		false,                      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.GeneratedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", DatasetGeneratedRoutingKey, err)
	}

	select {
	case confirm := <-p.notifyConfirm:
		if !confirm.Ack {
			return errNotConfirmed
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	log.Info().Str("dataset", event.DatasetID).Msg("Published dataset generated event")

	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}

	return p.connection.Close()
}
