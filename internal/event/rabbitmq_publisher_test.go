package event

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange  string
	key       string
	published []amqp.Publishing
	publishErr error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	if c.publishErr != nil {
		return c.publishErr
	}
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRabbitMQPublisher_PublishCreditRequested(t *testing.T) {
	ch := &fakeChannel{}
	pub := newRabbitMQPublisher(func() (channel, error) { return ch, nil }, "credit-engine", testLogger())

	evt := CreditRequestedEvent{
		Timestamp: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		Payload: CreditEventPayload{
			CreditCode:           "3f1a3c8e-8d53-4d7e-9a3b-4fd0f1d1c0aa",
			CustomerID:           7,
			CreditValue:          "1500.00",
			DayFirstInstallment:  "2026-02-10",
			NumberOfInstallments: 12,
			Status:               "IN_PROGRESS",
		},
	}

	err := pub.PublishCreditRequested(context.Background(), evt)
	require.NoError(t, err)

	assert.Equal(t, "credit-engine", ch.exchange)
	assert.Equal(t, RoutingKeyCreditRequested, ch.key)
	assert.True(t, ch.closed)
	require.Len(t, ch.published, 1)

	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, publisherAppID, msg.AppId)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "1500.00", payload["creditValue"])
	assert.Equal(t, float64(7), payload["customerId"])
}

func TestRabbitMQPublisher_CustomerRoutingKeys(t *testing.T) {
	ch := &fakeChannel{}
	pub := newRabbitMQPublisher(func() (channel, error) { return ch, nil }, "credit-engine", testLogger())
	ctx := context.Background()

	require.NoError(t, pub.PublishCustomerRegistered(ctx, CustomerEvent{}))
	assert.Equal(t, RoutingKeyCustomerRegistered, ch.key)

	require.NoError(t, pub.PublishCustomerUpdated(ctx, CustomerEvent{}))
	assert.Equal(t, RoutingKeyCustomerUpdated, ch.key)

	require.NoError(t, pub.PublishCustomerDeleted(ctx, CustomerEvent{}))
	assert.Equal(t, RoutingKeyCustomerDeleted, ch.key)
}

func TestRabbitMQPublisher_Errors(t *testing.T) {
	t.Run("channel open failure", func(t *testing.T) {
		openErr := errors.New("connection closed")
		pub := newRabbitMQPublisher(func() (channel, error) { return nil, openErr }, "credit-engine", testLogger())

		err := pub.PublishCustomerRegistered(context.Background(), CustomerEvent{})
		assert.ErrorIs(t, err, openErr)
		assert.Contains(t, err.Error(), "failed to open channel")
	})

	t.Run("publish failure", func(t *testing.T) {
		pubErr := errors.New("channel closed")
		ch := &fakeChannel{publishErr: pubErr}
		pub := newRabbitMQPublisher(func() (channel, error) { return ch, nil }, "credit-engine", testLogger())

		err := pub.PublishCustomerDeleted(context.Background(), CustomerEvent{})
		assert.ErrorIs(t, err, pubErr)
		assert.True(t, ch.closed)
	})
}

func TestNewRabbitMQPublisher_Validation(t *testing.T) {
	_, err := NewRabbitMQPublisher(nil, "credit-engine", testLogger())
	assert.EqualError(t, err, "RabbitMQ connection cannot be nil")
}

func TestNoopPublisher(t *testing.T) {
	pub := NewNoopPublisher(testLogger())
	ctx := context.Background()

	assert.NoError(t, pub.PublishCustomerRegistered(ctx, CustomerEvent{}))
	assert.NoError(t, pub.PublishCustomerUpdated(ctx, CustomerEvent{}))
	assert.NoError(t, pub.PublishCustomerDeleted(ctx, CustomerEvent{}))
	assert.NoError(t, pub.PublishCreditRequested(ctx, CreditRequestedEvent{}))
}
