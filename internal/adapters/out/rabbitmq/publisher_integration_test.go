package rabbitmq_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"mealorders/internal/adapters/out/notify"
	"mealorders/internal/adapters/out/rabbitmq"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PublisherIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	url       string
}

func (suite *PublisherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor: wait.ForLog("Server startup complete").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5672")
	suite.Require().NoError(err)
	suite.url = fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func (suite *PublisherIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// subscribe binds an exclusive queue to exchange the way a notification consumer would.
func (suite *PublisherIntegrationTestSuite) subscribe(exchange string) (<-chan amqp091.Delivery, func()) {
	conn, err := amqp091.Dial(suite.url)
	suite.Require().NoError(err)
	ch, err := conn.Channel()
	suite.Require().NoError(err)
	suite.Require().NoError(ch.ExchangeDeclare(exchange, amqp091.ExchangeFanout, true, false, false, false, nil))
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(ch.QueueBind(q.Name, "", exchange, false, nil))
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	suite.Require().NoError(err)
	return deliveries, func() { _ = conn.Close() }
}

func (suite *PublisherIntegrationTestSuite) TestPublish_FanoutDelivery() {
	deliveries, stop := suite.subscribe(rabbitmq.DefaultExchange)
	defer stop()

	publisher, err := rabbitmq.NewPublisher(suite.url, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	suite.Require().NoError(err)
	defer publisher.Close()

	event := notify.Event{
		Event:      notify.OrderStatusChanged,
		OrderID:    "5b0f2a6e-1f0c-4bde-8a55-6a2f3f0a9c01",
		Status:     "DELIVERED",
		Message:    "Your order has been delivered! We hope you enjoy your meal.",
		OccurredAt: time.Now().UTC(),
	}
	suite.Require().NoError(publisher.Publish(context.Background(), event))

	select {
	case d := <-deliveries:
		suite.Equal("application/json", d.ContentType)
		suite.Equal(amqp091.Persistent, d.DeliveryMode)
		var got notify.Event
		suite.Require().NoError(json.Unmarshal(d.Body, &got))
		suite.Equal(event.OrderID, got.OrderID)
		suite.Equal("DELIVERED", got.Status)
		suite.Equal(event.Message, got.Message)
	case <-time.After(10 * time.Second):
		suite.Fail("notification was not delivered")
	}
}

func (suite *PublisherIntegrationTestSuite) TestPublish_AfterClose() {
	publisher, err := rabbitmq.NewPublisher(suite.url, "closed_exchange", slog.New(slog.NewTextHandler(io.Discard, nil)))
	suite.Require().NoError(err)
	suite.Require().NoError(publisher.Close())

	err = publisher.Publish(context.Background(), notify.Event{Event: notify.OrderCreated, OrderID: "1"})

	suite.ErrorIs(err, rabbitmq.ErrPublisherClosed)
	suite.NoError(publisher.Close())
}

func TestPublisherIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherIntegrationTestSuite))
}
