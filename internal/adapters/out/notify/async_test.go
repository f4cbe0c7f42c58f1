package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"mealorders/internal/adapters/out/notify"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event notify.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// syncBuffer lets the publishing goroutine and the test share a log buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger(out *syncBuffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(out, nil))
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	addressID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), &addressID, nil, order.Online)
	require.NoError(t, err)
	_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 3, kernel.MustMoney("120"))
	require.NoError(t, err)
	return o
}

func TestAsync_NotifyStatusChanged_PublishesEvent(t *testing.T) {
	publisher := &MockPublisher{}
	o := newOrder(t)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Event == notify.OrderStatusChanged &&
			e.OrderID == o.ID().String() &&
			e.UserID == o.UserID().String() &&
			e.Status == "PREPARING" &&
			e.Message == "Our chefs are busy preparing your delicious meal!" &&
			e.TotalAmount == "360.00" &&
			!e.OccurredAt.IsZero()
	})).Return(nil).Once()

	notifier := notify.NewAsync(publisher, newLogger(&syncBuffer{}), time.Second)
	notifier.NotifyStatusChanged(context.Background(), o, order.Preparing)
	notifier.Wait()

	publisher.AssertExpectations(t)
}

func TestAsync_NotifyOrderCreated_PublishesEvent(t *testing.T) {
	publisher := &MockPublisher{}
	addressID, menuID := kernel.NewUUID(), kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), &addressID, &menuID, order.Cash)
	require.NoError(t, err)
	_, err = o.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustMoney("99.50"))
	require.NoError(t, err)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Event == notify.OrderCreated &&
			e.OrderID == o.ID().String() &&
			e.UserID == o.UserID().String() &&
			e.MenuID == menuID.String() &&
			e.TotalAmount == "199.00" &&
			e.Status == "PENDING"
	})).Return(nil).Once()

	notifier := notify.NewAsync(publisher, newLogger(&syncBuffer{}), time.Second)
	notifier.NotifyOrderCreated(context.Background(), o)
	notifier.Wait()

	publisher.AssertExpectations(t)
}

func TestAsync_PublishesWithDetachedContext(t *testing.T) {
	publisher := &MockPublisher{}
	var (
		called      bool
		ctxErr      error
		hasDeadline bool
	)
	publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			publishCtx := args.Get(0).(context.Context)
			called = true
			ctxErr = publishCtx.Err()
			_, hasDeadline = publishCtx.Deadline()
		}).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	notifier := notify.NewAsync(publisher, newLogger(&syncBuffer{}), time.Second)
	notifier.NotifyOrderCreated(ctx, newOrder(t))
	notifier.Wait()

	require.True(t, called)
	assert.NoError(t, ctxErr, "a finished request must not cancel the notification")
	assert.True(t, hasDeadline)
}

func TestAsync_DoesNotBlockCaller(t *testing.T) {
	publisher := &MockPublisher{}
	release := make(chan struct{})
	publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Once()

	notifier := notify.NewAsync(publisher, newLogger(&syncBuffer{}), time.Second)
	o := newOrder(t)

	returned := make(chan struct{})
	go func() {
		notifier.NotifyOrderCreated(context.Background(), o)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("NotifyOrderCreated blocked on the publisher")
	}

	close(release)
	notifier.Wait()
	publisher.AssertExpectations(t)
}

func TestAsync_LogsPublishFailure(t *testing.T) {
	publisher := &MockPublisher{}
	o := newOrder(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker unreachable")).Once()
	out := &syncBuffer{}

	notifier := notify.NewAsync(publisher, newLogger(out), time.Second)
	notifier.NotifyOrderCreated(context.Background(), o)
	notifier.Wait()

	logged := out.String()
	assert.Contains(t, logged, `"level":"ERROR"`)
	assert.Contains(t, logged, `"order_id":"`+o.ID().String()+`"`)
	assert.Contains(t, logged, `"event":"ORDER_CREATED"`)
	assert.Contains(t, logged, "broker unreachable")
}

func TestLogPublisher_WritesEvent(t *testing.T) {
	out := &syncBuffer{}
	publisher := notify.NewLogPublisher(newLogger(out))

	err := publisher.Publish(context.Background(), notify.Event{
		Event:   notify.OrderStatusChanged,
		OrderID: "42",
		Status:  "DELIVERED",
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"status":"DELIVERED"`)
	assert.Contains(t, out.String(), `"component":"notifications"`)
}
