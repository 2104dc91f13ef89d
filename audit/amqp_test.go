package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// pendingConfirm resolves when the test answers it.
type pendingConfirm struct {
	done chan bool
}

func (c *pendingConfirm) WaitContext(ctx context.Context) (bool, error) {
	select {
	case ack := <-c.done:
		return ack, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakeChannel struct {
	mu        sync.Mutex
	published []amqp.Publishing
	keys      []string
	pending   []*pendingConfirm
	closed    bool
}

func (f *fakeChannel) publish(_ context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &pendingConfirm{done: make(chan bool, 1)}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	f.pending = append(f.pending, c)
	return c, nil
}

func (f *fakeChannel) confirm(i int, ack bool) {
	f.mu.Lock()
	c := f.pending[i]
	f.mu.Unlock()
	c.done <- ack
}

func (f *fakeChannel) pendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

func (f *fakeChannel) IsClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func testEvent(action string) Event {
	return Event{Resource: "coupons", Action: action, Admin: "ops@guava.in", At: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func TestPublishWaitsForItsOwnConfirm(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher("console.audit", ch, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- p.Publish(context.Background(), testEvent("create")) }()
	require.Eventually(t, func() bool { return ch.pendingCount() == 1 }, time.Second, time.Millisecond)
	ch.confirm(0, true)
	require.NoError(t, <-done)

	require.Equal(t, []string{"coupons.create"}, ch.keys)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.NotEmpty(t, ch.published[0].MessageId)
}

func TestLateConfirmIsNotTakenByNextPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher("console.audit", ch, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Publish(ctx, testEvent("create"))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The first publishing is acked only now, after its caller gave up.
	ch.confirm(0, true)

	done := make(chan error, 1)
	go func() { done <- p.Publish(context.Background(), testEvent("update")) }()
	require.Eventually(t, func() bool { return ch.pendingCount() == 2 }, time.Second, time.Millisecond)
	ch.confirm(1, false)

	err = <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nacked coupons.update")
}

func TestPublishOnClosedChannel(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher("console.audit", ch, zap.NewNop())
	require.NoError(t, p.Close())

	err := p.Publish(context.Background(), testEvent("delete"))
	require.Error(t, err)
	assert.Empty(t, ch.keys)
	assert.False(t, errors.Is(err, context.DeadlineExceeded))
}
