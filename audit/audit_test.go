package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
)

type recordingPublisher struct {
	events []Event
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, e Event) error {
	r.events = append(r.events, e)
	return r.err
}

func (r *recordingPublisher) Close() error { return nil }

func TestListenerPublishesEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	pub := &recordingPublisher{}
	fn := Listener(pub, zap.NewNop(), func() time.Time { return at })

	ctx := logging.WithRequestID(WithActor(context.Background(), "ops@guava.in"), "req-1")
	fn(ctx, "coupons", "create")

	require.Len(t, pub.events, 1)
	assert.Equal(t, Event{Resource: "coupons", Action: "create", Admin: "ops@guava.in", RequestID: "req-1", At: at}, pub.events[0])
	assert.Equal(t, "coupons.create", pub.events[0].RoutingKey())
}

func TestListenerLogsPublishFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	pub := &recordingPublisher{err: errors.New("broker down")}
	fn := Listener(pub, zap.New(core), nil)

	fn(context.Background(), "zones", "delete")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "audit publish failed", logs.All()[0].Message)
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}
