// Package audit records successful console mutations as events on a message broker.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Event is one applied mutation.
type Event struct {
	Resource  string    `json:"resource"`
	Action    string    `json:"action"`
	Admin     string    `json:"admin"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}

// RoutingKey is "<resource>.<action>".
func (e Event) RoutingKey() string { return e.Resource + "." + e.Action }

// Publisher delivers audit events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

type actorKey struct{}

// WithActor attaches the acting admin's email to ctx.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, email)
}

// Actor returns the acting admin stored on ctx.
func Actor(ctx context.Context) string {
	a, _ := ctx.Value(actorKey{}).(string)
	return a
}

// publishTimeout bounds how long a mutation waits for the broker.
const publishTimeout = 5 * time.Second

// Listener turns successful mutations into published events. Publish errors
// are logged; the mutation has already been applied upstream.
func Listener(p Publisher, log *zap.Logger, now func() time.Time) resource.ChangeFunc {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context, res, action string) {
		e := Event{
			Resource:  res,
			Action:    action,
			Admin:     Actor(ctx),
			RequestID: logging.RequestID(ctx),
			At:        now().UTC(),
		}
		pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()
		if err := p.Publish(pctx, e); err != nil {
			logging.For(ctx, log).Warn("audit publish failed", zap.String("action", "audit_publish"),
				zap.String("routing_key", e.RoutingKey()), zap.Error(err))
		}
	}
}
