package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu      sync.Mutex
	msgs    []map[string]any
	closed  bool
	failing bool
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	c.msgs = append(c.msgs, v.(map[string]any))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func TestResourceChangedReachesEveryTab(t *testing.T) {
	h := NewHub(nil)
	a, b := &fakeConn{}, &fakeConn{}
	h.Register("a", "ops@guava.in", a)
	h.Register("b", "ops@guava.in", b)

	h.ResourceChanged(context.Background(), "coupons", "create")

	for _, c := range []*fakeConn{a, b} {
		require.Len(t, c.msgs, 1)
		assert.Equal(t, EventResourceChanged, c.msgs[0]["event"])
		assert.Equal(t, ChangedPayload{Resource: "coupons", Action: "create"}, c.msgs[0]["data"])
	}
}

func TestBroadcastDropsBrokenTabs(t *testing.T) {
	h := NewHub(nil)
	good, bad := &fakeConn{}, &fakeConn{failing: true}
	h.Register("good", "", good)
	h.Register("bad", "", bad)

	h.Broadcast("ping", nil)
	assert.Equal(t, 1, h.Connected())
	assert.True(t, bad.closed)
}

func TestRegisterReplacesAndNotify(t *testing.T) {
	h := NewHub(nil)
	first, second := &fakeConn{}, &fakeConn{}
	h.Register("tab", "", first)
	h.Register("tab", "", second)
	assert.True(t, first.closed)

	require.NoError(t, h.Notify("tab", EventKYCResults, KYCResultsPayload{Query: "ravi"}))
	require.NoError(t, h.Notify("gone", EventKYCResults, nil))
	require.Len(t, second.msgs, 1)

	h.Unregister("tab")
	assert.Zero(t, h.Connected())
	assert.True(t, second.closed)
}
