package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palepusrinivas/guava-adminpanel-sub002/realtime"
)

type wsEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func dialConsole(t *testing.T, r http.Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws?access_token=sess-1"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) wsEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var ev wsEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestConsoleSocketRequiresSession(t *testing.T) {
	r, _, _ := newRouter(t)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/v1/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestConsoleSocketDebouncesKYCSearch(t *testing.T) {
	r, b, _ := newRouter(t)
	conn := dialConsole(t, r)

	for _, q := range []string{"r", "ra", "rav"} {
		require.NoError(t, conn.WriteJSON(map[string]any{
			"event": realtime.EventKYCSearch,
			"data":  map[string]any{"query": q, "status": "PENDING"},
		}))
	}

	ev := readEvent(t, conn)
	require.Equal(t, realtime.EventKYCResults, ev.Event)
	var res realtime.KYCResultsPayload
	require.NoError(t, json.Unmarshal(ev.Data, &res))
	assert.Equal(t, "rav", res.Query)
	assert.Equal(t, "PENDING", res.Status)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "rav", res.Items[0].Name)
	assert.Empty(t, res.Error)
	assert.Equal(t, 1, b.countCalls("GET /api/admin/kyc"))

	// A mutation from any tab reaches this one.
	w := do(r, http.MethodPost, "/api/v1/coupons", strings.NewReader(`{"code":"SAVE10","type":"PERCENT","value":10,"active":true}`), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	ev = readEvent(t, conn)
	require.Equal(t, realtime.EventResourceChanged, ev.Event)
	var changed realtime.ChangedPayload
	require.NoError(t, json.Unmarshal(ev.Data, &changed))
	assert.Equal(t, "coupons", changed.Resource)
	assert.Equal(t, "create", changed.Action)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "the search burst must produce a single result event")
	assert.Equal(t, 1, b.countCalls("GET /api/admin/kyc"))
}
