package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	kycpkg "github.com/palepusrinivas/guava-adminpanel-sub002/kyc"
	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
	"github.com/palepusrinivas/guava-adminpanel-sub002/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub      *realtime.Hub
	kyc      kycpkg.KYCService
	debounce *kycpkg.Debouncer
	log      *zap.Logger
}

func NewWSHandler(hub *realtime.Hub, kyc kycpkg.KYCService, debounce *kycpkg.Debouncer, log *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, kyc: kyc, debounce: debounce, log: log}
}

// ConsoleSocket upgrades to WS and registers the tab. It runs behind
// RequireSession, so the upstream token is already on the request context.
func (h *WSHandler) ConsoleSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("admin_email")
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		connID := uuid.NewString()
		h.hub.Register(connID, email, conn)
		base := context.WithoutCancel(c.Request.Context())
		log := logging.For(base, h.log).With(zap.String("conn_id", connID))
		log.Info("console tab connected", zap.String("action", "ws_connect"))

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				h.debounce.Cancel(connID)
				h.hub.Unregister(connID)
				log.Info("console tab disconnected", zap.String("action", "ws_disconnect"))
				break
			}
			var msg struct {
				Event string          `json:"event"`
				Data  json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			switch msg.Event {
			case realtime.EventKYCSearch:
				var p realtime.KYCSearchPayload
				if err := json.Unmarshal(msg.Data, &p); err != nil {
					continue
				}
				h.debounce.Trigger(connID, func() { h.searchKYC(base, connID, p) })
			default:
				// ignore
			}
		}
	}
}

func (h *WSHandler) searchKYC(base context.Context, connID string, p realtime.KYCSearchPayload) {
	ctx, cancel := context.WithTimeout(base, requestTimeout)
	defer cancel()
	st, err := h.kyc.Search(ctx, kycpkg.SearchRequest{Query: p.Query, Status: p.Status})
	out := realtime.KYCResultsPayload{
		Query:  p.Query,
		Status: string(p.Status),
		Items:  st.Items,
		Total:  st.Total,
		Error:  st.Error,
		Demo:   st.Demo,
	}
	if err != nil && out.Error == "" {
		out.Error = errorMessage(err)
	}
	_ = h.hub.Notify(connID, realtime.EventKYCResults, out)
}
