package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	intercitypkg "github.com/palepusrinivas/guava-adminpanel-sub002/intercity"
)

type IntercityHandler struct {
	service intercitypkg.TripService
}

func NewIntercityHandler(svc intercitypkg.TripService) *IntercityHandler {
	return &IntercityHandler{service: svc}
}

func (h *IntercityHandler) Dispatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := h.service.Dispatch(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": entity.TripDispatched})
	}
}

// Cancel runs behind RequireConfirm and needs a reason.
func (h *IntercityHandler) Cancel() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req intercitypkg.CancelRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := h.service.Cancel(ctx, c.Param("id"), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": entity.TripCancelled})
	}
}
