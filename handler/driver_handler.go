package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	driverpkg "github.com/palepusrinivas/guava-adminpanel-sub002/driver"
)

type DriverHandler struct {
	service driverpkg.DriverService
}

func NewDriverHandler(svc driverpkg.DriverService) *DriverHandler {
	return &DriverHandler{service: svc}
}

// GetDriver returns one driver with vehicle and KYC details.
func (h *DriverHandler) GetDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		d, err := h.service.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
