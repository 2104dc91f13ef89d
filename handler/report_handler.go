package api

import (
	"github.com/gin-gonic/gin"

	reportpkg "github.com/palepusrinivas/guava-adminpanel-sub002/report"
)

type ReportHandler struct {
	service reportpkg.ReportService
}

func NewReportHandler(svc reportpkg.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Series serves GET /reports/:kind?timeframe=.
func (h *ReportHandler) Series() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		st, err := h.service.Series(ctx, reportpkg.Kind(c.Param("kind")), c.Query("timeframe"))
		respondList(c, st, err)
	}
}
