package api

import (
	"github.com/gin-gonic/gin"

	zonepkg "github.com/palepusrinivas/guava-adminpanel-sub002/zone"
)

// ZoneOptions serves the fare form's zone dropdown from the UUID zone model.
func ZoneOptions(svc zonepkg.ZoneService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		st, err := svc.ListV2(ctx)
		respondList(c, st, err)
	}
}
