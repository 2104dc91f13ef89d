package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	settingspkg "github.com/palepusrinivas/guava-adminpanel-sub002/settings"
)

type SettingsHandler struct {
	service settingspkg.SettingsService
}

func NewSettingsHandler(svc settingspkg.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

func (h *SettingsHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		s, err := h.service.Get(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func (h *SettingsHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f settingspkg.SettingsForm
		if !bindJSON(c, &f) {
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		s, err := h.service.Update(ctx, f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// UploadLogo accepts the multipart field "logo".
func (h *SettingsHandler) UploadLogo() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := fileFromForm(c, "logo", form.MaxLogoSize)
		if err != nil {
			respondError(c, err)
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		s, err := h.service.UploadLogo(ctx, file)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
