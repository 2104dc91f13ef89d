package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
)

type AuthHandler struct {
	service authpkg.Service
}

func NewAuthHandler(svc authpkg.Service) *AuthHandler { return &AuthHandler{service: svc} }

// Login authenticates against the backend. The lockout is keyed by client IP.
func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authpkg.LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		req.ClientKey = c.ClientIP()
		ctx, cancel := withTimeout(c)
		defer cancel()
		principal, err := h.service.Login(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": principal})
	}
}

// Logout deletes the caller's session. It runs behind RequireSession.
func (h *AuthHandler) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := h.service.Logout(ctx, c.GetString("session_id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Lockout reports the caller's lockout state so the login page can disable the form.
func (h *AuthHandler) Lockout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		st, err := h.service.LockoutStatus(ctx, c.ClientIP())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}
