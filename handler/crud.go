package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// The per-operation interfaces below are satisfied by the domain services;
// a screen wires only the operations it offers.

type lister[T any] interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[T], error)
}

type creator[F, T any] interface {
	Create(ctx context.Context, f F) (*T, error)
}

type updater[F, T any] interface {
	Update(ctx context.Context, id string, f F) (*T, error)
}

type toggler interface {
	SetActive(ctx context.Context, id string, active bool) error
}

type deleter interface {
	Delete(ctx context.Context, id string) error
}

// ListHandler serves GET /<resource>.
func ListHandler[T any](svc lister[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		st, err := svc.List(ctx, listParams(c))
		respondList(c, st, err)
	}
}

// CreateHandler serves POST /<resource>.
func CreateHandler[F, T any](svc creator[F, T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f F
		if !bindJSON(c, &f) {
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		created, err := svc.Create(ctx, f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateHandler serves PUT /<resource>/:id.
func UpdateHandler[F, T any](svc updater[F, T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f F
		if !bindJSON(c, &f) {
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		updated, err := svc.Update(ctx, c.Param("id"), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

type statusPayload struct {
	Active *bool `json:"active" binding:"required"`
}

// StatusHandler serves PATCH /<resource>/:id/status {active}.
func StatusHandler(svc toggler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p statusPayload
		if !bindJSON(c, &p) {
			return
		}
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := svc.SetActive(ctx, c.Param("id"), *p.Active); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": *p.Active})
	}
}

// DeleteHandler serves DELETE /<resource>/:id. Routes put RequireConfirm in front.
func DeleteHandler(svc deleter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c)
		defer cancel()
		if err := svc.Delete(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
