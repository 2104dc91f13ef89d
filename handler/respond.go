package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

// requestTimeout bounds a handler's work, upstream calls included.
const requestTimeout = 20 * time.Second

func withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// errorStatus maps an error to the HTTP status the console answers with.
func errorStatus(err error) int {
	var apiErr *upstream.APIError
	var locked *authpkg.LockedError
	switch {
	case errors.As(err, new(*form.ValidationError)):
		return http.StatusUnprocessableEntity
	case errors.Is(err, resource.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.As(err, &locked), errors.Is(err, authpkg.ErrLockedOut):
		return http.StatusLocked
	case errors.Is(err, authpkg.ErrInvalidCredentials), errors.Is(err, authpkg.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, form.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, form.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, upstream.ErrUnreachable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &apiErr):
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// errorBody renders err as {"error": msg, ...}.
func errorBody(err error) gin.H {
	body := gin.H{"error": errorMessage(err)}
	if ve, ok := form.AsValidation(err); ok {
		body["error"] = "validation failed"
		body["fields"] = ve.Fields
	}
	var locked *authpkg.LockedError
	if errors.As(err, &locked) {
		body["locked_until"] = locked.Until
	}
	return body
}

func errorMessage(err error) string {
	if upstream.IsNotImplemented(err) {
		return upstream.NotImplementedMessage
	}
	return upstream.Message(err)
}

func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, errorBody(err))
}

// respondList answers a list request. A failed fetch still carries the state,
// whose error field holds the banner text.
func respondList[T any](c *gin.Context, st resource.State[T], err error) {
	if err != nil {
		if _, ok := form.AsValidation(err); ok {
			respondError(c, err)
			return
		}
		_ = c.Error(err)
		c.JSON(errorStatus(err), st)
		return
	}
	c.JSON(http.StatusOK, st)
}

// bindJSON decodes the body; validation errors raised while decoding keep their fields.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		if _, ok := form.AsValidation(err); ok {
			respondError(c, err)
			return false
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
		return false
	}
	return true
}

// listParams reads ?page=&size=&filter=&status=&search=. status is also sent
// to the backend; filter only narrows client-side.
func listParams(c *gin.Context) resource.ListParams {
	p := resource.ListParams{
		Page:   queryInt(c, "page", 0),
		Size:   queryInt(c, "size", 0),
		Filter: strings.TrimSpace(c.Query("filter")),
		Search: strings.TrimSpace(c.Query("search")),
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" && !strings.EqualFold(status, resource.TagAll) {
		p.Params = map[string]string{"status": status}
		if p.Filter == "" {
			p.Filter = status
		}
	}
	return p
}

func queryInt(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v >= 0 {
		return v
	}
	return def
}

// fileFromForm reads a multipart file field fully into memory, reading at most
// limit+1 bytes so oversize files are still reported as too large.
func fileFromForm(c *gin.Context, field string, limit int64) (upstream.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return upstream.File{}, form.Invalid(field, "is required")
	}
	f, err := fh.Open()
	if err != nil {
		return upstream.File{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return upstream.File{}, err
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "application/octet-stream" {
		ct = ""
	}
	return upstream.File{Field: field, Name: fh.Filename, ContentType: ct, Data: data}, nil
}
