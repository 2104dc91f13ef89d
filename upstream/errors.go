package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnreachable is returned when no response came back from the backend.
var ErrUnreachable = errors.New("unable to reach server, check your connection")

// NotImplementedMessage is shown for endpoints the backend does not serve yet.
const NotImplementedMessage = "this feature requires backend API implementation"

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// IsNotImplemented reports whether err is a placeholder status (404, 500, 501)
// that the console treats as "endpoint not built yet" rather than a failure.
func IsNotImplemented(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Status {
	case http.StatusNotFound, http.StatusInternalServerError, http.StatusNotImplemented:
		return true
	}
	return false
}

// Message renders err the way the console shows it to an admin.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrUnreachable) {
		return ErrUnreachable.Error()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// decodeError builds an APIError from a response body shaped {error} or {message}.
func decodeError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		msg = strings.TrimSpace(payload.Error)
		if msg == "" {
			msg = strings.TrimSpace(payload.Message)
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
