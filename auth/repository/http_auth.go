package repository

import (
	"context"
	"errors"
	"net/http"
	"strings"

	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const loginPath = "/api/admin/auth/login"

// UpstreamAuthenticator logs admins in against the backend.
type UpstreamAuthenticator struct {
	client *upstream.Client
}

func NewUpstreamAuthenticator(client *upstream.Client) authpkg.Authenticator {
	return &UpstreamAuthenticator{client: client}
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	JWT         string `json:"jwt"`
}

// Authenticate returns the upstream token. Credential rejections map to
// auth.ErrInvalidCredentials; other errors pass through.
func (a *UpstreamAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := a.client.Do(ctx, http.MethodPost, loginPath, nil, body, &resp); err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				return "", authpkg.ErrInvalidCredentials
			}
		}
		return "", err
	}
	for _, t := range []string{resp.Token, resp.AccessToken, resp.JWT} {
		if t = strings.TrimSpace(t); t != "" {
			return t, nil
		}
	}
	return "", errors.New("login response carried no token")
}
