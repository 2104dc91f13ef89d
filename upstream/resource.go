package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Resource is a REST collection on the backend, e.g. /api/admin/coupons.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a collection path to the client.
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

// Path returns the collection path.
func (r *Resource[T]) Path() string { return r.path }

// List issues one GET and normalizes the response shape.
func (r *Resource[T]) List(ctx context.Context, q Query) (Page[T], error) {
	var raw json.RawMessage
	if err := r.client.Do(ctx, http.MethodGet, r.path, q.Values(), nil, &raw); err != nil {
		return Page[T]{}, err
	}
	return NormalizeList[T](raw)
}

// Get fetches one element.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a payload to the collection.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPost, r.path, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces one element.
func (r *Resource[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one element.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

// Action fires PATCH {path}/{id}/{verb}, the backend-owned state transitions
// (enable, disable, dispatch, cancel, approve, reject).
func (r *Resource[T]) Action(ctx context.Context, id, verb string, body any) error {
	return r.client.Do(ctx, http.MethodPatch, r.itemPath(id)+"/"+verb, nil, body, nil)
}

// Upload posts a multipart body to {path}/{id}/{sub}.
func (r *Resource[T]) Upload(ctx context.Context, id, sub string, fields map[string]string, file File) error {
	return r.client.Upload(ctx, http.MethodPost, r.itemPath(id)+"/"+sub, fields, file, nil)
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
