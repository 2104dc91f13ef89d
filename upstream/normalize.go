package upstream

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

// Query is a paginated, filtered list request.
type Query struct {
	Page   int
	Size   int
	Params map[string]string
}

// Values renders q as URL query parameters. Empty params are skipped.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Size > 0 {
		v.Set("page", strconv.Itoa(q.Page))
		v.Set("size", strconv.Itoa(q.Size))
	}
	for k, val := range q.Params {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Page is a normalized list response.
type Page[T any] struct {
	Items         []T `json:"items"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

type envelope struct {
	Content       json.RawMessage `json:"content"`
	Data          json.RawMessage `json:"data"`
	TotalElements *int            `json:"totalElements"`
	TotalPages    *int            `json:"totalPages"`
	Number        *int            `json:"number"`
}

// NormalizeList flattens the list shapes the backend returns: a bare array,
// a Spring page {content, totalElements, totalPages, number}, or {data: [...]}.
// Anything else yields an empty page.
func NormalizeList[T any](raw []byte) (Page[T], error) {
	raw = bytes.TrimSpace(raw)
	page := Page[T]{Items: []T{}}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return page, nil
	}

	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &page.Items); err != nil {
			return page, err
		}
		page.TotalElements = len(page.Items)
		page.TotalPages = 1
		return page, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return page, err
	}
	list := env.Content
	if !isArray(list) {
		list = env.Data
	}
	if isArray(list) {
		if err := json.Unmarshal(list, &page.Items); err != nil {
			return page, err
		}
	} else if isObject(env.Data) {
		// {data: {content: [...]}} wraps a page in a data envelope.
		return NormalizeList[T](env.Data)
	}

	page.TotalElements = len(page.Items)
	page.TotalPages = 1
	if env.TotalElements != nil {
		page.TotalElements = *env.TotalElements
	}
	if env.TotalPages != nil {
		page.TotalPages = *env.TotalPages
	}
	if env.Number != nil {
		page.Number = *env.Number
	}
	return page, nil
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
