// Package dto provides data transfer objects for HTTP API.
package dto

import (
	"shopledger/internal/core/apperror"
	"shopledger/internal/core/id"
)

// ListResponse wraps list results.
type ListResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

// NewListResponse wraps items, never rendering a null array.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, TotalCount: len(items)}
}

// ErrorResponse mirrors the JSON rendered by middleware.ErrorHandler.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// parseRef turns an optional string ID into a reference.
// Empty means no reference.
func parseRef(field, s string) (id.Ref, error) {
	if s == "" {
		return nil, nil
	}
	v, err := id.Parse(s)
	if err != nil {
		return nil, apperror.NewValidation("invalid id format").
			WithDetail("field", field).
			WithDetail("value", s)
	}
	return id.NewRef(v), nil
}

// parseID parses a required string ID.
func parseID(field, s string) (id.ID, error) {
	v, err := id.Parse(s)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id format").
			WithDetail("field", field).
			WithDetail("value", s)
	}
	return v, nil
}
