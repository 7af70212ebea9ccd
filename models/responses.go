package models

// ListResponse wraps every collection returned by the API.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

// NewListResponse wraps items, rendering a nil slice as an empty JSON array.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items}
}

// MessageResponse is an informational reply such as the logout acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
