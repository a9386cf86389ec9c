package sdk

import "fmt"

// Pagination mirrors the server's list envelope metadata.
type Pagination struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
	Count  int   `json:"count"`
}

// ListResponse is the server's list envelope.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// APIError is a non-2xx response from the server. Body holds the raw
// response payload.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.Body)
}

// NetworkError means no response was received at all, as opposed to the
// server answering with a failure status.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network Error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
