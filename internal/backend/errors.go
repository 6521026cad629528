package backend

import (
	"errors"
	"net/http"
)

// StatusError describes a non-2xx response from the backend.
type StatusError struct {
	Code    int
	Method  string
	URL     string
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}
