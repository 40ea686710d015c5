package api

import "fmt"

// Error is the normalized transport failure for any non-2xx response.
// Message prefers the server-supplied JSON "message" field, falling back to
// the HTTP status text, then to a generic string. Code is optional and
// server-defined; Status is the numeric HTTP status.
type Error struct {
	Message string
	Code    string
	Status  int
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (code=%s, status=%d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("api: %s (status=%d)", e.Message, e.Status)
}
