package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnsupportedMethod is returned when a route declares an HTTP method
// outside the set a controller may register.
var ErrUnsupportedMethod = errors.New("routes: unsupported HTTP method")

// Method is an HTTP verb a route can be registered under.
type Method string

// Supported methods. Values match the net/http constants.
const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodPatch   Method = http.MethodPatch
	MethodDelete  Method = http.MethodDelete
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
)

// ParseMethod converts a case-insensitive verb into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(s))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate reports whether m is a supported method.
func (m Method) Validate() error {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead, MethodOptions:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, string(m))
	}
}

func (m Method) String() string {
	return string(m)
}
