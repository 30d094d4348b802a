package routes

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`:[a-z]+`)

// Variable documents one path variable. Variables bind to path tokens
// by position, not by name.
type Variable struct {
	Value       string
	Description string
}

// Route describes a single declared endpoint.
//
// Pattern uses :name tokens for path parameters; a trailing ? marks the
// parameter optional for the serving router and carries no other meaning.
// Handler is the handler identity (conventionally camelCase) and is only
// ever read as a string. Body is an optional example request payload.
type Route struct {
	Method      Method
	Pattern     string
	Handler     string
	Description string
	Variables   []Variable
	Body        any
}

// Path returns the pattern with optional-parameter markers removed.
func (r Route) Path() string {
	return strings.ReplaceAll(r.Pattern, "?", "")
}

// Tokens returns the path parameter names in declaration order.
// Only a colon followed by lowercase ASCII letters is recognized.
func (r Route) Tokens() []string {
	matches := tokenPattern.FindAllString(r.Path(), -1)
	tokens := make([]string, len(matches))
	for i, m := range matches {
		tokens[i] = strings.TrimPrefix(m, ":")
	}
	return tokens
}
