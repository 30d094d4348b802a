// Package routes provides the controller registry the collection compiler reads from.
package routes

import (
	"fmt"
	"log/slog"
	"slices"

	pkgroutes "github.com/ExAtom/futar-backend/pkg/routes"
)

type routes struct {
	controllers []pkgroutes.Controller
	logger      *slog.Logger
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger) pkgroutes.System {
	return &routes{
		logger:      logger.With("system", "routes"),
		controllers: []pkgroutes.Controller{},
	}
}

// Register validates and appends controllers in order. An unsupported
// method rejects the whole call; nothing from it is registered.
func (r *routes) Register(controllers ...pkgroutes.Controller) error {
	for _, c := range controllers {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("register: %w", err)
		}
	}

	for _, c := range controllers {
		r.warnMismatches(c)
		r.controllers = append(r.controllers, c)
		r.logger.Debug("controller registered", "controller", c.Name, "routes", len(c.Routes))
	}
	return nil
}

// Controllers returns the registered controllers in registration order.
func (r *routes) Controllers() []pkgroutes.Controller {
	return slices.Clone(r.controllers)
}

func (r *routes) warnMismatches(c pkgroutes.Controller) {
	for _, route := range c.Routes {
		tokens := route.Tokens()
		if len(tokens) == len(route.Variables) {
			continue
		}
		r.logger.Warn("path variable docs do not match path tokens",
			"controller", c.Name,
			"handler", route.Handler,
			"pattern", route.Pattern,
			"tokens", len(tokens),
			"docs", len(route.Variables),
		)
	}
}
