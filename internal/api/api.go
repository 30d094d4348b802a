// Package api assembles the controllers of the Futár backend in their
// registration order.
package api

import (
	"fmt"

	"github.com/ExAtom/futar-backend/internal/authentication"
	"github.com/ExAtom/futar-backend/internal/deliveries"
	"github.com/ExAtom/futar-backend/internal/fees"
	"github.com/ExAtom/futar-backend/internal/users"
	"github.com/ExAtom/futar-backend/pkg/routes"
)

var constructors = []func() (routes.Controller, error){
	fees.Controller,
	deliveries.Controller,
	users.Controller,
	authentication.Controller,
}

// Controllers constructs every controller. Construction stops at the
// first invalid controller.
func Controllers() ([]routes.Controller, error) {
	cs := make([]routes.Controller, 0, len(constructors))
	for _, construct := range constructors {
		c, err := construct()
		if err != nil {
			return nil, fmt.Errorf("construct controller: %w", err)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// Register constructs every controller and registers them with sys.
func Register(sys routes.System) error {
	cs, err := Controllers()
	if err != nil {
		return err
	}
	return sys.Register(cs...)
}
