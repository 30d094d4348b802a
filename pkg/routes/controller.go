package routes

import "fmt"

// Controller is the route descriptor a controller exposes: a stable
// name and its routes in declaration order.
type Controller struct {
	Name        string
	Description string
	Routes      []Route
}

// NewController builds a Controller and fails fast when any route
// declares an unsupported method.
func NewController(name, description string, routes ...Route) (Controller, error) {
	c := Controller{
		Name:        name,
		Description: description,
		Routes:      routes,
	}
	if err := c.Validate(); err != nil {
		return Controller{}, err
	}
	return c, nil
}

// Validate checks every route method.
func (c Controller) Validate() error {
	for i, r := range c.Routes {
		if err := r.Method.Validate(); err != nil {
			return fmt.Errorf("controller %s: route %d (%s %s): %w", c.Name, i, r.Handler, r.Pattern, err)
		}
	}
	return nil
}
