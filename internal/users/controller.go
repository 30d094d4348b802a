package users

import (
	"github.com/ExAtom/futar-backend/pkg/pagination"
	"github.com/ExAtom/futar-backend/pkg/routes"
)

const path = "/users"

// Controller returns the user controller descriptor.
func Controller() (routes.Controller, error) {
	return routes.NewController("UserController", "Felhasználók kezelése",
		routes.Route{
			Method:  routes.MethodGet,
			Pattern: path,
			Handler: "getAllUsers",
		},
		routes.Route{
			Method:    routes.MethodGet,
			Pattern:   path + "/:id",
			Handler:   "getUserById",
			Variables: []routes.Variable{{Value: "61dc03c0e397a1e9cf988b37", Description: "Felhasználó ID-ja amit lekérünk"}},
		},
		pagination.Route(path, "getPaginatedUsers", pagination.Request{Order: "name"}),
		routes.Route{
			Method:    routes.MethodPatch,
			Pattern:   path + "/:id",
			Handler:   "modifyUser",
			Variables: []routes.Variable{{Value: "61dc03c0e397a1e9cf988b37", Description: "Felhasználó ID-ja amit módosítunk"}},
			Body:      Example,
		},
		routes.Route{
			Method:    routes.MethodDelete,
			Pattern:   path + "/:id",
			Handler:   "deleteUser",
			Variables: []routes.Variable{{Value: "61dc03c0e397a1e9cf988b37", Description: "Felhasználó ID-ja amit törlünk"}},
		},
	)
}
