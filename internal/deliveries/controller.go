package deliveries

import (
	"github.com/ExAtom/futar-backend/pkg/pagination"
	"github.com/ExAtom/futar-backend/pkg/routes"
)

const path = "/kiszallitas"

// Controller returns the delivery controller descriptor.
func Controller() (routes.Controller, error) {
	return routes.NewController("KiszállításController", "Kiszállítások nyilvántartása",
		routes.Route{
			Method:  routes.MethodGet,
			Pattern: path,
			Handler: "getAllKiszállítás",
		},
		routes.Route{
			Method:    routes.MethodGet,
			Pattern:   path + "/:id",
			Handler:   "getKiszállításById",
			Variables: []routes.Variable{{Value: "1", Description: "Kiszállítás ID-ja amit lekérünk"}},
		},
		pagination.Route(path, "getPaginatedKiszállítások", pagination.Request{Order: "megtettKm", Sort: pagination.Descending}),
		routes.Route{
			Method:    routes.MethodPatch,
			Pattern:   path + "/:id",
			Handler:   "modifyKiszállítás",
			Variables: []routes.Variable{{Value: "1", Description: "Kiszállítás ID-ja amit módosítunk"}},
			Body:      Example,
		},
		routes.Route{
			Method:    routes.MethodDelete,
			Pattern:   path + "/:id",
			Handler:   "deleteKiszállítás",
			Variables: []routes.Variable{{Value: "1", Description: "Kiszállítás ID-ja amit törlünk"}},
		},
		routes.Route{
			Method:  routes.MethodPost,
			Pattern: path,
			Handler: "createKiszállítás",
			Body:    Example,
		},
	)
}
