package fees

import (
	"github.com/ExAtom/futar-backend/pkg/pagination"
	"github.com/ExAtom/futar-backend/pkg/routes"
)

const path = "/dij"

// Controller returns the fee controller descriptor.
func Controller() (routes.Controller, error) {
	paginated := pagination.Route(path, "getPaginatedDíjak", pagination.Request{Order: "összeg"})
	paginated.Description = "Díjak lapozva, rendezve és kulcsszóra szűrve"

	return routes.NewController("DíjController", "Kiszállítási díjak kezelése",
		routes.Route{
			Method:      routes.MethodGet,
			Pattern:     path,
			Handler:     "getAllDíj",
			Description: "Összes díjsáv lekérése",
		},
		routes.Route{
			Method:      routes.MethodGet,
			Pattern:     path + "/:id",
			Handler:     "getDíjById",
			Description: "Egy díjsáv lekérése ID alapján",
			Variables:   []routes.Variable{{Value: "1", Description: "Díj ID-ja amit lekérünk"}},
		},
		paginated,
		routes.Route{
			Method:      routes.MethodPatch,
			Pattern:     path + "/:id",
			Handler:     "modifyDíj",
			Description: "Díjsáv módosítása",
			Variables:   []routes.Variable{{Value: "1", Description: "Díj ID-ja amit módosítunk"}},
			Body:        Example,
		},
		routes.Route{
			Method:      routes.MethodDelete,
			Pattern:     path + "/:id",
			Handler:     "deleteDíj",
			Description: "Díjsáv törlése",
			Variables:   []routes.Variable{{Value: "1", Description: "Díj ID-ja amit törlünk"}},
		},
		routes.Route{
			Method:      routes.MethodPost,
			Pattern:     path,
			Handler:     "createDíj",
			Description: "Új díjsáv felvétele",
			Body:        Example,
		},
	)
}
