package authentication

import "github.com/ExAtom/futar-backend/pkg/routes"

const path = "/auth"

// Controller returns the authentication controller descriptor.
func Controller() (routes.Controller, error) {
	return routes.NewController("AuthenticationController", "Regisztráció, be- és kijelentkezés",
		routes.Route{
			Method:  routes.MethodPost,
			Pattern: path + "/register",
			Handler: "registration",
			Body:    ExampleRegistration,
		},
		routes.Route{
			Method:  routes.MethodPost,
			Pattern: path + "/login",
			Handler: "login",
			Body:    ExampleLogIn,
		},
		routes.Route{
			Method:  routes.MethodPost,
			Pattern: path + "/autologin",
			Handler: "autoLogin",
		},
		routes.Route{
			Method:  routes.MethodPost,
			Pattern: path + "/logout",
			Handler: "logOut",
		},
	)
}
