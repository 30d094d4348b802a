// Package authentication declares the authentication controller routes.
package authentication

import "github.com/ExAtom/futar-backend/internal/users"

// LogIn is the credential payload of a login request.
type LogIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExampleLogIn is the sample login payload.
var ExampleLogIn = LogIn{
	Email:    "student001@jedlik.eu",
	Password: "student001",
}

// ExampleRegistration is the sample registration payload. Registration
// accepts a full user document; its storage ids are assigned by the server.
var ExampleRegistration = users.Example
