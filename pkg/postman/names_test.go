package postman_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ExAtom/futar-backend/pkg/postman"
)

func TestRequestName(t *testing.T) {
	tests := []struct {
		handler string
		want    string
	}{
		{"getDíjById", "Get Díj By Id"},
		{"createDíj", "Create Díj"},
		{"x", "X"},
		{"", ""},
		{"getAllDíj", "Get All Díj"},
		{"getPaginatedDíjak", "Get Paginated Díjak"},
		{"logOut", "Log Out"},
		{"getÉrték", "Get Érték"},
		{"HTTPStatus", "HTTPStatus"},
		{"getHTTPStatus", "Get HTTPStatus"},
		{"xY", "X Y"},
		{"xCoord", "X Coord"},
		{"éKód", "É Kód"},
		{"already Spaced", "Already Spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.handler, func(t *testing.T) {
			assert.Equal(t, tt.want, postman.RequestName(tt.handler))
		})
	}
}

func TestRequestName_Deterministic(t *testing.T) {
	first := postman.RequestName("getPaginatedKiszállítások")
	for range 10 {
		assert.Equal(t, first, postman.RequestName("getPaginatedKiszállítások"))
	}
}

func TestFolderName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"DíjController", "Díj"},
		{"UserController", "User"},
		{"Authentication", "Authentication"},
		{"ControllerRegistryController", "ControllerRegistry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postman.FolderName(tt.name))
		})
	}
}
