package routes_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExAtom/futar-backend/internal/routes"
	"github.com/ExAtom/futar-backend/pkg/logging"
	pkgroutes "github.com/ExAtom/futar-backend/pkg/routes"
)

func controller(name string, rs ...pkgroutes.Route) pkgroutes.Controller {
	return pkgroutes.Controller{Name: name, Routes: rs}
}

func TestRegister_PreservesOrder(t *testing.T) {
	sys := routes.New(logging.Discard())

	require.NoError(t, sys.Register(controller("DíjController"), controller("KiszállításController")))
	require.NoError(t, sys.Register(controller("UserController")))

	var names []string
	for _, c := range sys.Controllers() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"DíjController", "KiszállításController", "UserController"}, names)
}

func TestRegister_UnsupportedMethodRejectsCall(t *testing.T) {
	sys := routes.New(logging.Discard())

	err := sys.Register(
		controller("DíjController", pkgroutes.Route{Method: pkgroutes.MethodGet, Pattern: "/dij", Handler: "getAllDíj"}),
		controller("UserController", pkgroutes.Route{Method: "purge", Pattern: "/users", Handler: "purgeUsers"}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgroutes.ErrUnsupportedMethod)
	assert.Empty(t, sys.Controllers())
}

func TestRegister_WarnsOnVariableMismatch(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)
	sys := routes.New(log)

	err := sys.Register(controller("DíjController",
		pkgroutes.Route{Method: pkgroutes.MethodGet, Pattern: "/dij/:id", Handler: "getDíjById"},
		pkgroutes.Route{
			Method:    pkgroutes.MethodDelete,
			Pattern:   "/dij/:id",
			Handler:   "deleteDíj",
			Variables: []pkgroutes.Variable{{Value: "1", Description: "Díj ID-ja amit törlünk"}},
		},
	))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "path variable docs do not match path tokens")
	assert.Contains(t, out, "getDíjById")
	assert.NotContains(t, out, "deleteDíj")
}

func TestControllers_ReturnsCopy(t *testing.T) {
	sys := routes.New(logging.Discard())
	require.NoError(t, sys.Register(controller("DíjController")))

	got := sys.Controllers()
	got[0].Name = "Mutated"

	assert.Equal(t, "DíjController", sys.Controllers()[0].Name)
}
