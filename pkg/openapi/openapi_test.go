package openapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExAtom/futar-backend/pkg/openapi"
	"github.com/ExAtom/futar-backend/pkg/postman"
	"github.com/ExAtom/futar-backend/pkg/routes"
)

func configs(t *testing.T) (*openapi.Config, *postman.Config) {
	t.Helper()
	cfg := &openapi.Config{}
	require.NoError(t, cfg.Finalize(nil))
	col := &postman.Config{}
	require.NoError(t, col.Finalize(nil))
	return cfg, col
}

func controllers() []routes.Controller {
	return []routes.Controller{
		{
			Name:        "DíjController",
			Description: "Kiszállítási díjak",
			Routes: []routes.Route{
				{Method: routes.MethodGet, Pattern: "/dij", Handler: "getAllDíj", Description: "Összes díjsáv lekérése"},
				{
					Method:  routes.MethodGet,
					Pattern: "/dij/:offset/:limit/:keyword?",
					Handler: "getPaginatedDíjak",
					Variables: []routes.Variable{
						{Value: "0", Description: "Hányadik rekordtól kezdjük?"},
						{Value: "10", Description: "Lekért rekordok száma"},
					},
				},
				{
					Method:    routes.MethodPatch,
					Pattern:   "/dij/:id",
					Handler:   "modifyDíj",
					Variables: []routes.Variable{{Value: "1", Description: "Díj ID-ja amit módosítunk"}},
					Body:      map[string]any{"_id": 1, "összeg": 500},
				},
			},
		},
	}
}

func TestPath(t *testing.T) {
	r := routes.Route{Pattern: "/dij/:offset/:limit/:order/:sort/:keyword?"}
	assert.Equal(t, "/dij/{offset}/{limit}/{order}/{sort}/{keyword}", openapi.Path(r))
}

func TestGenerate(t *testing.T) {
	cfg, col := configs(t)

	doc, err := openapi.Generate(cfg, col, controllers())
	require.NoError(t, err)

	assert.Equal(t, openapi.Version, doc.OpenAPI)
	assert.Equal(t, "Futár API", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "http://localhost:5000", doc.Servers[0].URL)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "Díj", doc.Tags[0].Name)

	list := doc.Paths.Value("/dij")
	require.NotNil(t, list)
	require.NotNil(t, list.Get)
	assert.Equal(t, "Get All Díj", list.Get.Summary)
	assert.Equal(t, "getAllDíj", list.Get.OperationID)
	assert.Equal(t, "Összes díjsáv lekérése", list.Get.Description)
	assert.Equal(t, []string{"Díj"}, list.Get.Tags)
}

func TestGenerate_PathParameters(t *testing.T) {
	cfg, col := configs(t)

	doc, err := openapi.Generate(cfg, col, controllers())
	require.NoError(t, err)

	item := doc.Paths.Value("/dij/{offset}/{limit}/{keyword}")
	require.NotNil(t, item)
	require.NotNil(t, item.Get)

	params := item.Get.Parameters
	require.Len(t, params, 3)
	assert.Equal(t, "offset", params[0].Value.Name)
	assert.Equal(t, "path", params[0].Value.In)
	assert.True(t, params[0].Value.Required)
	assert.Equal(t, "Hányadik rekordtól kezdjük?", params[0].Value.Description)
	assert.Equal(t, "keyword", params[2].Value.Name)
	assert.Empty(t, params[2].Value.Description)
}

func TestGenerate_RequestBodyRedacted(t *testing.T) {
	cfg, col := configs(t)

	doc, err := openapi.Generate(cfg, col, controllers())
	require.NoError(t, err)

	item := doc.Paths.Value("/dij/{id}")
	require.NotNil(t, item)
	require.NotNil(t, item.Patch)
	require.NotNil(t, item.Patch.RequestBody)

	media := item.Patch.RequestBody.Value.Content.Get("application/json")
	require.NotNil(t, media)
	example, ok := media.Example.(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, example, "_id")
	assert.Equal(t, float64(500), example["összeg"])
}

func TestGenerate_Validates(t *testing.T) {
	cfg, col := configs(t)

	doc, err := openapi.Generate(cfg, col, controllers())
	require.NoError(t, err)
	assert.NoError(t, doc.Validate(context.Background()))
}

func TestMarshalJSON_Deterministic(t *testing.T) {
	cfg, col := configs(t)

	a, err := openapi.Generate(cfg, col, controllers())
	require.NoError(t, err)
	b, err := openapi.Generate(cfg, col, controllers())
	require.NoError(t, err)

	first, err := openapi.MarshalJSON(a)
	require.NoError(t, err)
	second, err := openapi.MarshalJSON(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
