package postman

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ExAtom/futar-backend/pkg/routes"
)

// Compile builds a collection from controller descriptors. Folders follow
// controller order and items follow route declaration order. Compile does
// not mutate its inputs and allocates a fresh document on every call.
func Compile(cfg *Config, controllers []routes.Controller) (*Collection, error) {
	folders := make([]Folder, 0, len(controllers))
	for _, c := range controllers {
		f, err := compileFolder(cfg, c)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}

	info := Info{
		Name:   cfg.Name,
		Schema: SchemaURL,
	}
	if cfg.StampID {
		info.PostmanID = CollectionID(cfg.Name)
	}

	return &Collection{
		Info: info,
		Item: folders,
	}, nil
}

// Generate compiles the controllers and returns the serialized collection.
func Generate(cfg *Config, controllers []routes.Controller) ([]byte, error) {
	c, err := Compile(cfg, controllers)
	if err != nil {
		return nil, err
	}
	return MarshalJSON(c)
}

// CollectionID derives a stable collection id from its name, so that
// re-imports update the existing collection instead of duplicating it.
func CollectionID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(SchemaURL+"#"+name)).String()
}

func compileFolder(cfg *Config, c routes.Controller) (Folder, error) {
	items := make([]Item, 0, len(c.Routes))
	for _, r := range c.Routes {
		item, err := compileItem(cfg, r)
		if err != nil {
			return Folder{}, fmt.Errorf("controller %s: %w", c.Name, err)
		}
		items = append(items, item)
	}

	return Folder{
		Name:        FolderName(c.Name),
		Description: c.Description,
		Item:        items,
	}, nil
}

func compileItem(cfg *Config, r routes.Route) (Item, error) {
	raw, err := RedactBody(r.Body, cfg.RedactField)
	if err != nil {
		return Item{}, fmt.Errorf("handler %s: %w", r.Handler, err)
	}

	path := r.Path()

	return Item{
		Name: RequestName(r.Handler),
		Request: Request{
			Method: r.Method.String(),
			Header: []Header{},
			Body: Body{
				Mode: "raw",
				Raw:  raw,
				Options: BodyOptions{
					Raw: RawOptions{Language: "json"},
				},
			},
			URL: URL{
				Raw:      cfg.Origin() + path,
				Protocol: cfg.Protocol,
				Host:     []string{cfg.Host},
				Port:     cfg.Port,
				Path:     strings.Split(path, "/"),
				Variable: BindVariables(r),
			},
			Description: r.Description,
		},
		Response: []Response{},
	}, nil
}
