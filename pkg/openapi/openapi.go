// Package openapi exports the controller route registry as an OpenAPI 3
// document, reusing the collection compiler's naming, binding and body
// redaction rules so both artifacts describe the same requests.
package openapi

import (
	"encoding/json"
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"

	"github.com/ExAtom/futar-backend/pkg/postman"
	"github.com/ExAtom/futar-backend/pkg/routes"
)

const Version = "3.0.3"

var pathToken = regexp.MustCompile(`:([a-z]+)`)

// Generate builds an OpenAPI document from the controllers. Servers point
// at the same origin as the Postman collection.
func Generate(cfg *Config, col *postman.Config, controllers []routes.Controller) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     cfg.Version,
		},
		Servers: openapi3.Servers{{URL: col.Origin()}},
		Paths:   openapi3.NewPaths(),
	}

	for _, c := range controllers {
		tag := postman.FolderName(c.Name)
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: tag, Description: c.Description})

		for _, r := range c.Routes {
			op, err := operation(col, tag, r)
			if err != nil {
				return nil, errors.Wrapf(err, "controller '%v'", c.Name)
			}

			path := Path(r)
			item := doc.Paths.Value(path)
			if item == nil {
				item = &openapi3.PathItem{}
				doc.Paths.Set(path, item)
			}
			item.SetOperation(r.Method.String(), op)
		}
	}

	return doc, nil
}

// Path converts a route pattern into an OpenAPI path template.
//
//	/dij/:offset/:keyword? -> /dij/{offset}/{keyword}
func Path(r routes.Route) string {
	return pathToken.ReplaceAllString(r.Path(), "{$1}")
}

// MarshalJSON serializes the document with two-space indentation.
func MarshalJSON(doc *openapi3.T) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshalling openapi document")
	}
	return data, nil
}

func operation(col *postman.Config, tag string, r routes.Route) (*openapi3.Operation, error) {
	op := openapi3.NewOperation()
	op.Summary = postman.RequestName(r.Handler)
	op.Description = r.Description
	op.OperationID = r.Handler
	op.Tags = []string{tag}

	// Every token must be declared; docs still bind by position.
	for i, token := range r.Tokens() {
		p := openapi3.NewPathParameter(token).WithSchema(openapi3.NewStringSchema())
		if i < len(r.Variables) {
			p.Description = r.Variables[i].Description
			p.Example = r.Variables[i].Value
		}
		op.AddParameter(p)
	}

	if r.Body != nil {
		body, err := requestBody(col, r)
		if err != nil {
			return nil, errors.Wrapf(err, "handler '%v'", r.Handler)
		}
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("OK")}),
	)
	return op, nil
}

func requestBody(col *postman.Config, r routes.Route) (*openapi3.RequestBody, error) {
	raw, err := postman.RedactBody(r.Body, col.RedactField)
	if err != nil {
		return nil, err
	}

	var example any
	if err := json.Unmarshal([]byte(raw), &example); err != nil {
		return nil, errors.Wrap(err, "decoding redacted example")
	}

	content := openapi3.NewContentWithJSONSchema(openapi3.NewObjectSchema())
	content.Get("application/json").Example = example

	return openapi3.NewRequestBody().WithRequired(true).WithContent(content), nil
}
