// Package postman compiles controller route descriptors into an importable
// Postman v2.1 collection: one folder per controller, one request per route.
package postman

// SchemaURL identifies the collection format.
const SchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection is the root collection document.
type Collection struct {
	Info Info     `json:"info"`
	Item []Folder `json:"item"`
}

// Info provides collection metadata.
type Info struct {
	PostmanID string `json:"_postman_id,omitempty"`
	Name      string `json:"name"`
	Schema    string `json:"schema"`
}

// Folder groups the requests of a single controller.
type Folder struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Item        []Item `json:"item"`
}

// Item is a single example request.
type Item struct {
	Name     string     `json:"name"`
	Request  Request    `json:"request"`
	Response []Response `json:"response"`
}

// Request describes the method, body and URL of an example request.
type Request struct {
	Method      string   `json:"method"`
	Header      []Header `json:"header"`
	Body        Body     `json:"body"`
	URL         URL      `json:"url"`
	Description string   `json:"description,omitempty"`
}

// Header is a request header. Compiled requests carry none.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Body holds a raw request payload.
type Body struct {
	Mode    string      `json:"mode"`
	Raw     string      `json:"raw"`
	Options BodyOptions `json:"options"`
}

// BodyOptions carries editor hints for the body.
type BodyOptions struct {
	Raw RawOptions `json:"raw"`
}

// RawOptions sets the syntax language of a raw body.
type RawOptions struct {
	Language string `json:"language"`
}

// URL is the structured form of a request URL.
type URL struct {
	Raw      string     `json:"raw"`
	Protocol string     `json:"protocol"`
	Host     []string   `json:"host"`
	Port     string     `json:"port"`
	Path     []string   `json:"path"`
	Variable []Variable `json:"variable"`
}

// Variable is a bound path variable. Key is empty when no path token
// could be resolved for the position.
type Variable struct {
	Key         string `json:"key,omitempty"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Response is a saved example response. Compiled items carry none.
type Response struct {
	Name string `json:"name"`
}
