// Package pagination describes the offset/limit route shape shared by the
// paginated list endpoints.
package pagination

import (
	"strconv"

	"github.com/ExAtom/futar-backend/pkg/routes"
)

// Segments is appended to a controller base path to form a paginated route.
// The trailing keyword is optional.
const Segments = "/:offset/:limit/:order/:sort/:keyword?"

// Sort directions accepted by the sort segment.
const (
	Ascending  = 1
	Descending = -1
)

// DefaultLimit is the page size shown in example requests.
const DefaultLimit = 10

// Request holds the example values of a paginated route.
type Request struct {
	Offset  int
	Limit   int
	Order   string
	Sort    int
	Keyword string
}

// Normalize adjusts the request to valid pagination values.
func (r *Request) Normalize() {
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.Limit < 1 {
		r.Limit = DefaultLimit
	}
	if r.Sort != Descending {
		r.Sort = Ascending
	}
}

// Variables returns the positional variable docs for Segments.
func (r Request) Variables() []routes.Variable {
	r.Normalize()
	return []routes.Variable{
		{Value: strconv.Itoa(r.Offset), Description: "Hányadik rekordtól kezdjük?"},
		{Value: strconv.Itoa(r.Limit), Description: "Lekért rekordok száma"},
		{Value: r.Order, Description: "Melyik mező szerint rendezzük?"},
		{Value: strconv.Itoa(r.Sort), Description: "1: növekvő, -1: csökkenő"},
		{Value: r.Keyword, Description: "Keresési kulcsszó"},
	}
}

// Route builds the GET descriptor of a paginated list endpoint under base.
func Route(base, handler string, r Request) routes.Route {
	return routes.Route{
		Method:    routes.MethodGet,
		Pattern:   base + Segments,
		Handler:   handler,
		Variables: r.Variables(),
	}
}
