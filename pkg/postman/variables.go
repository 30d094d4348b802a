package postman

import "github.com/ExAtom/futar-backend/pkg/routes"

// BindVariables pairs the route's path tokens with its variable docs by
// index. The result has one entry per token. Docs beyond the last token
// are dropped; tokens beyond the last doc keep an unresolved key.
func BindVariables(r routes.Route) []Variable {
	tokens := r.Tokens()
	vars := make([]Variable, len(tokens))

	for i, token := range tokens {
		if i >= len(r.Variables) {
			continue
		}
		vars[i] = Variable{
			Key:         token,
			Value:       r.Variables[i].Value,
			Description: r.Variables[i].Description,
		}
	}

	return vars
}
