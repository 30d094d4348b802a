package postman

import "fmt"

const collectionIndent = "  "

// MarshalJSON serializes a collection with two-space indentation.
// Output is identical for structurally equal collections.
func MarshalJSON(c *Collection) ([]byte, error) {
	data, err := encode(c, collectionIndent)
	if err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}
	return data, nil
}
