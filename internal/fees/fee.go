// Package fees declares the delivery fee (díj) controller routes.
package fees

// Fee is a distance-banded delivery fee.
type Fee struct {
	ID     int `json:"_id"`
	MinKm  int `json:"minKm"`
	MaxKm  int `json:"maxKm"`
	Amount int `json:"összeg"`
}

// Example is the sample payload for create and modify requests.
var Example = Fee{
	ID:     1,
	MinKm:  0,
	MaxKm:  5,
	Amount: 1000,
}
