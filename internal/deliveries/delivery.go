// Package deliveries declares the delivery (kiszállítás) controller routes.
package deliveries

// Delivery is a completed delivery and the fee band it was charged under.
type Delivery struct {
	ID       int    `json:"_id"`
	Date     string `json:"időpont"`
	Distance int    `json:"megtettKm"`
	FeeID    int    `json:"díj"`
}

// Example is the sample payload for create and modify requests.
var Example = Delivery{
	ID:       1,
	Date:     "2023-04-12T10:30:00.000Z",
	Distance: 7,
	FeeID:    2,
}
