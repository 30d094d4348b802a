// Package routes defines the route descriptor model controllers expose
// and the registry contract that collects them.
package routes

// System defines the interface for controller registration.
// Implementations preserve registration order.
type System interface {
	Register(controllers ...Controller) error
	Controllers() []Controller
}
