// Package users declares the user controller routes.
package users

// Address is embedded in a user document and carries its own storage id.
type Address struct {
	ID     string `json:"_id"`
	Zip    int    `json:"zip"`
	City   string `json:"city"`
	Street string `json:"street"`
}

// User is a registered account.
type User struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
	Address  Address  `json:"address"`
}

// Example is the sample payload for modify and registration requests.
var Example = User{
	ID:       "61dc03c0e397a1e9cf988b37",
	Name:     "Minta Béla",
	Email:    "student001@jedlik.eu",
	Password: "student001",
	Roles:    []string{"user"},
	Address: Address{
		ID:     "61dc03c0e397a1e9cf988b38",
		Zip:    9021,
		City:   "Győr",
		Street: "Szent István út 7.",
	},
}
