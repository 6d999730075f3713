package model

// City is a single entry of the city directory.
type City struct {
	// ID is the unique identifier assigned by the backend
	ID int `json:"id"`

	// Name is the display name of the city
	Name string `json:"name"`

	// State is the state or region the city belongs to
	State string `json:"state"`

	// Population is kept as the backend sends it and is never parsed
	Population string `json:"population"`
}
