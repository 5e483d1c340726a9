package models

import "time"

// Person is a missing/found person report. It shares the item lifecycle shape
// but is a separate entity with no claim workflow attached.
type Person struct {
	ID              EntityID   `json:"id"`
	Name            string     `json:"name"`
	Age             int        `json:"age"`
	Guardian        Guardian   `json:"guardian"`
	Images          []Image    `json:"images"`
	Status          string     `json:"status"`
	ReportedBy      EntityID   `json:"reported_by"`
	FoundBy         *EntityID  `json:"found_by,omitempty"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	LocationAddress string     `json:"location_address,omitempty"`
	DateReported    time.Time  `json:"date_reported"`
	DateFound       *time.Time `json:"date_found,omitempty"`
	ReturnedToOwner bool       `json:"returned_to_owner"`
}

type Guardian struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Relation    string  `json:"relation"`
	Address     Address `json:"address"`
}

type PersonRequest struct {
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Guardian        Guardian `json:"guardian"`
	Images          []Image  `json:"images"`
	Status          string   `json:"status"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	LocationAddress string   `json:"location_address"`
}
