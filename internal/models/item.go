package models

import "time"

// Item status values. An item only ever reaches StatusReturned through an
// accepted claim; admin edits may move it between lost and found.
const (
	StatusLost     = "lost"
	StatusFound    = "found"
	StatusReturned = "returned"
)

// ValidItemStatus reports whether s is one of the three item statuses.
func ValidItemStatus(s string) bool {
	return s == StatusLost || s == StatusFound || s == StatusReturned
}

type Item struct {
	ID              EntityID   `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	CategoryID      EntityID   `json:"category_id"`
	CategoryName    string     `json:"category_name,omitempty"`
	Images          []Image    `json:"images"`
	Status          string     `json:"status"`
	ReportedBy      EntityID   `json:"reported_by"`
	ReporterName    string     `json:"reporter_name,omitempty"`
	ReturnedTo      *EntityID  `json:"returned_to,omitempty"`
	ReturnedToName  string     `json:"returned_to_name,omitempty"`
	Location        Address    `json:"location"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	DateReported    time.Time  `json:"date_reported"`
	ReturnedOn      *time.Time `json:"returned_on,omitempty"`
	ReturnedToOwner bool       `json:"returned_to_owner"`
}

type Image struct {
	URL string `json:"url"`
}

// MarkReturned applies the full return mutation in one place: status,
// returned_to, returned_on and returned_to_owner always change together.
func (i *Item) MarkReturned(claimant EntityID, now time.Time) {
	i.Status = StatusReturned
	i.ReturnedTo = &claimant
	i.ReturnedOn = &now
	i.ReturnedToOwner = true
}

type ItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Images      []Image `json:"images"`
	Status      string  `json:"status"`
	Location    Address `json:"location"`
}

type ItemStatusRequest struct {
	Status     string `json:"status"`
	ReturnedTo string `json:"returned_to,omitempty"`
}

// ItemSearchResult is the read-side page produced by the item query path.
// TotalItems counts the rows matching the same filters as the page window.
type ItemSearchResult struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
	TotalPages int    `json:"totalPages"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

// CategoryGroup is one bucket of the grouped item listing.
type CategoryGroup struct {
	Category   Category `json:"categoryDetails"`
	Items      []Item   `json:"items"`
	TotalItems int      `json:"totalItems"`
}
