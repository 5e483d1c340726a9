package models

import "strconv"

// EntityID identifies a persisted entity. Handlers parse raw path/body values
// into an EntityID once at the boundary; services and repositories only ever
// see the typed form.
type EntityID int

// ParseEntityID converts a raw request value into an EntityID. Only positive
// integers are well-formed; everything else is a validation failure, which is
// independent of whether the entity actually exists.
func ParseEntityID(raw string) (EntityID, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, NewValidationError("invalid entity id")
	}
	return EntityID(n), nil
}

func (id EntityID) Int() int { return int(id) }

func (id EntityID) String() string { return strconv.Itoa(int(id)) }
