package services

import (
	"context"
	"log"
	"time"

	"founditBack/internal/geo"
	"founditBack/internal/models"
	"founditBack/internal/repositories"
	"founditBack/internal/validation"
)

type PersonService struct {
	PersonRepo *repositories.PersonRepository
	Locator    *geo.PersonLocator
	Validator  *validation.PersonValidator
}

// ReportPerson records a missing or found person and indexes the last-seen
// position. The geo index is advisory; a failed index write is logged and the
// report still succeeds.
func (s *PersonService) ReportPerson(ctx context.Context, req models.PersonRequest, reporter models.EntityID) (models.Person, error) {
	if err := s.Validator.Validate(req); err != nil {
		return models.Person{}, err
	}
	person := models.Person{
		Name:            req.Name,
		Age:             req.Age,
		Guardian:        req.Guardian,
		Images:          req.Images,
		Status:          req.Status,
		ReportedBy:      reporter,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		LocationAddress: req.LocationAddress,
		DateReported:    time.Now(),
	}
	created, err := s.PersonRepo.CreatePerson(ctx, person)
	if err != nil {
		return models.Person{}, err
	}
	if s.Locator != nil {
		if err := s.Locator.Add(ctx, created.ID.Int(), created.Longitude, created.Latitude, created.Status); err != nil {
			log.Printf("geo index add failed for person %d: %v", created.ID, err)
		}
	}
	return created, nil
}

func (s *PersonService) GetPersonByID(ctx context.Context, id models.EntityID) (models.Person, error) {
	return s.PersonRepo.GetPersonByID(ctx, id)
}

func (s *PersonService) GetPersons(ctx context.Context) ([]models.Person, error) {
	return s.PersonRepo.GetPersons(ctx)
}

func (s *PersonService) GetPersonsByUser(ctx context.Context, userID models.EntityID) ([]models.Person, error) {
	return s.PersonRepo.GetPersonsByUser(ctx, userID)
}

func (s *PersonService) SearchPersons(ctx context.Context, search string) ([]models.Person, error) {
	return s.PersonRepo.SearchPersons(ctx, search)
}

// UpdateStatus moves a person between lost and found. Marking a person found
// records who found them and when, and shifts their geo index entry.
func (s *PersonService) UpdateStatus(ctx context.Context, id models.EntityID, status string, foundBy models.EntityID) (models.Person, error) {
	if !models.ValidItemStatus(status) || status == models.StatusReturned {
		return models.Person{}, models.NewValidationError("Invalid Status")
	}
	existing, err := s.PersonRepo.GetPersonByID(ctx, id)
	if err != nil {
		return models.Person{}, err
	}

	var finder *models.EntityID
	if status == models.StatusFound {
		finder = &foundBy
	}
	updated, err := s.PersonRepo.UpdatePersonStatus(ctx, id, status, finder, time.Now())
	if err != nil {
		return models.Person{}, err
	}
	if s.Locator != nil && existing.Status != updated.Status {
		if err := s.Locator.Move(ctx, id.Int(), existing.Status, updated.Status); err != nil {
			log.Printf("geo index move failed for person %d: %v", id, err)
		}
	}
	return updated, nil
}

// Nearby resolves persons last seen within radiusMeters of the given point.
// Results come from the geo index and are hydrated from the database.
func (s *PersonService) Nearby(ctx context.Context, lon, lat, radiusMeters float64, limit int) ([]models.Person, error) {
	if s.Locator == nil {
		return nil, nil
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	hits, err := s.Locator.Nearby(ctx, lon, lat, radiusMeters, limit, models.StatusLost)
	if err != nil {
		return nil, err
	}
	persons := make([]models.Person, 0, len(hits))
	for _, hit := range hits {
		person, err := s.PersonRepo.GetPersonByID(ctx, models.EntityID(hit.ID))
		if err != nil {
			// Stale index entries are expected after deletions.
			log.Printf("geo hit %d has no backing record: %v", hit.ID, err)
			continue
		}
		persons = append(persons, person)
	}
	return persons, nil
}

func (s *PersonService) DeletePerson(ctx context.Context, id models.EntityID) error {
	if err := s.PersonRepo.DeletePerson(ctx, id); err != nil {
		return err
	}
	if s.Locator != nil {
		if err := s.Locator.Remove(ctx, id.Int(), models.StatusLost, models.StatusFound); err != nil {
			log.Printf("geo index remove failed for person %d: %v", id, err)
		}
	}
	return nil
}
