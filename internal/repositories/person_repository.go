package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"founditBack/internal/models"
)

type PersonRepository struct {
	DB *sql.DB
}

const personColumns = `
	p.id, p.name, p.age,
	p.guardian_name, p.guardian_phone, p.guardian_relation,
	p.guardian_street, p.guardian_city, p.guardian_state, p.guardian_country, p.guardian_postal_code,
	p.status, p.reported_by, p.found_by,
	p.latitude, p.longitude, p.location_address,
	p.date_reported, p.date_found, p.returned_to_owner
`

func scanPerson(scanner interface{ Scan(...any) error }) (models.Person, error) {
	var (
		person    models.Person
		foundBy   sql.NullInt64
		dateFound sql.NullTime
	)
	err := scanner.Scan(
		&person.ID, &person.Name, &person.Age,
		&person.Guardian.Name, &person.Guardian.PhoneNumber, &person.Guardian.Relation,
		&person.Guardian.Address.Street, &person.Guardian.Address.City, &person.Guardian.Address.State,
		&person.Guardian.Address.Country, &person.Guardian.Address.PostalCode,
		&person.Status, &person.ReportedBy, &foundBy,
		&person.Latitude, &person.Longitude, &person.LocationAddress,
		&person.DateReported, &dateFound, &person.ReturnedToOwner,
	)
	if err != nil {
		return models.Person{}, err
	}
	if foundBy.Valid {
		id := models.EntityID(foundBy.Int64)
		person.FoundBy = &id
	}
	if dateFound.Valid {
		t := dateFound.Time
		person.DateFound = &t
	}
	return person, nil
}

func (r *PersonRepository) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Person{}, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO persons (name, age, guardian_name, guardian_phone, guardian_relation,
			guardian_street, guardian_city, guardian_state, guardian_country, guardian_postal_code,
			status, reported_by, found_by, latitude, longitude, location_address, date_reported, date_found)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), ?)
	`
	result, err := tx.ExecContext(ctx, query,
		person.Name, person.Age,
		person.Guardian.Name, person.Guardian.PhoneNumber, person.Guardian.Relation,
		person.Guardian.Address.Street, person.Guardian.Address.City, person.Guardian.Address.State,
		person.Guardian.Address.Country, person.Guardian.Address.PostalCode,
		person.Status, person.ReportedBy, person.FoundBy,
		person.Latitude, person.Longitude, person.LocationAddress, person.DateFound,
	)
	if err != nil {
		return models.Person{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Person{}, err
	}
	person.ID = models.EntityID(id)

	for pos, img := range person.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO person_images (person_id, position, url) VALUES (?, ?, ?)`,
			person.ID, pos, img.URL,
		); err != nil {
			return models.Person{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Person{}, err
	}
	return r.GetPersonByID(ctx, person.ID)
}

func (r *PersonRepository) GetPersonByID(ctx context.Context, id models.EntityID) (models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons p WHERE p.id = ?`
	person, err := scanPerson(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Person{}, models.ErrPersonNotFound
	}
	if err != nil {
		return models.Person{}, err
	}
	if err := r.loadImages(ctx, []*models.Person{&person}); err != nil {
		return models.Person{}, err
	}
	return person, nil
}

func (r *PersonRepository) GetPersons(ctx context.Context) ([]models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons p ORDER BY p.date_reported DESC`
	return r.queryPersons(ctx, query)
}

func (r *PersonRepository) GetPersonsByUser(ctx context.Context, userID models.EntityID) ([]models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons p WHERE p.reported_by = ? ORDER BY p.date_reported DESC`
	return r.queryPersons(ctx, query, userID)
}

func (r *PersonRepository) SearchPersons(ctx context.Context, search string) ([]models.Person, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return r.GetPersons(ctx)
	}
	query := `SELECT ` + personColumns + ` FROM persons p
		WHERE p.name LIKE ? OR p.status LIKE ? OR p.location_address LIKE ?
		ORDER BY p.date_reported DESC`
	pattern := "%" + search + "%"
	return r.queryPersons(ctx, query, pattern, pattern, pattern)
}

func (r *PersonRepository) UpdatePersonStatus(ctx context.Context, id models.EntityID, status string, foundBy *models.EntityID, now time.Time) (models.Person, error) {
	query := `UPDATE persons SET status = ?, found_by = COALESCE(?, found_by), date_found = ?, returned_to_owner = ? WHERE id = ?`
	var dateFound *time.Time
	returned := status == models.StatusReturned
	if status == models.StatusFound || returned {
		dateFound = &now
	}
	result, err := r.DB.ExecContext(ctx, query, status, foundBy, dateFound, returned, id)
	if err != nil {
		return models.Person{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Person{}, err
	}
	if rowsAffected == 0 {
		return models.Person{}, models.ErrPersonNotFound
	}
	return r.GetPersonByID(ctx, id)
}

func (r *PersonRepository) DeletePerson(ctx context.Context, id models.EntityID) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPersonNotFound
	}
	return nil
}

func (r *PersonRepository) queryPersons(ctx context.Context, query string, params ...any) ([]models.Person, error) {
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := []models.Person{}
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	refs := make([]*models.Person, 0, len(persons))
	for i := range persons {
		refs = append(refs, &persons[i])
	}
	if err := r.loadImages(ctx, refs); err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *PersonRepository) loadImages(ctx context.Context, persons []*models.Person) error {
	if len(persons) == 0 {
		return nil
	}
	byID := make(map[models.EntityID]*models.Person, len(persons))
	placeholders := make([]string, 0, len(persons))
	params := make([]any, 0, len(persons))
	for _, person := range persons {
		person.Images = []models.Image{}
		byID[person.ID] = person
		placeholders = append(placeholders, "?")
		params = append(params, person.ID)
	}

	query := `SELECT person_id, url FROM person_images WHERE person_id IN (` +
		strings.Join(placeholders, ",") + `) ORDER BY person_id, position`
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var personID models.EntityID
		var url string
		if err := rows.Scan(&personID, &url); err != nil {
			return err
		}
		if person, ok := byID[personID]; ok {
			person.Images = append(person.Images, models.Image{URL: url})
		}
	}
	return rows.Err()
}
