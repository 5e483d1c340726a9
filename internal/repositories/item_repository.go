package repositories

import (
	"context"
	"database/sql"
	"strings"

	"founditBack/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

const itemColumns = `
	i.id, i.name, i.description, i.category_id, c.name,
	i.status, i.reported_by, CONCAT(u.name, ' ', u.surname),
	i.returned_to, COALESCE(CONCAT(ru.name, ' ', ru.surname), ''),
	i.street, i.city, i.state, i.country, i.postal_code,
	i.latitude, i.longitude,
	i.date_reported, i.returned_on, i.returned_to_owner
`

const itemJoins = `
	FROM items i
	JOIN categories c ON i.category_id = c.id
	JOIN users u ON i.reported_by = u.id
	LEFT JOIN users ru ON i.returned_to = ru.id
`

func scanItem(scanner interface{ Scan(...any) error }) (models.Item, error) {
	var (
		item       models.Item
		returnedTo sql.NullInt64
		returnedOn sql.NullTime
		latitude   sql.NullFloat64
		longitude  sql.NullFloat64
	)
	err := scanner.Scan(
		&item.ID, &item.Name, &item.Description, &item.CategoryID, &item.CategoryName,
		&item.Status, &item.ReportedBy, &item.ReporterName,
		&returnedTo, &item.ReturnedToName,
		&item.Location.Street, &item.Location.City, &item.Location.State, &item.Location.Country, &item.Location.PostalCode,
		&latitude, &longitude,
		&item.DateReported, &returnedOn, &item.ReturnedToOwner,
	)
	if err != nil {
		return models.Item{}, err
	}
	if returnedTo.Valid {
		id := models.EntityID(returnedTo.Int64)
		item.ReturnedTo = &id
	}
	if returnedOn.Valid {
		t := returnedOn.Time
		item.ReturnedOn = &t
	}
	if latitude.Valid {
		item.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		item.Longitude = &longitude.Float64
	}
	return item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Item{}, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO items (name, description, category_id, status, reported_by, street, city, state, country, postal_code, latitude, longitude, date_reported)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := tx.ExecContext(ctx, query,
		item.Name, item.Description, item.CategoryID, item.Status, item.ReportedBy,
		item.Location.Street, item.Location.City, item.Location.State, item.Location.Country, item.Location.PostalCode,
		item.Latitude, item.Longitude,
	)
	if err != nil {
		return models.Item{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = models.EntityID(id)

	for pos, img := range item.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_images (item_id, position, url) VALUES (?, ?, ?)`,
			item.ID, pos, img.URL,
		); err != nil {
			return models.Item{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id models.EntityID) (models.Item, error) {
	query := `SELECT ` + itemColumns + itemJoins + ` WHERE i.id = ?`
	item, err := scanItem(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	if err := r.loadImages(ctx, []*models.Item{&item}); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) GetItems(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + itemJoins + ` ORDER BY i.date_reported DESC`
	return r.queryItems(ctx, query)
}

// SearchItems applies the free-text filter and the page window over the same
// filtered set: totalItems is counted with the filter in place, never from an
// unfiltered count.
func (r *ItemRepository) SearchItems(ctx context.Context, search string, page, limit int) (models.ItemSearchResult, error) {
	where, params := itemSearchClause(search)

	var total int
	countQuery := `SELECT COUNT(*)` + itemJoins + where
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return models.ItemSearchResult{}, err
	}

	offset := (page - 1) * limit
	pageQuery := `SELECT ` + itemColumns + itemJoins + where + ` ORDER BY i.date_reported DESC LIMIT ? OFFSET ?`
	items, err := r.queryItems(ctx, pageQuery, append(params, limit, offset)...)
	if err != nil {
		return models.ItemSearchResult{}, err
	}

	return models.ItemSearchResult{
		Items:      items,
		TotalItems: total,
		TotalPages: TotalPages(total, limit),
		Page:       page,
		Limit:      limit,
	}, nil
}

// GetItemsByCategory groups every item under its category, newest first
// inside each group.
func (r *ItemRepository) GetItemsByCategory(ctx context.Context) ([]models.CategoryGroup, error) {
	items, err := r.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := (&CategoryRepository{DB: r.DB}).GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[models.EntityID][]models.Item, len(categories))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	groups := []models.CategoryGroup{}
	for _, category := range categories {
		grouped := byCategory[category.ID]
		if len(grouped) == 0 {
			continue
		}
		groups = append(groups, models.CategoryGroup{
			Category:   category,
			Items:      grouped,
			TotalItems: len(grouped),
		})
	}
	return groups, nil
}

func (r *ItemRepository) GetItemsOfCategory(ctx context.Context, categoryID models.EntityID) (models.CategoryGroup, error) {
	category, err := (&CategoryRepository{DB: r.DB}).GetCategoryByID(ctx, categoryID)
	if err != nil {
		return models.CategoryGroup{}, err
	}
	query := `SELECT ` + itemColumns + itemJoins + ` WHERE i.category_id = ? ORDER BY i.date_reported DESC`
	items, err := r.queryItems(ctx, query, categoryID)
	if err != nil {
		return models.CategoryGroup{}, err
	}
	return models.CategoryGroup{Category: category, Items: items, TotalItems: len(items)}, nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Item{}, err
	}
	defer tx.Rollback()

	query := `
		UPDATE items
		SET name = ?, description = ?, category_id = ?, status = ?, street = ?, city = ?, state = ?, country = ?, postal_code = ?, latitude = ?, longitude = ?
		WHERE id = ?
	`
	result, err := tx.ExecContext(ctx, query,
		item.Name, item.Description, item.CategoryID, item.Status,
		item.Location.Street, item.Location.City, item.Location.State, item.Location.Country, item.Location.PostalCode,
		item.Latitude, item.Longitude, item.ID,
	)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		return models.Item{}, models.ErrItemNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM item_images WHERE item_id = ?`, item.ID); err != nil {
		return models.Item{}, err
	}
	for pos, img := range item.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_images (item_id, position, url) VALUES (?, ?, ?)`,
			item.ID, pos, img.URL,
		); err != nil {
			return models.Item{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, item.ID)
}

// UpdateItemStatus is the manual admin edit between lost and found. The
// returned state is owned by the claim workflow, so an already-returned item
// is refused here.
func (r *ItemRepository) UpdateItemStatus(ctx context.Context, id models.EntityID, status string) (models.Item, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE items SET status = ? WHERE id = ? AND status <> ?`,
		status, id, models.StatusReturned,
	)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		item, err := r.GetItemByID(ctx, id)
		if err != nil {
			return models.Item{}, err
		}
		if item.Status == models.StatusReturned {
			return models.Item{}, models.ErrItemAlreadyReturned
		}
		// status already had the requested value
		return item, nil
	}
	return r.GetItemByID(ctx, id)
}

// DeleteItem removes the item together with its claims. The explicit claim
// delete keeps this working on databases created before fk_claims_item
// cascaded.
func (r *ItemRepository) DeleteItem(ctx context.Context, id models.EntityID) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM claims WHERE item_id = ?`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return tx.Commit()
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, params ...any) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	refs := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range items {
		refs = append(refs, &items[i])
	}
	if err := r.loadImages(ctx, refs); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) loadImages(ctx context.Context, items []*models.Item) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[models.EntityID]*models.Item, len(items))
	placeholders := make([]string, 0, len(items))
	params := make([]any, 0, len(items))
	for _, item := range items {
		item.Images = []models.Image{}
		byID[item.ID] = item
		placeholders = append(placeholders, "?")
		params = append(params, item.ID)
	}

	query := `SELECT item_id, url FROM item_images WHERE item_id IN (` +
		strings.Join(placeholders, ",") + `) ORDER BY item_id, position`
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID models.EntityID
		var url string
		if err := rows.Scan(&itemID, &url); err != nil {
			return err
		}
		if item, ok := byID[itemID]; ok {
			item.Images = append(item.Images, models.Image{URL: url})
		}
	}
	return rows.Err()
}
