package repositories

import (
	"context"
	"database/sql"

	"founditBack/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	query := `INSERT INTO categories (name, description, image, created_at) VALUES (?, ?, ?, NOW())`
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Description, c.Image)
	if err != nil {
		return models.Category{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	c.ID = models.EntityID(id)
	return c, nil
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, description, image, created_at, updated_at FROM categories ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id models.EntityID) (models.Category, error) {
	query := `SELECT id, name, description, image, created_at, updated_at FROM categories WHERE id = ?`
	var c models.Category
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Category{}, models.ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	query := `UPDATE categories SET name = ?, description = ?, image = ?, updated_at = NOW() WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Description, c.Image, c.ID)
	if err != nil {
		return models.Category{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Category{}, err
	}
	if rowsAffected == 0 {
		return models.Category{}, models.ErrCategoryNotFound
	}
	return r.GetCategoryByID(ctx, c.ID)
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id models.EntityID) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}
