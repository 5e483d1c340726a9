package services

import (
	"context"

	"founditBack/internal/models"
	"founditBack/internal/repositories"
)

type CategoryService struct {
	CategoryRepo *repositories.CategoryRepository
}

func (s *CategoryService) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if c.Name == "" {
		return models.Category{}, models.NewValidationError("Category Name is required")
	}
	return s.CategoryRepo.CreateCategory(ctx, c)
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetCategories(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id models.EntityID) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByID(ctx, id)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if c.Name == "" {
		return models.Category{}, models.NewValidationError("Category Name is required")
	}
	return s.CategoryRepo.UpdateCategory(ctx, c)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id models.EntityID) error {
	return s.CategoryRepo.DeleteCategory(ctx, id)
}
