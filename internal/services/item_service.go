package services

import (
	"context"
	"time"

	"founditBack/internal/models"
	"founditBack/internal/repositories"
	"founditBack/internal/validation"
)

type ItemService struct {
	ItemRepo  *repositories.ItemRepository
	Validator *validation.ItemValidator
}

const (
	defaultPage  = 1
	defaultLimit = 12
	maxLimit     = 100
)

// ReportItem records a lost or found item on behalf of the session user.
func (s *ItemService) ReportItem(ctx context.Context, req models.ItemRequest, reporter models.EntityID) (models.Item, error) {
	categoryID, err := s.Validator.Validate(req)
	if err != nil {
		return models.Item{}, err
	}
	item := models.Item{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   categoryID,
		Images:       req.Images,
		Status:       req.Status,
		ReportedBy:   reporter,
		Location:     req.Location,
		DateReported: time.Now(),
	}
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetItemByID(ctx context.Context, id models.EntityID) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) GetItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.GetItems(ctx)
}

// SearchItems serves the paginated item browser. Out-of-range paging inputs
// fall back to defaults rather than erroring.
func (s *ItemService) SearchItems(ctx context.Context, search string, page, limit int) (models.ItemSearchResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.ItemRepo.SearchItems(ctx, search, page, limit)
}

func (s *ItemService) GetItemsByCategory(ctx context.Context) ([]models.CategoryGroup, error) {
	return s.ItemRepo.GetItemsByCategory(ctx)
}

func (s *ItemService) GetItemsOfCategory(ctx context.Context, categoryID models.EntityID) (models.CategoryGroup, error) {
	return s.ItemRepo.GetItemsOfCategory(ctx, categoryID)
}

func (s *ItemService) UpdateItem(ctx context.Context, id models.EntityID, req models.ItemRequest) (models.Item, error) {
	categoryID, err := s.Validator.Validate(req)
	if err != nil {
		return models.Item{}, err
	}
	existing, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if existing.Status == models.StatusReturned {
		return models.Item{}, models.ErrItemAlreadyReturned
	}
	existing.Name = req.Name
	existing.Description = req.Description
	existing.CategoryID = categoryID
	existing.Images = req.Images
	existing.Status = req.Status
	existing.Location = req.Location
	return s.ItemRepo.UpdateItem(ctx, existing)
}

// UpdateStatus applies a manual admin status edit. The returned state is out
// of reach here; only the claim workflow produces it.
func (s *ItemService) UpdateStatus(ctx context.Context, id models.EntityID, req models.ItemStatusRequest) (models.Item, error) {
	if err := s.Validator.ValidateStatus(req); err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.UpdateItemStatus(ctx, id, req.Status)
}

func (s *ItemService) DeleteItem(ctx context.Context, id models.EntityID) error {
	return s.ItemRepo.DeleteItem(ctx, id)
}
