// Package validation holds the request validators. Validators are plain
// constructed objects handed to the services that need them, so tests can
// swap in alternate rules without touching package state.
package validation

import (
	"fmt"
	"regexp"

	"founditBack/internal/models"
)

var imageURLPattern = regexp.MustCompile(`^https?://(www\.)?[\w\-]+\.[\w\-]+(/[\w\-.,@?^=%&:/~+#]*)?$`)

type ClaimValidator struct{}

func NewClaimValidator() *ClaimValidator { return &ClaimValidator{} }

// ValidateSubmit checks the shape of a claim submission. Existence of the
// referenced item and user is a separate check done by the service.
func (v *ClaimValidator) ValidateSubmit(req models.SubmitClaimRequest) (models.EntityID, error) {
	if req.Item == "" {
		return 0, models.NewValidationError("Item is required")
	}
	itemID, err := models.ParseEntityID(req.Item)
	if err != nil {
		return 0, models.NewValidationError("Invalid Item Id")
	}
	return itemID, nil
}

// ValidateVerify checks the shape of an admin verification request. The
// decision itself is canonicalized later by the workflow.
func (v *ClaimValidator) ValidateVerify(req models.VerifyClaimRequest) (models.EntityID, error) {
	var messages []string
	if req.ClaimID == "" {
		messages = append(messages, "Claim Id is required")
	}
	if req.Status == "" {
		messages = append(messages, "Status is required")
	}
	if len(messages) > 0 {
		return 0, models.NewValidationError(messages...)
	}
	claimID, err := models.ParseEntityID(req.ClaimID)
	if err != nil {
		return 0, models.NewValidationError("Invalid Claim Id")
	}
	return claimID, nil
}

type ItemValidator struct{}

func NewItemValidator() *ItemValidator { return &ItemValidator{} }

func (v *ItemValidator) Validate(req models.ItemRequest) (models.EntityID, error) {
	var messages []string
	if req.Name == "" {
		messages = append(messages, "Item Name is required")
	}
	if req.Description == "" {
		messages = append(messages, "Item Description is required")
	}
	var categoryID models.EntityID
	if req.Category == "" {
		messages = append(messages, "Category is required")
	} else {
		id, err := models.ParseEntityID(req.Category)
		if err != nil {
			messages = append(messages, "Invalid Category Id")
		}
		categoryID = id
	}
	// Reports enter as lost or found; the returned state belongs to the
	// claim workflow, which sets it together with the return fields.
	switch {
	case !models.ValidItemStatus(req.Status):
		messages = append(messages, "Invalid Item Status")
	case req.Status == models.StatusReturned:
		messages = append(messages, "Items are returned through claim verification")
	}
	for _, img := range req.Images {
		if !imageURLPattern.MatchString(img.URL) {
			messages = append(messages, fmt.Sprintf("Invalid Image URL: %s", img.URL))
		}
	}
	if len(messages) > 0 {
		return 0, models.NewValidationError(messages...)
	}
	return categoryID, nil
}

// ValidateStatus checks an admin status edit. Manual edits may only move an
// item between lost and found; "returned" is reserved for the claim workflow.
func (v *ItemValidator) ValidateStatus(req models.ItemStatusRequest) error {
	if !models.ValidItemStatus(req.Status) {
		return models.NewValidationError("Invalid Item Status")
	}
	if req.Status == models.StatusReturned {
		return models.NewValidationError("Items are returned through claim verification")
	}
	return nil
}

type PersonValidator struct{}

func NewPersonValidator() *PersonValidator { return &PersonValidator{} }

func (v *PersonValidator) Validate(req models.PersonRequest) error {
	var messages []string
	if req.Name == "" {
		messages = append(messages, "Person Name is required")
	}
	if req.Age <= 0 {
		messages = append(messages, "Valid Age is required")
	}
	if req.Guardian.Name == "" {
		messages = append(messages, "Guardian Name is required")
	}
	if req.Guardian.PhoneNumber == "" {
		messages = append(messages, "Guardian Phone Number is required")
	}
	if req.Guardian.Relation == "" {
		messages = append(messages, "Guardian Relation is required")
	}
	if req.Status != models.StatusLost && req.Status != models.StatusFound {
		messages = append(messages, "Invalid Status")
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		messages = append(messages, "Invalid Location Coordinates")
	}
	for _, img := range req.Images {
		if !imageURLPattern.MatchString(img.URL) {
			messages = append(messages, fmt.Sprintf("Invalid Image URL: %s", img.URL))
		}
	}
	if len(messages) > 0 {
		return models.NewValidationError(messages...)
	}
	return nil
}
