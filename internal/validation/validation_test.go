package validation

import (
	"errors"
	"strings"
	"testing"

	"founditBack/internal/models"
)

func TestClaimValidatorSubmit(t *testing.T) {
	v := NewClaimValidator()

	id, err := v.ValidateSubmit(models.SubmitClaimRequest{Item: "12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected item id 12, got %d", id)
	}

	if _, err := v.ValidateSubmit(models.SubmitClaimRequest{}); err == nil {
		t.Fatal("expected error for missing item id")
	}
	if _, err := v.ValidateSubmit(models.SubmitClaimRequest{Item: "xyz"}); err == nil {
		t.Fatal("expected error for malformed item id")
	}
}

func TestClaimValidatorVerifyJoinsMessages(t *testing.T) {
	v := NewClaimValidator()

	_, err := v.ValidateVerify(models.VerifyClaimRequest{})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", len(verr.Messages), verr.Messages)
	}
	if !strings.Contains(verr.Error(), ", ") {
		t.Fatalf("expected joined messages, got %q", verr.Error())
	}
}

func TestItemValidator(t *testing.T) {
	v := NewItemValidator()

	valid := models.ItemRequest{
		Name:        "Black wallet",
		Description: "Leather wallet found near gate 3",
		Category:    "4",
		Status:      models.StatusFound,
		Images:      []models.Image{{URL: "https://example.com/wallet.jpg"}},
	}
	categoryID, err := v.Validate(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if categoryID != 4 {
		t.Fatalf("expected category id 4, got %d", categoryID)
	}

	cases := []struct {
		name   string
		mutate func(*models.ItemRequest)
	}{
		{"missing name", func(r *models.ItemRequest) { r.Name = "" }},
		{"missing description", func(r *models.ItemRequest) { r.Description = "" }},
		{"missing category", func(r *models.ItemRequest) { r.Category = "" }},
		{"malformed category", func(r *models.ItemRequest) { r.Category = "four" }},
		{"bad status", func(r *models.ItemRequest) { r.Status = "misplaced" }},
		{"returned status", func(r *models.ItemRequest) { r.Status = models.StatusReturned }},
		{"bad image url", func(r *models.ItemRequest) { r.Images = []models.Image{{URL: "not-a-url"}} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			if _, err := v.Validate(req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestItemValidatorStatusGuardsReturned(t *testing.T) {
	v := NewItemValidator()

	if err := v.ValidateStatus(models.ItemStatusRequest{Status: models.StatusFound}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.ValidateStatus(models.ItemStatusRequest{Status: models.StatusReturned}); err == nil {
		t.Fatal("expected manual transition to returned to be rejected")
	}
	if err := v.ValidateStatus(models.ItemStatusRequest{Status: ""}); err == nil {
		t.Fatal("expected empty status to be rejected")
	}
}

func TestPersonValidatorCoordinates(t *testing.T) {
	v := NewPersonValidator()

	req := models.PersonRequest{
		Name:     "John",
		Age:      9,
		Guardian: models.Guardian{Name: "Jane", PhoneNumber: "+48123123123", Relation: "mother"},
		Status:   models.StatusLost,
		Latitude: 52.23, Longitude: 21.01,
	}
	if err := v.Validate(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Latitude = 120
	if err := v.Validate(req); err == nil {
		t.Fatal("expected out-of-range latitude to be rejected")
	}

	req.Latitude = 52.23
	req.Status = models.StatusReturned
	if err := v.Validate(req); err == nil {
		t.Fatal("expected returned status to be rejected")
	}
}
