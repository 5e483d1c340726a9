package services

import (
	"context"
	"time"

	"founditBack/internal/models"
	"founditBack/internal/validation"
)

// ClaimStore is the persistence surface the claim workflow needs. The accept
// and reject operations are transactional in the SQL implementation; in-memory
// fakes stand in for it in tests.
type ClaimStore interface {
	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)
	GetClaimByID(ctx context.Context, id models.EntityID) (models.Claim, error)
	GetClaims(ctx context.Context) ([]models.Claim, error)
	GetClaimsByUser(ctx context.Context, userID models.EntityID) ([]models.Claim, error)
	AcceptClaim(ctx context.Context, id models.EntityID, now time.Time) (models.Claim, error)
	RejectClaim(ctx context.Context, id models.EntityID) (models.Claim, error)
}

// ItemLookup and UserLookup cover the existence checks done at submission.
type ItemLookup interface {
	GetItemByID(ctx context.Context, id models.EntityID) (models.Item, error)
}

type UserLookup interface {
	GetUserByID(ctx context.Context, id models.EntityID) (models.User, error)
}

// ClaimService orchestrates claim submission, admin verification and the
// resulting item transition.
type ClaimService struct {
	ClaimRepo ClaimStore
	ItemRepo  ItemLookup
	UserRepo  UserLookup
	Validator *validation.ClaimValidator
}

// SubmitClaim records a new pending claim. Multiple claims per item and per
// claimant are allowed; contention is resolved at verification time.
func (s *ClaimService) SubmitClaim(ctx context.Context, req models.SubmitClaimRequest, claimant models.EntityID) (models.Claim, error) {
	itemID, err := s.Validator.ValidateSubmit(req)
	if err != nil {
		return models.Claim{}, err
	}

	// Existence is checked independently of the id-format validation above.
	if _, err := s.UserRepo.GetUserByID(ctx, claimant); err != nil {
		return models.Claim{}, err
	}
	if _, err := s.ItemRepo.GetItemByID(ctx, itemID); err != nil {
		return models.Claim{}, err
	}

	claim := models.Claim{
		ItemID:       itemID,
		ClaimBy:      claimant,
		Status:       models.ClaimPending,
		DateReported: time.Now(),
	}
	return s.ClaimRepo.CreateClaim(ctx, claim)
}

// VerifyClaim applies an admin decision. Accepting a claim rejects every
// sibling pending claim on the same item and marks the item returned, as one
// unit; rejecting touches only the target claim. A claim that already left
// pending is reported with ErrClaimAlreadyDecided and nothing is re-applied.
func (s *ClaimService) VerifyClaim(ctx context.Context, req models.VerifyClaimRequest) (models.Claim, error) {
	claimID, err := s.Validator.ValidateVerify(req)
	if err != nil {
		return models.Claim{}, err
	}
	decision, err := models.ParseClaimDecision(req.Status)
	if err != nil {
		return models.Claim{}, models.NewValidationError("Invalid Status")
	}

	claim, err := s.ClaimRepo.GetClaimByID(ctx, claimID)
	if err != nil {
		return models.Claim{}, err
	}
	if claim.Status != models.ClaimPending {
		return claim, models.ErrClaimAlreadyDecided
	}

	if decision == models.ClaimAccepted {
		return s.ClaimRepo.AcceptClaim(ctx, claimID, time.Now())
	}
	return s.ClaimRepo.RejectClaim(ctx, claimID)
}

func (s *ClaimService) GetClaims(ctx context.Context) ([]models.Claim, error) {
	return s.ClaimRepo.GetClaims(ctx)
}

func (s *ClaimService) GetClaimsByUser(ctx context.Context, userID models.EntityID) ([]models.Claim, error) {
	return s.ClaimRepo.GetClaimsByUser(ctx, userID)
}
