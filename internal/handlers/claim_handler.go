package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"founditBack/internal/models"
	"founditBack/internal/services"
)

type ClaimHandler struct {
	Service *services.ClaimService
	// Notify, when set, pushes decided claims to the admin websocket feed.
	Notify func(models.ClaimEvent)
}

// failClaim maps claim-flow errors. A claim against a missing item or user is
// treated as an authorization failure rather than a lookup miss, so probing
// ids does not distinguish the two.
func failClaim(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrClaimNotFound):
		respondError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, models.ErrClaimAlreadyDecided):
		respondError(w, http.StatusConflict, "Claim has already been decided")
	case errors.Is(err, models.ErrItemAlreadyReturned):
		respondError(w, http.StatusConflict, "Item has already been returned")
	default:
		log.Printf("claim error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *ClaimHandler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	claimant, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.SubmitClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		failClaim(w, err)
		return
	}

	claim, err := h.Service.SubmitClaim(r.Context(), req, claimant)
	if err != nil {
		log.Printf("SubmitClaim error: %v", err)
		failClaim(w, err)
		return
	}

	respond(w, http.StatusCreated, "Claim submitted", envelope{"claim": claim})
}

func (h *ClaimHandler) VerifyClaim(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		failClaim(w, err)
		return
	}

	claim, err := h.Service.VerifyClaim(r.Context(), req)
	if err != nil {
		log.Printf("VerifyClaim error: %v", err)
		failClaim(w, err)
		return
	}

	if h.Notify != nil {
		h.Notify(models.ClaimEvent{
			ClaimID:  claim.ID,
			ItemID:   claim.ItemID,
			ClaimBy:  claim.ClaimBy,
			Status:   claim.Status,
			Decided:  time.Now(),
			ItemName: claim.ItemName,
		})
	}

	respond(w, http.StatusOK, "Claim "+claim.Status, envelope{"claim": claim})
}

func (h *ClaimHandler) GetClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Service.GetClaims(r.Context())
	if err != nil {
		log.Printf("GetClaims error: %v", err)
		failClaim(w, err)
		return
	}
	respond(w, http.StatusOK, "Claims fetched", envelope{"claims": claims})
}

func (h *ClaimHandler) GetMyClaims(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	claims, err := h.Service.GetClaimsByUser(r.Context(), userID)
	if err != nil {
		log.Printf("GetMyClaims error: %v", err)
		failClaim(w, err)
		return
	}
	respond(w, http.StatusOK, "Claims fetched", envelope{"claims": claims})
}
