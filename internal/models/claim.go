package models

import (
	"strings"
	"time"
)

// Claim status values. pending is the only non-terminal state.
const (
	ClaimPending  = "pending"
	ClaimAccepted = "accepted"
	ClaimRejected = "rejected"
)

type Claim struct {
	ID           EntityID  `json:"id"`
	ItemID       EntityID  `json:"item"`
	ItemName     string    `json:"item_name,omitempty"`
	ClaimBy      EntityID  `json:"claim_by"`
	ClaimantName string    `json:"claimant_name,omitempty"`
	Status       string    `json:"status"`
	DateReported time.Time `json:"date_reported"`
}

// ParseClaimDecision canonicalizes an admin decision. Comparison is
// case-insensitive but the stored value is always the lowercase form.
func ParseClaimDecision(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ClaimAccepted:
		return ClaimAccepted, nil
	case ClaimRejected:
		return ClaimRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

type SubmitClaimRequest struct {
	Item string `json:"item"`
}

type VerifyClaimRequest struct {
	ClaimID string `json:"claimId"`
	Status  string `json:"status"`
}

// ClaimEvent is broadcast to connected admin dashboards when a claim is
// decided.
type ClaimEvent struct {
	ClaimID  EntityID  `json:"claim_id"`
	ItemID   EntityID  `json:"item_id"`
	ClaimBy  EntityID  `json:"claim_by"`
	Status   string    `json:"status"`
	Decided  time.Time `json:"decided_at"`
	ItemName string    `json:"item_name,omitempty"`
}
