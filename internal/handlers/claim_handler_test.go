package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"founditBack/internal/models"
	"founditBack/internal/services"
	"founditBack/internal/validation"
)

type stubClaimStore struct {
	created []models.Claim
	claim   models.Claim
	err     error
}

func (s *stubClaimStore) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	if s.err != nil {
		return models.Claim{}, s.err
	}
	claim.ID = 1
	s.created = append(s.created, claim)
	return claim, nil
}

func (s *stubClaimStore) GetClaimByID(ctx context.Context, id models.EntityID) (models.Claim, error) {
	return s.claim, s.err
}

func (s *stubClaimStore) GetClaims(ctx context.Context) ([]models.Claim, error) {
	return []models.Claim{s.claim}, s.err
}

func (s *stubClaimStore) GetClaimsByUser(ctx context.Context, userID models.EntityID) ([]models.Claim, error) {
	return []models.Claim{s.claim}, s.err
}

func (s *stubClaimStore) AcceptClaim(ctx context.Context, id models.EntityID, now time.Time) (models.Claim, error) {
	c := s.claim
	c.Status = models.ClaimAccepted
	return c, s.err
}

func (s *stubClaimStore) RejectClaim(ctx context.Context, id models.EntityID) (models.Claim, error) {
	c := s.claim
	c.Status = models.ClaimRejected
	return c, s.err
}

type stubItemLookup struct{ err error }

func (s stubItemLookup) GetItemByID(ctx context.Context, id models.EntityID) (models.Item, error) {
	return models.Item{ID: id}, s.err
}

type stubUserLookup struct{ err error }

func (s stubUserLookup) GetUserByID(ctx context.Context, id models.EntityID) (models.User, error) {
	return models.User{ID: id}, s.err
}

func newClaimHandler(store *stubClaimStore, itemErr, userErr error) *ClaimHandler {
	return &ClaimHandler{
		Service: &services.ClaimService{
			ClaimRepo: store,
			ItemRepo:  stubItemLookup{err: itemErr},
			UserRepo:  stubUserLookup{err: userErr},
			Validator: validation.NewClaimValidator(),
		},
	}
}

func withSession(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), "user_id", userID)
	return r.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestSubmitClaimRequiresSession(t *testing.T) {
	h := newClaimHandler(&stubClaimStore{}, nil, nil)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item":"7"}`))

	h.SubmitClaim(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v; want false", body["success"])
	}
}

func TestSubmitClaimCreated(t *testing.T) {
	store := &stubClaimStore{}
	h := newClaimHandler(store, nil, nil)
	rec := httptest.NewRecorder()
	r := withSession(httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item":"7"}`)), 3)

	h.SubmitClaim(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v; want true", body["success"])
	}
	if len(store.created) != 1 {
		t.Fatalf("created claims = %d; want 1", len(store.created))
	}
	if store.created[0].ItemID != 7 || store.created[0].ClaimBy != 3 {
		t.Errorf("created claim = %+v", store.created[0])
	}
}

func TestSubmitClaimValidationStatus(t *testing.T) {
	h := newClaimHandler(&stubClaimStore{}, nil, nil)
	rec := httptest.NewRecorder()
	r := withSession(httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item":""}`)), 3)

	h.SubmitClaim(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Item is required" {
		t.Errorf("message = %v; want Item is required", body["message"])
	}
}

func TestSubmitClaimMissingItemMapsToUnauthorized(t *testing.T) {
	h := newClaimHandler(&stubClaimStore{}, models.ErrItemNotFound, nil)
	rec := httptest.NewRecorder()
	r := withSession(httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item":"7"}`)), 3)

	h.SubmitClaim(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rec.Code)
	}
}

func TestVerifyClaimNotifies(t *testing.T) {
	store := &stubClaimStore{claim: models.Claim{
		ID: 1, ItemID: 7, ItemName: "Black wallet", ClaimBy: 3, ClaimantName: "Jan Kowalski",
		Status: models.ClaimPending,
	}}
	h := newClaimHandler(store, nil, nil)

	var event models.ClaimEvent
	h.Notify = func(e models.ClaimEvent) { event = e }

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("PUT", "/api/claim/verify", strings.NewReader(`{"claimId":"1","status":"accepted"}`))

	h.VerifyClaim(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200, body %s", rec.Code, rec.Body.String())
	}
	if event.ClaimID != 1 || event.Status != models.ClaimAccepted {
		t.Errorf("event = %+v; want claim 1 accepted", event)
	}
	if event.ItemName != "Black wallet" {
		t.Errorf("event.ItemName = %q; want the claimed item's name", event.ItemName)
	}
	body := decodeBody(t, rec)
	if claim, ok := body["claim"].(map[string]any); !ok || claim["claimant_name"] != "Jan Kowalski" {
		t.Errorf("response claim = %v; want claimant name carried through", body["claim"])
	}
}

func TestVerifyClaimAlreadyDecidedConflict(t *testing.T) {
	store := &stubClaimStore{claim: models.Claim{ID: 1, ItemID: 7, Status: models.ClaimAccepted}}
	h := newClaimHandler(store, nil, nil)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("PUT", "/api/claim/verify", strings.NewReader(`{"claimId":"1","status":"rejected"}`))

	h.VerifyClaim(rec, r)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d; want 409", rec.Code)
	}
}
