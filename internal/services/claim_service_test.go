package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"founditBack/internal/models"
	"founditBack/internal/validation"
)

type fakeClaimStore struct {
	claims map[models.EntityID]*models.Claim
	items  map[models.EntityID]*models.Item
	nextID models.EntityID
}

func newFakeClaimStore() *fakeClaimStore {
	return &fakeClaimStore{
		claims: make(map[models.EntityID]*models.Claim),
		items:  make(map[models.EntityID]*models.Item),
		nextID: 1,
	}
}

func (f *fakeClaimStore) addItem(item models.Item) {
	f.items[item.ID] = &item
}

func (f *fakeClaimStore) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	claim.ID = f.nextID
	f.nextID++
	stored := claim
	f.claims[claim.ID] = &stored
	return claim, nil
}

func (f *fakeClaimStore) GetClaimByID(ctx context.Context, id models.EntityID) (models.Claim, error) {
	c, ok := f.claims[id]
	if !ok {
		return models.Claim{}, models.ErrClaimNotFound
	}
	return *c, nil
}

func (f *fakeClaimStore) GetClaims(ctx context.Context) ([]models.Claim, error) {
	out := make([]models.Claim, 0, len(f.claims))
	for _, c := range f.claims {
		out = append(out, *c)
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeClaimStore) GetClaimsByUser(ctx context.Context, userID models.EntityID) ([]models.Claim, error) {
	var out []models.Claim
	for _, c := range f.claims {
		if c.ClaimBy == userID {
			out = append(out, *c)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// sortNewestFirst mirrors the ORDER BY date_reported DESC the store applies.
func sortNewestFirst(claims []models.Claim) {
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].DateReported.After(claims[j].DateReported)
	})
}

func (f *fakeClaimStore) AcceptClaim(ctx context.Context, id models.EntityID, now time.Time) (models.Claim, error) {
	c, ok := f.claims[id]
	if !ok {
		return models.Claim{}, models.ErrClaimNotFound
	}
	item, ok := f.items[c.ItemID]
	if !ok {
		return models.Claim{}, models.ErrItemNotFound
	}
	if item.Status == models.StatusReturned {
		return models.Claim{}, models.ErrItemAlreadyReturned
	}
	if c.Status != models.ClaimPending {
		return models.Claim{}, models.ErrClaimAlreadyDecided
	}
	c.Status = models.ClaimAccepted
	for _, sibling := range f.claims {
		if sibling.ItemID == c.ItemID && sibling.ID != c.ID && sibling.Status == models.ClaimPending {
			sibling.Status = models.ClaimRejected
		}
	}
	item.MarkReturned(c.ClaimBy, now)
	return *c, nil
}

func (f *fakeClaimStore) RejectClaim(ctx context.Context, id models.EntityID) (models.Claim, error) {
	c, ok := f.claims[id]
	if !ok {
		return models.Claim{}, models.ErrClaimNotFound
	}
	if c.Status != models.ClaimPending {
		return models.Claim{}, models.ErrClaimAlreadyDecided
	}
	c.Status = models.ClaimRejected
	return *c, nil
}

type fakeItemLookup struct{ store *fakeClaimStore }

func (f fakeItemLookup) GetItemByID(ctx context.Context, id models.EntityID) (models.Item, error) {
	item, ok := f.store.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return *item, nil
}

type fakeUserLookup struct{ users map[models.EntityID]models.User }

func (f fakeUserLookup) GetUserByID(ctx context.Context, id models.EntityID) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func newClaimService(store *fakeClaimStore, users ...models.User) *ClaimService {
	lookup := fakeUserLookup{users: make(map[models.EntityID]models.User)}
	for _, u := range users {
		lookup.users[u.ID] = u
	}
	return &ClaimService{
		ClaimRepo: store,
		ItemRepo:  fakeItemLookup{store: store},
		UserRepo:  lookup,
		Validator: validation.NewClaimValidator(),
	}
}

func TestSubmitClaimCreatesPending(t *testing.T) {
	store := newFakeClaimStore()
	store.addItem(models.Item{ID: 7, Status: models.StatusFound})
	svc := newClaimService(store, models.User{ID: 3})

	claim, err := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 3)
	if err != nil {
		t.Fatalf("SubmitClaim: %v", err)
	}
	if claim.Status != models.ClaimPending {
		t.Errorf("status = %q; want pending", claim.Status)
	}
	if claim.ItemID != 7 || claim.ClaimBy != 3 {
		t.Errorf("claim = %+v; want item 7 claimed by user 3", claim)
	}
	if claim.DateReported.IsZero() {
		t.Error("DateReported not set")
	}
}

func TestSubmitClaimValidation(t *testing.T) {
	store := newFakeClaimStore()
	svc := newClaimService(store, models.User{ID: 3})

	tests := []struct {
		name string
		item string
		want string
	}{
		{"missing item", "", "Item is required"},
		{"malformed id", "abc", "Invalid Item Id"},
		{"negative id", "-4", "Invalid Item Id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: tt.item}, 3)
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v; want validation error", err)
			}
			if ve.Error() != tt.want {
				t.Errorf("message = %q; want %q", ve.Error(), tt.want)
			}
		})
	}
	if len(store.claims) != 0 {
		t.Errorf("claims stored on failed submission: %d", len(store.claims))
	}
}

func TestSubmitClaimMissingItemOrUser(t *testing.T) {
	store := newFakeClaimStore()
	store.addItem(models.Item{ID: 7, Status: models.StatusFound})
	svc := newClaimService(store, models.User{ID: 3})

	if _, err := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "999"}, 3); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("unknown item: err = %v; want ErrItemNotFound", err)
	}
	if _, err := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 42); !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("unknown user: err = %v; want ErrUserNotFound", err)
	}
	if len(store.claims) != 0 {
		t.Errorf("claims stored despite failed checks: %d", len(store.claims))
	}
}

func TestGetClaimsByUserNewestFirst(t *testing.T) {
	store := newFakeClaimStore()
	svc := newClaimService(store)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{2 * time.Hour, 0, 5 * time.Hour, time.Hour} {
		if _, err := store.CreateClaim(context.Background(), models.Claim{
			ItemID:       7,
			ClaimBy:      3,
			Status:       models.ClaimPending,
			DateReported: base.Add(offset),
		}); err != nil {
			t.Fatalf("CreateClaim: %v", err)
		}
	}

	claims, err := svc.GetClaimsByUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetClaimsByUser: %v", err)
	}
	if len(claims) != 4 {
		t.Fatalf("len(claims) = %d; want 4", len(claims))
	}
	if !claims[0].DateReported.Equal(base.Add(5 * time.Hour)) {
		t.Errorf("first claim reported %v; want most recent %v", claims[0].DateReported, base.Add(5*time.Hour))
	}
	for i := 1; i < len(claims); i++ {
		if claims[i].DateReported.After(claims[i-1].DateReported) {
			t.Errorf("claims[%d] (%v) is newer than claims[%d] (%v)", i, claims[i].DateReported, i-1, claims[i-1].DateReported)
		}
	}
}

func TestVerifyClaimAccept(t *testing.T) {
	store := newFakeClaimStore()
	store.addItem(models.Item{ID: 7, Status: models.StatusFound})
	svc := newClaimService(store, models.User{ID: 3}, models.User{ID: 4}, models.User{ID: 5})

	winner, _ := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 3)
	loser1, _ := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 4)
	loser2, _ := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 5)

	decided, err := svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{ClaimID: winner.ID.String(), Status: "Accepted"})
	if err != nil {
		t.Fatalf("VerifyClaim: %v", err)
	}
	if decided.Status != models.ClaimAccepted {
		t.Errorf("winner status = %q; want accepted", decided.Status)
	}
	for _, id := range []models.EntityID{loser1.ID, loser2.ID} {
		c, _ := store.GetClaimByID(context.Background(), id)
		if c.Status != models.ClaimRejected {
			t.Errorf("sibling claim %d status = %q; want rejected", id, c.Status)
		}
	}

	item := store.items[7]
	if item.Status != models.StatusReturned {
		t.Errorf("item status = %q; want returned", item.Status)
	}
	if item.ReturnedTo == nil || *item.ReturnedTo != 3 {
		t.Errorf("item.ReturnedTo = %v; want 3", item.ReturnedTo)
	}
	if item.ReturnedOn == nil {
		t.Error("item.ReturnedOn not set")
	}
	if !item.ReturnedToOwner {
		t.Error("item.ReturnedToOwner not set")
	}
}

func TestVerifyClaimReject(t *testing.T) {
	store := newFakeClaimStore()
	store.addItem(models.Item{ID: 7, Status: models.StatusFound})
	svc := newClaimService(store, models.User{ID: 3}, models.User{ID: 4})

	rejected, _ := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 3)
	other, _ := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 4)

	decided, err := svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{ClaimID: rejected.ID.String(), Status: "rejected"})
	if err != nil {
		t.Fatalf("VerifyClaim: %v", err)
	}
	if decided.Status != models.ClaimRejected {
		t.Errorf("status = %q; want rejected", decided.Status)
	}

	c, _ := store.GetClaimByID(context.Background(), other.ID)
	if c.Status != models.ClaimPending {
		t.Errorf("unrelated claim status = %q; want pending", c.Status)
	}
	if store.items[7].Status != models.StatusFound {
		t.Errorf("item status = %q; want unchanged found", store.items[7].Status)
	}
}

func TestVerifyClaimAlreadyDecided(t *testing.T) {
	store := newFakeClaimStore()
	store.addItem(models.Item{ID: 7, Status: models.StatusFound})
	svc := newClaimService(store, models.User{ID: 3}, models.User{ID: 4})

	winner, _ := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 3)
	loser, _ := svc.SubmitClaim(context.Background(), models.SubmitClaimRequest{Item: "7"}, 4)

	if _, err := svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{ClaimID: winner.ID.String(), Status: "accepted"}); err != nil {
		t.Fatalf("first accept: %v", err)
	}

	// Re-deciding the winner or flipping an auto-rejected loser must refuse.
	if _, err := svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{ClaimID: winner.ID.String(), Status: "accepted"}); !errors.Is(err, models.ErrClaimAlreadyDecided) {
		t.Errorf("repeat accept: err = %v; want ErrClaimAlreadyDecided", err)
	}
	if _, err := svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{ClaimID: loser.ID.String(), Status: "accepted"}); !errors.Is(err, models.ErrClaimAlreadyDecided) {
		t.Errorf("accept of rejected sibling: err = %v; want ErrClaimAlreadyDecided", err)
	}

	accepted := 0
	for _, c := range store.claims {
		if c.Status == models.ClaimAccepted {
			accepted++
		}
	}
	if accepted != 1 {
		t.Errorf("accepted claims = %d; want exactly 1", accepted)
	}
}

func TestVerifyClaimValidation(t *testing.T) {
	store := newFakeClaimStore()
	svc := newClaimService(store)

	_, err := svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{})
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v; want validation error", err)
	}
	if want := "Claim Id is required, Status is required"; ve.Error() != want {
		t.Errorf("message = %q; want %q", ve.Error(), want)
	}

	_, err = svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{ClaimID: "1", Status: "maybe"})
	if !errors.As(err, &ve) || ve.Error() != "Invalid Status" {
		t.Errorf("bad decision: err = %v; want Invalid Status", err)
	}
}

func TestVerifyClaimUnknownClaim(t *testing.T) {
	store := newFakeClaimStore()
	svc := newClaimService(store)

	if _, err := svc.VerifyClaim(context.Background(), models.VerifyClaimRequest{ClaimID: "99", Status: "accepted"}); !errors.Is(err, models.ErrClaimNotFound) {
		t.Errorf("err = %v; want ErrClaimNotFound", err)
	}
}
