package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseClaimDecision(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		err  bool
	}{
		{"lowercase accepted", "accepted", ClaimAccepted, false},
		{"uppercase accepted", "ACCEPTED", ClaimAccepted, false},
		{"mixed case rejected", "Rejected", ClaimRejected, false},
		{"surrounding spaces", "  accepted ", ClaimAccepted, false},
		{"pending is not a decision", "pending", "", true},
		{"empty", "", "", true},
		{"garbage", "approve", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClaimDecision(tc.raw)
			if tc.err {
				if !errors.Is(err, ErrInvalidDecision) {
					t.Fatalf("expected ErrInvalidDecision, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMarkReturnedSetsAllFieldsTogether(t *testing.T) {
	item := Item{ID: 7, Status: StatusLost}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	item.MarkReturned(42, now)

	if item.Status != StatusReturned {
		t.Errorf("expected status %q, got %q", StatusReturned, item.Status)
	}
	if item.ReturnedTo == nil || *item.ReturnedTo != 42 {
		t.Errorf("expected returned_to 42, got %v", item.ReturnedTo)
	}
	if item.ReturnedOn == nil || !item.ReturnedOn.Equal(now) {
		t.Errorf("expected returned_on %v, got %v", now, item.ReturnedOn)
	}
	if !item.ReturnedToOwner {
		t.Error("expected returned_to_owner to be true")
	}
}

func TestParseEntityID(t *testing.T) {
	cases := []struct {
		raw  string
		want EntityID
		err  bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseEntityID(tc.raw)
		if tc.err {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("ParseEntityID(%q): expected ValidationError, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEntityID(%q): unexpected error %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseEntityID(%q): expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}
