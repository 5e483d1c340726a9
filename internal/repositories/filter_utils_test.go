package repositories

import (
	"strings"
	"testing"
)

func TestItemSearchClause(t *testing.T) {
	where, params := itemSearchClause("wallet")
	if !strings.HasPrefix(where, " WHERE ") {
		t.Fatalf("expected WHERE prefix, got %q", where)
	}
	if got := strings.Count(where, "LIKE ?"); got != len(params) {
		t.Fatalf("placeholder count %d does not match params %d", got, len(params))
	}
	for _, p := range params {
		if p != "%wallet%" {
			t.Fatalf("expected wrapped pattern, got %v", p)
		}
	}

	where, params = itemSearchClause("   ")
	if where != "" || params != nil {
		t.Fatalf("expected empty clause for blank search, got %q %v", where, params)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name         string
		total, limit int
		want         int
	}{
		{"exact multiple", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"single partial page", 3, 10, 1},
		{"no rows", 0, 10, 0},
		{"zero limit", 15, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalPages(tc.total, tc.limit); got != tc.want {
				t.Fatalf("TotalPages(%d, %d) = %d, expected %d", tc.total, tc.limit, got, tc.want)
			}
		})
	}
}
