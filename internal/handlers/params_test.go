package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestGetParam(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
		want string
	}{
		{"colon prefixed", "/item?:id=42", "id", "42"},
		{"plain query", "/item?id=42", "id", "42"},
		{"colon wins over plain", "/item?:id=1&id=2", "id", "1"},
		{"missing", "/item", "id", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := getParam(r, tt.key); got != tt.want {
				t.Errorf("getParam(%q) = %q; want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetParamNilRequest(t *testing.T) {
	if got := getParam(nil, "id"); got != "" {
		t.Errorf("getParam(nil) = %q; want empty", got)
	}
}
