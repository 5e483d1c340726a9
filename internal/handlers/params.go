package handlers

import "net/http"

// getParam reads a path or query parameter. The router registers path
// params under a leading colon; plain query params and the net/http
// PathValue API are checked as fallbacks so handlers stay router-agnostic.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}
