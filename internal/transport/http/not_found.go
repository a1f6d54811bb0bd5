package http

import "net/http"

// NotFoundHandler answers unknown routes with the JSON error envelope, so
// clients never have to parse the plain-text default.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	})
}
