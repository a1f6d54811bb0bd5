package http

import "net/http"

// HealthHandler reports liveness. It deliberately skips the database so load
// balancer probes stay cheap; a failing store surfaces through the event
// endpoints instead.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
