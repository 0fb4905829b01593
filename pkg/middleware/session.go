package middleware

import (
	"net/http"

	"contestboard/pkg/session"
)

const headerSessionID = "X-Session-Id"

func writeJSONError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		return
	}
}

// CheckSession rejects requests whose X-Session-Id header is missing
// or not in the registry, before any handler side effect.
func CheckSession(sessions session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(headerSessionID)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, `{"success":false,"message":"Session expired"}`)
				return
			}

			ok, err := sessions.IsValid(token)
			if err != nil || !ok {
				writeJSONError(w, http.StatusUnauthorized, `{"success":false,"message":"Session expired"}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
