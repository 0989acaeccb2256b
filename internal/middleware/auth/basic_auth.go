package auth

import (
	"crypto/subtle"
	"net/http"
)

const realm = "Paint Quote Admin"

// BasicAuth guards the admin routes. An empty username refuses every request.
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || username == "" || !equal(user, username) || !equal(pass, password) {
				requireAuth(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func requireAuth(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
