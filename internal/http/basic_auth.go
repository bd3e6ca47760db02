package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
)

// BasicAuth restricts access to the given handler to a single set of credentials.
// An empty username disables the check.
func BasicAuth(expectedUsername, expectedPassword string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if expectedUsername == "" {
			return next
		}

		expectedUsernameHash := sha256.Sum256([]byte(expectedUsername))
		expectedPasswordHash := sha256.Sum256([]byte(expectedPassword))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if ok {
				usernameHash := sha256.Sum256([]byte(username))
				passwordHash := sha256.Sum256([]byte(password))

				usernameMatch := (subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:]) == 1)
				passwordMatch := (subtle.ConstantTimeCompare(passwordHash[:], expectedPasswordHash[:]) == 1)

				if usernameMatch && passwordMatch {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}
