package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminAuth gates the back-office endpoints behind a shared password.
func AdminAuth(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Password")
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(password)) != 1 {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
