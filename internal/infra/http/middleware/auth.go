package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// ServiceAuth exige Authorization: Bearer <service token> nos endpoints
// administrativos. Comparação em tempo constante para não vazar o token
// por timing.
func ServiceAuth(serviceToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || serviceToken == "" ||
				subtle.ConstantTimeCompare([]byte(token), []byte(serviceToken)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "token de autorização ausente ou inválido",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
