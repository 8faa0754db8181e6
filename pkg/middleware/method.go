package middleware

import (
	"net/http"

	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
)

// GetOnly recusa qualquer método diferente de GET com 405 INVALID_METHOD.
func GetOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				apiErrors.WriteError(w, apiErrors.ErrInvalidMethod, "Only GET requests are allowed.", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
