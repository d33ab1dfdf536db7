package middleware

import (
	"net/http"

	"munchbox-be/internal/logger"
	"munchbox-be/internal/staff"
	"munchbox-be/internal/utils"

	"go.uber.org/zap"
)

// StaffOnly rejects requests without a valid staff token. The gate is a
// shared credential, so the only claim that matters is that a token was
// issued by us and has not expired.
func StaffOnly(auth *staff.Authenticator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := staff.ExtractToken(r)
		if token == "" {
			utils.WriteJSONError(w, "staff authentication required", http.StatusUnauthorized)
			return
		}

		if _, err := auth.ParseToken(token); err != nil {
			logger.FromCtx(r.Context()).Warn("rejected staff token", zap.Error(err))
			utils.WriteJSONError(w, "invalid or expired staff token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
