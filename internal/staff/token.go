package staff

import (
	"net/http"
	"strings"
)

// ExtractToken pulls the staff token from a request: cookie first,
// Authorization header as fallback.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie("staff_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
