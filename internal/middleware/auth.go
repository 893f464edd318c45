package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/billow-app/billow/internal/auth"
	"github.com/billow-app/billow/internal/logger"
	"github.com/billow-app/billow/internal/models"
	"github.com/billow-app/billow/internal/storage"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the resolved caller attached to the request context by
// RequireAuth; it is the only way handlers learn who is calling.
type Identity struct {
	UserID string
	Email  string
}

type AuthMiddleware struct {
	jwt   *auth.JWTManager
	users storage.UserStorage
	log   *logger.Logger
}

func NewAuthMiddleware(jwt *auth.JWTManager, users storage.UserStorage) *AuthMiddleware {
	return &AuthMiddleware{
		jwt:   jwt,
		users: users,
		log:   logger.New("auth-middleware"),
	}
}

// RequireAuth fails closed: a missing, malformed, expired or mis-signed
// token answers 401, as does a subject that no longer resolves to a live
// user.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "Authorization header required")
			return
		}

		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			m.log.Debug("Invalid token: %v", err)
			unauthorized(w, "Invalid or expired token")
			return
		}

		user, err := m.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			m.log.Error("Failed to resolve token subject: %v", err)
			unauthorized(w, "Invalid or expired token")
			return
		}
		if user == nil {
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, Identity{
			UserID: user.ID,
			Email:  user.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerID returns the authenticated user id, or "" outside RequireAuth.
func CallerID(ctx context.Context) string {
	if id, ok := ctx.Value(identityKey).(Identity); ok {
		return id.UserID
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	body := models.ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Error:      "Unauthorized",
	}
	writeJSON(w, body)
}
