package transport

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/fulfillment/cmd/config"
	"github.com/muhammadheryan/fulfillment/constant"
	redisrepo "github.com/muhammadheryan/fulfillment/repository/redis"
	"github.com/muhammadheryan/fulfillment/utils/errors"
)

// AuthMiddleware validates JWT bearer tokens issued by the auth service.
// The token's jti must still map to a live session in the shared Redis.
// Public endpoints (health, swagger) and internal endpoints (guarded by
// their own static key) pass through.
func AuthMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	redisRepo := redisrepo.NewRepository()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			tokenString := strings.TrimPrefix(auth, "Bearer ")

			userID, err := validateToken(r.Context(), cfg.Auth.JWTSecret, tokenString, redisRepo)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateToken(ctx context.Context, secret, tokenString string, redisRepo redisrepo.Repository) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, err
	}

	// Session must still exist for the token's jti
	sessionUserID, err := redisRepo.GetSession(ctx, claims.ID)
	if err != nil || sessionUserID != userID {
		return 0, jwt.ErrTokenInvalidId
	}

	return userID, nil
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/health" {
		return true
	}

	return false
}
