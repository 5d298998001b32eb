package middleware

import (
	"errors"
	"net/http"

	"hostel-booking/pkg/apperrors"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWT middleware validates the bearer token issued at login and puts the
// student's identity on the request context.
func JWT(jwtService *auth.JWTService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.ExtractBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				utils.ResponseUnauthorized(w, err.Error())
				return
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, apperrors.ErrTokenExpired) {
					utils.ResponseUnauthorized(w, "Token expired")
					return
				}
				logger.Warn("Invalid token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			id, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Token subject is not a UUID", zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetStudentContext(r.Context(), id, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
