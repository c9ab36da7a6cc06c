package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"card-wallet-api/common"
	"card-wallet-api/config"
	"card-wallet-api/model"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	UserEmailKey contextKey = "userEmail"
)

// AuthMiddleware verifies the bearer token and attaches the resolved user
// identity to the request context. It guards every card and transaction
// route.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			appErr := common.NewAppError(http.StatusUnauthorized, "authorization token required", nil)
			appErr.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			appErr := common.NewAppError(http.StatusUnauthorized, "invalid authorization header format", nil)
			appErr.Send(w)
			return
		}

		tokenString := headerParts[1]
		claims := &model.AppClaims{}

		jwtKey := []byte(config.AppConfig.JWT.SecretKey)

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})

		if err != nil || !token.Valid {
			message := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "token expired"
			}
			appErr := common.NewAppError(http.StatusUnauthorized, message, err)
			appErr.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
