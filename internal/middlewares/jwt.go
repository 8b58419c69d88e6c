package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/services"
)

type viewerFieldType string

const viewerField viewerFieldType = "viewerField"

type AuthMiddlewareConfig struct {
	excludePaths []string
}

func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths lists path prefixes served without authentication.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// Middleware validates the bearer token and stores the viewer in the request context.
// Browsers can't set headers on websocket upgrades, so the token is also accepted
// as the access_token query parameter.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		jwtService := GetServiceFromContext[models.JWTService](w, r, JwtServiceKey)
		if jwtService == nil {
			return
		}

		tokenString := bearerToken(r)
		if tokenString == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsExpired) {
				http.Error(w, "Token is expired", http.StatusUnauthorized)
				return
			}

			if errors.Is(err, services.ErrTokenIsInvalid) {
				http.Error(w, "Token is invalid", http.StatusUnauthorized)
				return
			}

			http.Error(w, fmt.Sprintf("Error occurred during validating token: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			http.Error(w, "Token doesn't contain a subject", http.StatusUnauthorized)
			return
		}

		viewer := models.Viewer{Subject: subject, Token: tokenString}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), viewerField, viewer)))
	})
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	return r.URL.Query().Get("access_token")
}

func GetViewerFromContext(w http.ResponseWriter, r *http.Request) (models.Viewer, bool) {
	viewer, ok := r.Context().Value(viewerField).(models.Viewer)

	if !ok {
		http.Error(w, "Could not retrieve viewer from context", http.StatusInternalServerError)
		return models.Viewer{}, false
	}

	return viewer, true
}
