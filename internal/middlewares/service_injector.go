package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

type key int

const (
	JwtServiceKey key = iota
	TrackingServiceKey
)

func ServiceInjectorMiddleware(
	jwtService models.JWTService,
	trackingService models.TrackingService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), JwtServiceKey, jwtService)
			ctx = context.WithValue(ctx, TrackingServiceKey, trackingService)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
