package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/middlewares"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/services"
)

func orderIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderID := strings.TrimSpace(chi.URLParam(r, "orderId"))

	if orderID == "" {
		http.Error(w, "Order id is empty", http.StatusBadRequest)
		return "", false
	}

	return orderID, true
}

func StartTracking(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	viewer, ok := middlewares.GetViewerFromContext(w, r)
	if !ok {
		return
	}

	trackingService := middlewares.GetServiceFromContext[models.TrackingService](w, r, middlewares.TrackingServiceKey)
	if trackingService == nil {
		return
	}

	snapshot, started, err := (*trackingService).StartTracking(r.Context(), viewer, orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, fmt.Sprintf("Order %s was not found", orderID), http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrPaymentNotCompleted) {
			http.Error(w, "Payment is not completed", http.StatusPaymentRequired)
			return
		}

		if errors.Is(err, services.ErrTrackerClosed) {
			http.Error(w, "Tracking is unavailable", http.StatusServiceUnavailable)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during loading order: %s", err.Error()), http.StatusBadGateway)
		return
	}

	status := http.StatusOK
	if started {
		status = http.StatusCreated
	}

	middlewares.EncodeJSONResponse(w, status, snapshot)
}

func GetTracking(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	viewer, ok := middlewares.GetViewerFromContext(w, r)
	if !ok {
		return
	}

	trackingService := middlewares.GetServiceFromContext[models.TrackingService](w, r, middlewares.TrackingServiceKey)
	if trackingService == nil {
		return
	}

	snapshot, err := (*trackingService).GetSnapshot(viewer, orderID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, fmt.Sprintf("Order %s is not tracked", orderID), http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting snapshot: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, snapshot)
}

func StopTracking(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	viewer, ok := middlewares.GetViewerFromContext(w, r)
	if !ok {
		return
	}

	trackingService := middlewares.GetServiceFromContext[models.TrackingService](w, r, middlewares.TrackingServiceKey)
	if trackingService == nil {
		return
	}

	if err := (*trackingService).StopTracking(viewer, orderID); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, fmt.Sprintf("Order %s is not tracked", orderID), http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during stopping tracking: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
