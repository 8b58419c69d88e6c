package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)

	return NewClient(testServer.URL+"/", time.Second)
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestGetOrder(t *testing.T) {
	testCases := []struct {
		testName      string
		handler       http.HandlerFunc
		expected      *models.Order
		expectedError error
	}{
		{
			testName: "Should decode plain order",
			handler:  reply(http.StatusOK, `{"id":42,"orderStatus":"PREPARING","paymentStatus":"PAID"}`),
			expected: &models.Order{ID: "42", OrderStatus: models.OrderStatusPreparing, PaymentStatus: "PAID"},
		},
		{
			testName: "Should unwrap data envelope",
			handler:  reply(http.StatusOK, `{"success":true,"data":{"orderStatus":"ACCEPTED","paymentStatus":"PENDING"}}`),
			expected: &models.Order{ID: "42", OrderStatus: models.OrderStatusAccepted, PaymentStatus: "PENDING"},
		},
		{
			testName:      "Should treat missing order as not found",
			handler:       reply(http.StatusNotFound, `{"message":"Order not found"}`),
			expectedError: ErrOrderNotFound,
		},
		{
			testName:      "Should treat foreign order as not found",
			handler:       reply(http.StatusForbidden, ``),
			expectedError: ErrOrderNotFound,
		},
		{
			testName:      "Should treat empty payload as not found",
			handler:       reply(http.StatusOK, `{"data":null}`),
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/orders/user/{orderId}", tc.handler)

			client := newTestClient(t, r)

			order, err := client.GetOrder(context.Background(), "42")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, order)
		})
	}
}

func TestGetOrderForwardsToken(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/orders/user/{orderId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "42", chi.URLParam(r, "orderId"))
		reply(http.StatusOK, `{"id":"42","orderStatus":"PENDING","paymentStatus":"SUCCESS"}`)(w, r)
	})

	client := newTestClient(t, r)

	order, err := client.GetOrder(WithToken(context.Background(), "secret"), "42")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, order.Payment())
}

func TestTokenSource(t *testing.T) {
	tokens := make(chan string, 2)

	r := chi.NewRouter()
	r.Get("/delivery/assignments/order/{orderId}", func(w http.ResponseWriter, r *http.Request) {
		tokens <- r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, r)

	current := "first"
	ctx := WithTokenSource(context.Background(), func() string { return current })

	_, err := client.GetAssignmentByOrder(ctx, "42")
	require.NoError(t, err)

	current = "second"

	_, err = client.GetAssignmentByOrder(ctx, "42")
	require.NoError(t, err)

	assert.Equal(t, "Bearer first", <-tokens)
	assert.Equal(t, "Bearer second", <-tokens)
	assert.Equal(t, "second", TokenFromContext(ctx))
	assert.Empty(t, TokenFromContext(context.Background()))
}

func TestGetAssignmentByOrder(t *testing.T) {
	testCases := []struct {
		testName string
		handler  http.HandlerFunc
		expected *models.Assignment
		hasError bool
	}{
		{
			testName: "Should return nothing on no content",
			handler:  reply(http.StatusNoContent, ``),
		},
		{
			testName: "Should return nothing on not found",
			handler:  reply(http.StatusNotFound, `{"message":"No assignment"}`),
		},
		{
			testName: "Should return nothing on null payload",
			handler:  reply(http.StatusOK, `null`),
		},
		{
			testName: "Should return nothing on empty envelope",
			handler:  reply(http.StatusOK, `{"data":null}`),
		},
		{
			testName: "Should decode and normalize assignment",
			handler:  reply(http.StatusOK, `{"data":{"id":7,"orderId":42,"deliveryPartnerId":3,"status":"picked_up"}}`),
			expected: &models.Assignment{ID: "7", OrderID: "42", DeliveryPartnerID: "3", Status: models.AssignmentPickedUp},
		},
		{
			testName: "Should surface server errors",
			handler:  reply(http.StatusInternalServerError, `{"error":"boom"}`),
			hasError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/delivery/assignments/order/{orderId}", tc.handler)

			client := newTestClient(t, r)

			assignment, err := client.GetAssignmentByOrder(context.Background(), "42")

			if tc.hasError {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Equal(t, "boom", apiErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, assignment)
		})
	}
}

func TestCreateAssignment(t *testing.T) {
	testCases := []struct {
		testName        string
		handler         http.HandlerFunc
		expected        *models.Assignment
		alreadyAssigned bool
		hasError        bool
	}{
		{
			testName: "Should return created assignment",
			handler:  reply(http.StatusCreated, `{"id":"a1","orderId":"42","status":"ASSIGNED"}`),
			expected: &models.Assignment{ID: "a1", OrderID: "42", Status: models.AssignmentAssigned},
		},
		{
			testName:        "Should detect conflict status",
			handler:         reply(http.StatusConflict, `{"message":"Conflict"}`),
			alreadyAssigned: true,
		},
		{
			testName:        "Should detect conflict code",
			handler:         reply(http.StatusBadRequest, `{"code":"already_assigned"}`),
			alreadyAssigned: true,
		},
		{
			testName:        "Should detect conflict message",
			handler:         reply(http.StatusBadRequest, `{"message":"Order is already assigned to a partner"}`),
			alreadyAssigned: true,
		},
		{
			testName: "Should report other failures",
			handler:  reply(http.StatusBadRequest, `{"message":"No partner available"}`),
			hasError: true,
		},
		{
			testName: "Should report empty success",
			handler:  reply(http.StatusOK, `{"data":null}`),
			hasError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/delivery/assignments", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "42", body["orderId"])

				tc.handler(w, r)
			})

			client := newTestClient(t, r)

			assignment, err := client.CreateAssignment(context.Background(), "42")

			switch {
			case tc.alreadyAssigned:
				assert.ErrorIs(t, err, ErrAlreadyAssigned)
				assert.Nil(t, assignment)
			case tc.hasError:
				assert.Error(t, err)
				assert.False(t, errors.Is(err, ErrAlreadyAssigned))
				assert.Nil(t, assignment)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expected, assignment)
			}
		})
	}
}

func TestGetReviewStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/orders/user/{orderId}/review-status", reply(http.StatusOK, `{"data":{"restaurantReviewed":1,"deliveryReviewed":"false"}}`))

	client := newTestClient(t, r)

	review, err := client.GetReviewStatus(context.Background(), "42")
	require.NoError(t, err)

	assert.True(t, bool(review.RestaurantReviewed))
	assert.False(t, bool(review.DeliveryReviewed))
	assert.True(t, review.NeedsRating())
}

func TestRateLimit(t *testing.T) {
	testCases := []struct {
		testName   string
		retryAfter string
		expected   time.Duration
	}{
		{testName: "Should honour Retry-After", retryAfter: "3", expected: 3 * time.Second},
		{testName: "Should fall back to default delay", retryAfter: "", expected: defaultRetryAfterDuration},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/delivery/assignments/order/{orderId}", func(w http.ResponseWriter, r *http.Request) {
				if tc.retryAfter != "" {
					w.Header().Set("Retry-After", tc.retryAfter)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			})

			client := newTestClient(t, r)

			_, err := client.GetAssignmentByOrder(context.Background(), "42")

			var rateLimitErr *RateLimitError
			require.ErrorAs(t, err, &rateLimitErr)
			assert.Equal(t, tc.expected, rateLimitErr.RetryAfter)
		})
	}
}

func TestCancelledContext(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/delivery/assignments/order/{orderId}", reply(http.StatusOK, `{"id":"a1","status":"ASSIGNED"}`))

	client := newTestClient(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetAssignmentByOrder(ctx, "42")
	assert.ErrorIs(t, err, context.Canceled)
}
