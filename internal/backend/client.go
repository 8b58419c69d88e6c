package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

var (
	ErrAlreadyAssigned = errors.New("order is already assigned")
	ErrOrderNotFound   = errors.New("order not found")
)

const alreadyAssignedCode = "ALREADY_ASSIGNED"

const defaultRetryAfterDuration = 60 * time.Second

// APIError is a non-successful answer of the backend.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

// RateLimitError is returned when the backend answers 429.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("backend rate limit exceeded, retry after %s", e.RetryAfter)
}

// Client talks to the food-delivery backend.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ models.DeliveryBackend = (*Client)(nil)

// NewClient creates a client for the backend at endpoint. A zero timeout leaves
// calls bounded only by their context.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type tokenKey struct{}

// WithToken attaches the viewer's bearer token to calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenSource yields the current bearer token of a long-lived caller.
type TokenSource func() string

// WithTokenSource makes calls made with ctx read the token from source on every request.
func WithTokenSource(ctx context.Context, source TokenSource) context.Context {
	return context.WithValue(ctx, tokenKey{}, source)
}

// TokenFromContext returns the token calls made with ctx carry.
func TokenFromContext(ctx context.Context) string {
	switch token := ctx.Value(tokenKey{}).(type) {
	case string:
		return token
	case TokenSource:
		return token()
	}

	return ""
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/orders/user/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusNoContent:
		return nil, errors.Wrapf(ErrOrderNotFound, "order %s", orderID)
	}

	if status != http.StatusOK {
		return nil, parseAPIError(status, body)
	}

	var order models.Order
	found, err := decodePayload(body, &order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode order")
	}

	if !found {
		return nil, errors.Wrapf(ErrOrderNotFound, "order %s", orderID)
	}

	if order.ID == "" {
		order.ID = models.ID(orderID)
	}

	return &order, nil
}

func (c *Client) GetAssignmentByOrder(ctx context.Context, orderID string) (*models.Assignment, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/delivery/assignments/order/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNoContent || status == http.StatusNotFound {
		return nil, nil
	}

	if status != http.StatusOK {
		return nil, parseAPIError(status, body)
	}

	return decodeAssignment(body)
}

func (c *Client) CreateAssignment(ctx context.Context, orderID string) (*models.Assignment, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/delivery/assignments", map[string]string{"orderId": orderID})
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		apiErr := parseAPIError(status, body)
		if isAlreadyAssigned(apiErr) {
			return nil, errors.Wrap(ErrAlreadyAssigned, apiErr.Error())
		}

		return nil, apiErr
	}

	assignment, err := decodeAssignment(body)
	if err != nil {
		return nil, err
	}

	if assignment == nil {
		return nil, errors.Errorf("backend created no assignment for order %s", orderID)
	}

	return assignment, nil
}

func (c *Client) GetReviewStatus(ctx context.Context, orderID string) (*models.ReviewStatus, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/orders/user/"+url.PathEscape(orderID)+"/review-status", nil)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, parseAPIError(status, body)
	}

	var reviewStatus models.ReviewStatus
	if _, err := decodePayload(body, &reviewStatus); err != nil {
		return nil, errors.Wrap(err, "failed to decode review status")
	}

	return &reviewStatus, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (int, []byte, error) {
	var reqBody io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errors.Wrap(err, "failed to marshal request")
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to send %s %s", method, path)
	}

	defer res.Body.Close()

	var buf bytes.Buffer

	if _, err := buf.ReadFrom(res.Body); err != nil {
		return 0, nil, errors.Wrap(err, "failed to read from response body")
	}

	logger.Log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
	)

	if res.StatusCode == http.StatusTooManyRequests {
		return 0, nil, &RateLimitError{RetryAfter: parseRetryAfter(res.Header.Get("Retry-After"))}
	}

	return res.StatusCode, buf.Bytes(), nil
}

func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds <= 0 {
		return defaultRetryAfterDuration
	}

	return time.Duration(seconds) * time.Second
}

func decodeAssignment(body []byte) (*models.Assignment, error) {
	var assignment models.Assignment

	found, err := decodePayload(body, &assignment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode assignment")
	}

	if !found || (assignment.ID == "" && assignment.Status == "") {
		return nil, nil
	}

	assignment.Status = models.NormalizeAssignmentStatus(string(assignment.Status))

	return &assignment, nil
}

// decodePayload unmarshals body into target, unwrapping a {"data": ...} envelope
// when the backend uses one. It reports false for an empty or null payload.
func decodePayload(body []byte, target interface{}) (bool, error) {
	payload := bytes.TrimSpace(body)

	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return false, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err == nil {
		data, hasData := envelope["data"]
		_, hasID := envelope["id"]

		if hasData && !hasID {
			payload = bytes.TrimSpace(data)

			if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
				return false, nil
			}
		}
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return false, err
	}

	return true, nil
}

type errorBody struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Code = parsed.Code
		apiErr.Message = parsed.Message

		if apiErr.Message == "" {
			apiErr.Message = parsed.Error
		}

		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))

	return apiErr
}

// isAlreadyAssigned prefers structured signals and falls back to the message text
// for backends that only report it in prose.
func isAlreadyAssigned(apiErr *APIError) bool {
	if apiErr.StatusCode == http.StatusConflict || strings.EqualFold(apiErr.Code, alreadyAssignedCode) {
		return true
	}

	return strings.Contains(strings.ToLower(apiErr.Message), "already assigned")
}
