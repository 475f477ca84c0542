package offer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"parkpass/internal/booking"
	"parkpass/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidRequest     = errors.New("invalid booking request")
	ErrMalformedResponse  = errors.New("malformed offer response")
	ErrIncompleteResponse = errors.New("incomplete offer response")
)

// maxBodyBytes bounds how much of a response body is read
const maxBodyBytes = 1 << 20

// Config holds the Offer Service location
type Config struct {
	BaseURL string
	Path    string
	Timeout time.Duration
}

// Client calls the Offer Service over HTTP
type Client struct {
	endpoint   string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *logger.Logger
}

// NewClient creates an Offer Service client
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.TrimLeft(cfg.Path, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		validate: NewValidator(),
		logger:   log,
	}
}

// Endpoint returns the full offer URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RequestOffer posts the booking and decodes the offer. Every failure is
// returned as a *booking.ServiceError whose message is fit for display.
func (c *Client) RequestOffer(ctx context.Context, req booking.BookingRequest) (*booking.OfferResult, error) {
	start := time.Now()
	result, status, err := c.do(ctx, req)
	c.logger.LogOfferRequest(ctx, req.Location, req.BookedTicket, status, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, req booking.BookingRequest) (*booking.OfferResult, int, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, 0, serviceError(fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, 0, serviceError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, serviceError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, serviceError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, serviceError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &booking.ServiceError{
			Message: failureMessage(resp.StatusCode, body),
			Err:     fmt.Errorf("offer service returned status %d", resp.StatusCode),
		}
	}

	var result booking.OfferResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, resp.StatusCode, serviceError(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	if err := c.validate.Struct(result); err != nil {
		return nil, resp.StatusCode, serviceError(fmt.Errorf("%w: %v", ErrIncompleteResponse, err))
	}
	return &result, resp.StatusCode, nil
}

// failureMessage prefers the message the service put in its error body
func failureMessage(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "error", "errors.0.message"} {
			if v := gjson.GetBytes(body, path); v.Type == gjson.String && strings.TrimSpace(v.String()) != "" {
				return v.String()
			}
		}
	}
	return fmt.Sprintf("Request failed with status code %d", status)
}

func serviceError(err error) *booking.ServiceError {
	return &booking.ServiceError{Message: err.Error(), Err: err}
}
