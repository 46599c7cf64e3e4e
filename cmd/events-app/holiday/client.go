package holiday

import (
	"context"
	"events-app-backend/cmd/events-app/model"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Calendarific API endpoint.
	DefaultBaseURL = "https://calendarific.com/api/v2"
	// DefaultCountry is the ISO-3166 country holidays are fetched for.
	DefaultCountry = "US"
	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 10 * time.Second
	// DefaultRateLimit keeps bursts of page loads from draining the API quota.
	DefaultRateLimit = rate.Limit(2.0)
)

// Client fetches holidays from the Calendarific API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	country    string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets a custom rate limit (requests per second).
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithCountry sets the country code sent with every request.
func WithCountry(country string) Option {
	return func(c *Client) {
		c.country = country
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		country: DefaultCountry,
		limiter: rate.NewLimiter(DefaultRateLimit, 1),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// MonthHolidays returns the simplified holidays of the given month.
func (c *Client) MonthHolidays(ctx context.Context, year int, month time.Month) ([]model.Holiday, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("country", c.country)
	params.Set("year", strconv.Itoa(year))
	params.Set("month", strconv.Itoa(int(month)))

	requestURL := fmt.Sprintf("%s/holidays?%s", c.baseURL, params.Encode())

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}

	resp, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}

	return Transform(resp), nil
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Calendarific reports API errors in meta.code, so only non-JSON
	// failures are rejected here.
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("server error (%d)", resp.StatusCode)
	}

	return body, nil
}
