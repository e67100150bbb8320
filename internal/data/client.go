package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

// PriceAPIClient fetches natural gas settlement histories from a commodity
// price API. Requests are rate limited so a batch of hub queries stays
// inside the vendor's per-minute quota.
type PriceAPIClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client

	limiter *rate.Limiter
	logger  *logrus.Logger
}

// NewPriceAPIClient creates a client. If baseURL is empty it defaults to the
// hosted endpoint; the limiter allows 2 requests/second with a small burst.
func NewPriceAPIClient(apiKey, baseURL string, logger *logrus.Logger) *PriceAPIClient {
	if baseURL == "" {
		baseURL = "https://api.gaspricefeed.io"
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PriceAPIClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 5),
		logger:  logger,
	}
}

// QuerySeriesParams defines parameters for querying a hub's price history.
type QuerySeriesParams struct {
	Hub       string    // e.g. "HENRY"
	StartDate time.Time // inclusive
	EndDate   time.Time // inclusive
	Frequency string    // "daily" or "monthly" (default: "monthly")
}

// PriceAPIError represents an error response from the price API.
type PriceAPIError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // for rate limit errors
}

func (e *PriceAPIError) Error() string {
	return e.Message
}

// QuerySeries fetches the settlement price history for one hub. Responses
// may be served from the development cache when it is enabled.
func (c *PriceAPIClient) QuerySeries(ctx context.Context, params QuerySeriesParams) (*model.PriceHistoryResponse, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if params.Hub == "" {
		return nil, fmt.Errorf("hub is required")
	}
	if params.StartDate.IsZero() || params.EndDate.IsZero() {
		return nil, fmt.Errorf("start_date and end_date are required")
	}
	if params.StartDate.After(params.EndDate) {
		return nil, fmt.Errorf("start_date must be before end_date")
	}

	cache := GetCache()
	if cache != nil {
		key := GenerateCacheKey(params)
		if cached, found := cache.Get(key); found {
			c.logger.WithFields(logrus.Fields{
				"hub":    params.Hub,
				"points": len(cached.Data),
			}).Debug("price cache hit")
			return cached, nil
		}
	}

	path := fmt.Sprintf("/v1/hubs/%s/prices", url.PathEscape(params.Hub))
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("start_date", params.StartDate.Format("2006-01-02"))
	q.Set("end_date", params.EndDate.Format("2006-01-02"))
	if params.Frequency != "" {
		q.Set("frequency", params.Frequency)
	} else {
		q.Set("frequency", "monthly")
	}
	u.RawQuery = q.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	c.logger.WithFields(logrus.Fields{
		"hub":   params.Hub,
		"start": params.StartDate.Format("2006-01-02"),
		"end":   params.EndDate.Format("2006-01-02"),
	}).Debug("price API request")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read price API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &PriceAPIError{
			StatusCode: resp.StatusCode,
			Code:       "PRICE_API_ERROR",
			Message:    fmt.Sprintf("price API returned %d", resp.StatusCode),
			RetryAfter: resp.Header.Get("Retry-After"),
		}
		var wire struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if jsonErr := json.Unmarshal(body, &wire); jsonErr == nil && wire.Error.Message != "" {
			apiErr.Code = wire.Error.Code
			apiErr.Message = wire.Error.Message
		}
		return nil, apiErr
	}

	var out model.PriceHistoryResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode price API response: %w", err)
	}
	out.StatusCode = resp.StatusCode

	if cache := GetCache(); cache != nil {
		cache.Set(GenerateCacheKey(params), &out)
	}
	return &out, nil
}
