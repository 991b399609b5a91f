package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// exchangeRateResponse is the provider's payload shape.
type exchangeRateResponse struct {
	Date     string             `json:"date"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// RateFetcher fetches a live rate for one target currency.
type RateFetcher interface {
	FetchRate(ctx context.Context, target string) (float64, error)
}

// HTTPRateFetcher fetches rates from the external exchange-rate provider.
type HTTPRateFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPRateFetcher creates a fetcher with the 8 second provider timeout.
// An empty url selects the default provider.
func NewHTTPRateFetcher(url string) *HTTPRateFetcher {
	if url == "" {
		url = DefaultProviderURL
	}
	return &HTTPRateFetcher{
		client: &http.Client{Timeout: fetchTimeout},
		url:    url,
	}
}

// FetchRate fetches the USD->target rate from the provider.
func (f *HTTPRateFetcher) FetchRate(ctx context.Context, target string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload exchangeRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode rate payload: %w", err)
	}

	rate, ok := payload.Rates[target]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no usable %s rate in provider payload", target)
	}

	return rate, nil
}
