package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPDiscoverer fetches discovery results from a JSON endpoint returning
// an array of Result objects. It is the stock Discoverer for hosts that
// point the engine at a feed; any failure is reported as an error for the
// poller to swallow.
type HTTPDiscoverer struct {
	url    string
	client *http.Client
}

func NewHTTPDiscoverer(url string) *HTTPDiscoverer {
	return &HTTPDiscoverer{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (d *HTTPDiscoverer) Discover(ctx context.Context) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building discovery request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching discovery feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery feed returned %s", resp.Status)
	}

	var results []Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding discovery feed: %w", err)
	}
	return results, nil
}
