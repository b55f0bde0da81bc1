// Package discovery implements the timer-driven pipeline that turns
// externally-sourced opportunity results into at-most-once notifications.
package discovery

import "context"

// Result is one raw discovery result as returned by the external
// collaborator. Type is free-form here; the formatter normalizes it.
type Result struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Type     string `json:"type"`
	Link     string `json:"link,omitempty"`
}

// Discoverer is the external discovery collaborator. Discover may take
// arbitrarily long and may fail; the poller swallows failures and the next
// tick retries. There is no latency contract.
type Discoverer interface {
	Discover(ctx context.Context) ([]Result, error)
}

// DiscovererFunc adapts a function to the Discoverer interface.
type DiscovererFunc func(ctx context.Context) ([]Result, error)

func (f DiscovererFunc) Discover(ctx context.Context) ([]Result, error) { return f(ctx) }
