// Package store implements the local document store: typed collections over
// a key/value persistence medium, each enforcing its own invariant on write.
//
// Every mutating call performs a whole-collection read-decode-mutate-encode-
// write under one mutex, so each call is atomic with respect to every other.
// A blob that fails to decode degrades to the collection's empty value
// instead of surfacing an error; persistence here is best-effort by design.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nuesadev/scholarengine/internal/logging"
	"github.com/nuesadev/scholarengine/internal/medium"
	"github.com/nuesadev/scholarengine/internal/timex"
)

// Fixed collection keys on the persistence medium.
const (
	KeyUser          = "user"
	KeySaved         = "saved_opportunities"
	KeySponsorships  = "sponsorships"
	KeyNotifications = "notifications"
	KeyRatingPrompt  = "rating_prompt_date"
	KeySecurityLogs  = "security_logs"
)

// Collection caps. Both logs are newest-first and truncated after prepend.
const (
	NotificationCap = 50
	ActivityLogCap  = 20
)

// Store is the engine's only gateway to the persistence medium.
type Store struct {
	mu     sync.Mutex
	medium medium.Medium
	log    logging.Logger
	now    timex.NowFunc
	newID  func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger (default: discard).
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithNow sets the clock used for timestamps (default: time.Now).
func WithNow(now timex.NowFunc) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the record id generator (default: uuid.NewString).
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates a Store over m.
func New(m medium.Medium, opts ...Option) *Store {
	s := &Store{
		medium: m,
		log:    logging.Nop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// readCollection decodes the blob at key into dest. A missing key or a blob
// that fails to decode leaves dest untouched and returns found=false: the
// caller proceeds with the collection's empty value. Only medium failures
// are returned as errors.
func (s *Store) readCollection(ctx context.Context, key string, dest any) (bool, error) {
	blob, ok, err := s.medium.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("reading collection %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, dest); err != nil {
		s.log.Warn(ctx, "discarding corrupt collection blob", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// writeCollection encodes v and writes it back whole (last-write-wins).
func (s *Store) writeCollection(ctx context.Context, key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", key, err)
	}
	if err := s.medium.Put(ctx, key, blob); err != nil {
		return fmt.Errorf("writing collection %q: %w", key, err)
	}
	return nil
}

// syntheticIP fabricates a plausible client address for audit entries.
// There is no backend to observe a real one.
func syntheticIP() string {
	return fmt.Sprintf("197.210.64.%d", rand.IntN(255))
}

// syntheticDevice labels audit entries with the host platform.
func syntheticDevice() string {
	return fmt.Sprintf("Portal on %s (Encrypted)", runtime.GOOS)
}
