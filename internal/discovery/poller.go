package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nuesadev/scholarengine/internal/logging"
	"github.com/nuesadev/scholarengine/internal/models"
	"github.com/nuesadev/scholarengine/internal/notify"
	"github.com/nuesadev/scholarengine/internal/timex"
)

// Defaults for the polling schedule.
const (
	DefaultInterval     = 3 * time.Minute
	DefaultWelcomeDelay = 5 * time.Second
)

// The distinguished one-shot notice surfaced shortly after the poller
// starts. It travels the same format+dedup+persist path as discovered
// results, so it appears at most once per process lifetime.
const (
	WelcomeTitle   = "Security & Privacy Protocol Active"
	WelcomeMessage = "Encryption layer established. All academic data is isolated and protected."
)

// NotificationSink is the slice of the document store the poller writes
// through.
type NotificationSink interface {
	Notifications(ctx context.Context) ([]models.Notification, error)
	AddNotification(ctx context.Context, n models.Notification) error
}

// Poller runs the discovery loop: each tick it calls the Discoverer,
// formats the results, drops every canonical message it has already
// surfaced, and fans the rest out to the sink, the alerter and any
// registered listener.
//
// The seen-set grows monotonically for the poller's lifetime and is
// rehydrated from the persisted notification log at Start.
type Poller struct {
	discoverer Discoverer
	sink       NotificationSink
	alerter    notify.Alerter
	log        logging.Logger
	interval   time.Duration
	welcome    time.Duration
	onSurfaced func(models.Notification)

	now   timex.NowFunc
	newID func() string

	mu   sync.Mutex
	seen map[string]struct{}

	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// PollerOption configures a Poller.
type PollerOption func(*Poller)

// WithInterval sets the poll interval (default 3m).
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) { p.interval = d }
}

// WithWelcomeDelay sets the delay before the one-shot welcome notice
// (default 5s).
func WithWelcomeDelay(d time.Duration) PollerOption {
	return func(p *Poller) { p.welcome = d }
}

// WithAlerter sets the OS alert collaborator (default: none).
func WithAlerter(a notify.Alerter) PollerOption {
	return func(p *Poller) { p.alerter = a }
}

// WithLogger sets the logger (default: discard).
func WithLogger(l logging.Logger) PollerOption {
	return func(p *Poller) { p.log = l }
}

// WithListener registers the in-memory fan-out target invoked for every
// newly surfaced notification.
func WithListener(fn func(models.Notification)) PollerOption {
	return func(p *Poller) { p.onSurfaced = fn }
}

// NewPoller creates a stopped Poller.
func NewPoller(d Discoverer, sink NotificationSink, opts ...PollerOption) *Poller {
	p := &Poller{
		discoverer: d,
		sink:       sink,
		alerter:    notify.NopAlerter{},
		log:        logging.Nop(),
		interval:   DefaultInterval,
		welcome:    DefaultWelcomeDelay,
		now:        time.Now,
		newID:      uuid.NewString,
		seen:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start rehydrates the seen-set from the persisted notification log and
// launches the poll loop. Starting a started poller is a no-op.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return nil
	}
	p.started = true
	p.mu.Unlock()

	existing, err := p.sink.Notifications(ctx)
	if err != nil {
		p.mu.Lock()
		p.started = false
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	for _, n := range existing {
		p.seen[n.Message] = struct{}{}
	}
	p.mu.Unlock()

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.loop(loopCtx)

	p.log.Info(ctx, "discovery polling started",
		"interval", p.interval, "rehydrated", len(existing))
	return nil
}

// Stop cancels the loop and waits for it to exit. A discovery response
// still in flight is discarded, never written. Stopping a stopped poller is
// a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	welcome := time.NewTimer(p.welcome)
	defer welcome.Stop()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-welcome.C:
			p.surfaceWelcome(ctx)
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

// cycle runs one Idle→Fetching→Idle transition. Collaborator failures are
// swallowed: nothing user-visible happens and the next tick retries.
func (p *Poller) cycle(ctx context.Context) {
	results, err := p.discoverer.Discover(ctx)
	if err != nil {
		p.log.Warn(ctx, "discovery cycle skipped", "error", err)
		return
	}

	// a response that lands after teardown is discarded
	if ctx.Err() != nil {
		return
	}

	surfaced := 0
	for _, r := range results {
		n := notify.FormatDiscovered(r.Title, r.Provider, r.Type, r.Link)
		if p.publish(ctx, n) {
			surfaced++
		}
	}
	p.log.Debug(ctx, "discovery cycle complete",
		"results", len(results), "surfaced", surfaced)
}

// surfaceWelcome pushes the one-shot security notice through the regular
// dedup+persist path.
func (p *Poller) surfaceWelcome(ctx context.Context) {
	n := notify.FormatDiscovered("Data Usage & Privacy", "Portal Compliance", "security", "")
	n.Title = WelcomeTitle
	n.Message = WelcomeMessage
	p.publish(ctx, n)
}

// publish surfaces n unless its canonical message was already seen.
// Marking seen and fanning out happen together so a message is surfaced at
// most once per process lifetime, even across overlapping cycles. Reports
// whether the notification was surfaced.
func (p *Poller) publish(ctx context.Context, n models.Notification) bool {
	if ctx.Err() != nil {
		return false
	}

	p.mu.Lock()
	if _, dup := p.seen[n.Message]; dup {
		p.mu.Unlock()
		return false
	}
	p.seen[n.Message] = struct{}{}
	p.mu.Unlock()

	// stamp here, not in the formatter, so every fan-out target sees the
	// same record
	n.ID = p.newID()
	n.Date = p.now()

	if err := p.sink.AddNotification(ctx, n); err != nil {
		p.log.Warn(ctx, "notification not persisted", "error", err)
	}
	p.alerter.Show(ctx, notify.PayloadFor(n))
	if p.onSurfaced != nil {
		p.onSurfaced(n)
	}
	return true
}
