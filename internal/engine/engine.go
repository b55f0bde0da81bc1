// Package engine exposes the client-resident engine consumed by the UI
// layer: session lifecycle, the discovery/dedup pipeline and the document
// store behind one facade. The UI calls in and renders what comes back;
// everything stateful lives here.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/nuesadev/scholarengine/internal/discovery"
	"github.com/nuesadev/scholarengine/internal/logging"
	"github.com/nuesadev/scholarengine/internal/models"
	"github.com/nuesadev/scholarengine/internal/notify"
	"github.com/nuesadev/scholarengine/internal/session"
	"github.com/nuesadev/scholarengine/internal/store"
)

// Engine ties the document store, the session monitor and the discovery
// poller together. All methods are safe for concurrent use.
type Engine struct {
	store      *store.Store
	log        logging.Logger
	alerter    notify.Alerter
	discoverer discovery.Discoverer

	sessionCfg   session.Config
	pollInterval time.Duration
	welcomeDelay time.Duration

	onWarning func()
	onExpired func()

	center center

	mu            sync.Mutex
	monitor       *session.Monitor
	poller        *discovery.Poller
	alertsGranted bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger (default: discard).
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithAlerter sets the OS notification collaborator (default: none).
func WithAlerter(a notify.Alerter) Option {
	return func(e *Engine) { e.alerter = a }
}

// WithDiscoverer sets the external discovery collaborator. Without one,
// StartDiscoveryPolling is a no-op.
func WithDiscoverer(d discovery.Discoverer) Option {
	return func(e *Engine) { e.discoverer = d }
}

// WithSessionConfig overrides the inactivity schedule.
func WithSessionConfig(cfg session.Config) Option {
	return func(e *Engine) { e.sessionCfg = cfg }
}

// WithPollInterval overrides the discovery poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) { e.pollInterval = d }
}

// WithWelcomeDelay overrides the delay before the one-shot welcome notice.
func WithWelcomeDelay(d time.Duration) Option {
	return func(e *Engine) { e.welcomeDelay = d }
}

// OnSessionWarning registers the host callback for the expiry warning.
func OnSessionWarning(fn func()) Option {
	return func(e *Engine) { e.onWarning = fn }
}

// OnSessionExpired registers the host callback fired after a forced
// logout.
func OnSessionExpired(fn func()) Option {
	return func(e *Engine) { e.onExpired = fn }
}

// New creates an Engine over s.
func New(s *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:        s,
		log:          logging.Nop(),
		alerter:      notify.NopAlerter{},
		sessionCfg:   session.DefaultConfig(),
		pollInterval: discovery.DefaultInterval,
		welcomeDelay: discovery.DefaultWelcomeDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// --- identity ---

// Login creates or refreshes the current user and loads the notification
// view for the new session.
func (e *Engine) Login(ctx context.Context, p store.LoginParams) (models.User, error) {
	user, err := e.store.Login(ctx, p)
	if err != nil {
		return models.User{}, err
	}
	if err := e.reloadCenter(ctx); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CurrentUser returns the logged-in user, or nil when there is none.
func (e *Engine) CurrentUser(ctx context.Context) (*models.User, error) {
	return e.store.CurrentUser(ctx)
}

// UpdateUser replaces the current user record.
func (e *Engine) UpdateUser(ctx context.Context, user models.User) error {
	return e.store.UpdateUser(ctx, user)
}

// Logout tears down the session monitor and clears the persisted user.
func (e *Engine) Logout(ctx context.Context) error {
	e.StopSessionMonitor()
	return e.store.Logout(ctx)
}

// --- saved opportunities ---

func (e *Engine) SavedOpportunities(ctx context.Context) ([]models.SavedOpportunity, error) {
	return e.store.SavedOpportunities(ctx)
}

func (e *Engine) SaveOpportunity(ctx context.Context, opp models.SavedOpportunity) error {
	return e.store.SaveOpportunity(ctx, opp)
}

func (e *Engine) UpdateOpportunityStatus(ctx context.Context, id string, status models.OpportunityStatus) error {
	return e.store.UpdateOpportunityStatus(ctx, id, status)
}

func (e *Engine) RemoveOpportunity(ctx context.Context, id string) error {
	return e.store.RemoveOpportunity(ctx, id)
}

// --- sponsorships ---

func (e *Engine) CreateSponsorship(ctx context.Context, sp models.Sponsorship) (models.Sponsorship, error) {
	return e.store.CreateSponsorship(ctx, sp)
}

func (e *Engine) Sponsorships(ctx context.Context, providerEmail string) ([]models.Sponsorship, error) {
	return e.store.Sponsorships(ctx, providerEmail)
}

func (e *Engine) IncrementSponsorshipApplicants(ctx context.Context, id string) error {
	return e.store.IncrementSponsorshipApplicants(ctx, id)
}

// --- notifications ---

// Notifications returns the in-memory view, loading it from the store on
// first use.
func (e *Engine) Notifications(ctx context.Context) ([]models.Notification, error) {
	if err := e.ensureCenter(ctx); err != nil {
		return nil, err
	}
	return e.center.snapshot(), nil
}

// UnreadNotifications reports how many notifications are unread.
func (e *Engine) UnreadNotifications(ctx context.Context) (int, error) {
	if err := e.ensureCenter(ctx); err != nil {
		return 0, err
	}
	return e.center.unread(), nil
}

// AddNotification persists n and mirrors it into the in-memory view,
// showing an OS alert when permission was granted. Host-originated
// notifications (for example a sponsor announcement) enter here.
func (e *Engine) AddNotification(ctx context.Context, n models.Notification) error {
	if err := e.store.AddNotification(ctx, n); err != nil {
		return err
	}
	// reload rather than mirror: the store fills ID and Date
	if err := e.reloadCenter(ctx); err != nil {
		return err
	}
	e.showAlert(ctx, n)
	return nil
}

// MarkRead flips one notification to read, in the store and the view.
func (e *Engine) MarkRead(ctx context.Context, id string) error {
	if err := e.store.MarkRead(ctx, id); err != nil {
		return err
	}
	e.center.markRead(id)
	return nil
}

// MarkAllRead flips every notification to read, in the store and the view.
func (e *Engine) MarkAllRead(ctx context.Context) error {
	if err := e.store.MarkAllRead(ctx); err != nil {
		return err
	}
	e.center.markAllRead()
	return nil
}

// --- audit / privacy ---

func (e *Engine) SecurityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	return e.store.SecurityLogs(ctx)
}

// PurgeAllData stops the session machinery and erases all personal data.
func (e *Engine) PurgeAllData(ctx context.Context) error {
	e.StopSessionMonitor()
	if err := e.store.PurgeAllData(ctx); err != nil {
		return err
	}
	e.center.clear()
	return nil
}

func (e *Engine) ShouldShowRating(ctx context.Context) (bool, error) {
	return e.store.ShouldShowRating(ctx)
}

func (e *Engine) MarkRatingPrompted(ctx context.Context) error {
	return e.store.MarkRatingPrompted(ctx)
}

// --- OS alerts ---

// RequestAlertPermission asks the OS collaborator for permission and
// remembers the answer. Denial is not an error: persisted and in-memory
// notifications keep working, only OS alerts stay off.
func (e *Engine) RequestAlertPermission(ctx context.Context) bool {
	granted := e.alerter.RequestPermission(ctx)

	e.mu.Lock()
	e.alertsGranted = granted
	e.mu.Unlock()

	if !granted {
		e.log.Warn(ctx, "os alert permission denied")
		if err := e.store.AppendSecurityLog(ctx,
			"Notifications: OS alert permission denied", models.LogWarning); err != nil {
			e.log.Warn(ctx, "audit entry not written", "error", err)
		}
	}
	return granted
}

func (e *Engine) showAlert(ctx context.Context, n models.Notification) {
	e.mu.Lock()
	granted := e.alertsGranted
	e.mu.Unlock()
	if granted {
		e.alerter.Show(ctx, notify.PayloadFor(n))
	}
}

// --- session monitor lifecycle ---

// StartSessionMonitor installs the inactivity monitor for the current
// session. Expiry performs the persisted logout and fires the host's
// expired callback. Calling it with a monitor already installed is a
// no-op.
func (e *Engine) StartSessionMonitor(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.monitor != nil {
		return
	}

	m := session.NewMonitor(e.sessionCfg,
		session.WithNow(time.Now),
		session.WithLogger(e.log.With("component", "session")),
		session.OnWarning(func() {
			if e.onWarning != nil {
				e.onWarning()
			}
		}),
		session.OnExpire(func(expireCtx context.Context) {
			if err := e.store.ExpireSession(expireCtx); err != nil {
				e.log.Error(expireCtx, "expiry logout failed", "error", err)
			}
			e.mu.Lock()
			e.monitor = nil
			e.mu.Unlock()
			if e.onExpired != nil {
				e.onExpired()
			}
		}),
	)
	e.monitor = m
	m.Start(ctx)
}

// StopSessionMonitor tears the monitor down. Safe without one installed.
func (e *Engine) StopSessionMonitor() {
	e.mu.Lock()
	m := e.monitor
	e.monitor = nil
	e.mu.Unlock()
	if m != nil {
		m.Stop()
	}
}

// NotifyActivity forwards a host activity signal (pointer movement, key
// press, scroll) to the monitor.
func (e *Engine) NotifyActivity() {
	e.mu.Lock()
	m := e.monitor
	e.mu.Unlock()
	if m != nil {
		m.NotifyActivity()
	}
}

// SessionState reports the monitor state, NoSession when none installed.
func (e *Engine) SessionState() session.State {
	e.mu.Lock()
	m := e.monitor
	e.mu.Unlock()
	if m == nil {
		return session.StateNoSession
	}
	return m.State()
}

// --- discovery polling lifecycle ---

// StartDiscoveryPolling launches the poller. Without a discoverer this is
// a no-op. Calling it with polling already running is a no-op.
func (e *Engine) StartDiscoveryPolling(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.poller != nil || e.discoverer == nil {
		return nil
	}

	if err := e.ensureCenter(ctx); err != nil {
		return err
	}

	p := discovery.NewPoller(e.discoverer, e.store,
		discovery.WithInterval(e.pollInterval),
		discovery.WithWelcomeDelay(e.welcomeDelay),
		discovery.WithLogger(e.log.With("component", "poller")),
		discovery.WithAlerter(gatedAlerter{engine: e}),
		discovery.WithListener(func(n models.Notification) {
			e.center.prepend(n)
		}),
	)
	if err := p.Start(ctx); err != nil {
		return err
	}
	e.poller = p
	return nil
}

// StopDiscoveryPolling stops the poller. Safe without one running.
func (e *Engine) StopDiscoveryPolling() {
	e.mu.Lock()
	p := e.poller
	e.poller = nil
	e.mu.Unlock()
	if p != nil {
		p.Stop()
	}
}

// Close releases everything the engine owns.
func (e *Engine) Close() {
	e.StopDiscoveryPolling()
	e.StopSessionMonitor()
}

// gatedAlerter lets the poller show alerts only while permission is
// granted.
type gatedAlerter struct {
	engine *Engine
}

func (g gatedAlerter) RequestPermission(ctx context.Context) bool {
	return g.engine.RequestAlertPermission(ctx)
}

func (g gatedAlerter) Show(ctx context.Context, p notify.AlertPayload) {
	g.engine.mu.Lock()
	granted := g.engine.alertsGranted
	g.engine.mu.Unlock()
	if granted {
		g.engine.alerter.Show(ctx, p)
	}
}

// --- helpers ---

func (e *Engine) ensureCenter(ctx context.Context) error {
	if e.center.isLoaded() {
		return nil
	}
	return e.reloadCenter(ctx)
}

func (e *Engine) reloadCenter(ctx context.Context) error {
	list, err := e.store.Notifications(ctx)
	if err != nil {
		return err
	}
	e.center.replace(list)
	return nil
}
