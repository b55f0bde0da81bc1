// Package session implements the inactivity state machine that keeps a
// user's session alive: Active while the host reports activity, Warning
// when the timeout approaches, Expired when it elapses.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/nuesadev/scholarengine/internal/logging"
	"github.com/nuesadev/scholarengine/internal/timex"
)

// State of the monitor. NoSession means the monitor is not installed.
type State string

const (
	StateNoSession State = "no_session"
	StateActive    State = "active"
	StateWarning   State = "warning"
	StateExpired   State = "expired"
)

// Defaults for the inactivity schedule. The check interval must stay below
// the warning buffer or the warning may never fire before expiry.
const (
	DefaultTimeout       = 15 * time.Minute
	DefaultWarningBuffer = 2 * time.Minute
	DefaultCheckInterval = 10 * time.Second
)

// Config is the inactivity schedule.
type Config struct {
	Timeout       time.Duration
	WarningBuffer time.Duration
	CheckInterval time.Duration
}

// DefaultConfig returns the stock 15m/2m/10s schedule.
func DefaultConfig() Config {
	return Config{
		Timeout:       DefaultTimeout,
		WarningBuffer: DefaultWarningBuffer,
		CheckInterval: DefaultCheckInterval,
	}
}

// valid reports whether the schedule guarantees a warning before expiry.
func (c Config) valid() bool {
	return c.Timeout > 0 &&
		c.WarningBuffer > 0 &&
		c.CheckInterval > 0 &&
		c.WarningBuffer < c.Timeout &&
		c.CheckInterval < c.WarningBuffer
}

// Monitor is the session inactivity state machine. Create one per login
// with NewMonitor, install it with Start and release it with Stop; the
// install/teardown pair must stay symmetric. NotifyActivity resets the
// inactivity clock from any host input signal.
type Monitor struct {
	cfg       Config
	now       timex.NowFunc
	log       logging.Logger
	onWarning func()
	onExpire  func(ctx context.Context)

	mu           sync.Mutex
	state        State
	lastActivity time.Time
	expired      bool
	started      bool
	cancel       context.CancelFunc
	done         chan struct{}
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithNow sets the clock (default time.Now).
func WithNow(now timex.NowFunc) MonitorOption {
	return func(m *Monitor) { m.now = now }
}

// WithLogger sets the logger (default: discard).
func WithLogger(l logging.Logger) MonitorOption {
	return func(m *Monitor) { m.log = l }
}

// OnWarning registers the callback fired once when the session enters
// Warning.
func OnWarning(fn func()) MonitorOption {
	return func(m *Monitor) { m.onWarning = fn }
}

// OnExpire registers the callback fired exactly once when the session
// expires. The callback performs the persisted logout and the user-visible
// expiry signal.
func OnExpire(fn func(ctx context.Context)) MonitorOption {
	return func(m *Monitor) { m.onExpire = fn }
}

// NewMonitor creates a stopped Monitor. A schedule that cannot guarantee a
// warning before expiry is replaced with the defaults.
func NewMonitor(cfg Config, opts ...MonitorOption) *Monitor {
	if !cfg.valid() {
		cfg = DefaultConfig()
	}
	m := &Monitor{
		cfg:   cfg,
		now:   time.Now,
		log:   logging.Nop(),
		state: StateNoSession,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start installs the monitor: the inactivity clock starts now and the
// periodic check begins. Starting a started monitor is a no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.expired = false
	m.state = StateActive
	m.lastActivity = m.now()

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	m.done = make(chan struct{})
	done := m.done
	m.mu.Unlock()

	go m.loop(loopCtx, done)

	m.log.Info(ctx, "session monitor installed",
		"timeout", m.cfg.Timeout, "warning_buffer", m.cfg.WarningBuffer)
}

// Stop tears the monitor down and releases its timer. Stopping a stopped
// monitor is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	m.started = false
	m.state = StateNoSession
	cancel, done := m.cancel, m.done
	m.mu.Unlock()

	cancel()
	<-done
}

// NotifyActivity resets the inactivity clock. The host invokes this for
// every user-activity signal it observes (pointer movement, key press,
// scroll). A Warning session returns to Active.
func (m *Monitor) NotifyActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return
	}
	m.lastActivity = m.now()
	if m.state == StateWarning {
		m.state = StateActive
	}
}

// State returns the current session state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.check(ctx) {
				return
			}
		}
	}
}

// check runs one tick of the inactivity comparison. It reports true when
// the session expired, which ends the loop: expiry is the monitor's own
// teardown.
func (m *Monitor) check(ctx context.Context) bool {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return true
	}

	inactive := m.now().Sub(m.lastActivity)
	switch {
	case inactive >= m.cfg.Timeout:
		if m.expired {
			m.mu.Unlock()
			return true
		}
		m.expired = true
		m.started = false
		m.state = StateExpired
		onExpire := m.onExpire
		m.mu.Unlock()

		m.log.Info(ctx, "session expired", "inactive", inactive)
		if onExpire != nil {
			onExpire(ctx)
		}

		m.mu.Lock()
		m.state = StateNoSession
		cancel := m.cancel
		m.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		return true

	case inactive >= m.cfg.Timeout-m.cfg.WarningBuffer:
		fireWarning := m.state != StateWarning
		m.state = StateWarning
		onWarning := m.onWarning
		m.mu.Unlock()

		if fireWarning {
			m.log.Info(ctx, "session warning", "inactive", inactive)
			if onWarning != nil {
				onWarning()
			}
		}
		return false

	default:
		m.mu.Unlock()
		return false
	}
}
