package animation

import (
	"sync"
	"time"
)

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// Scheduler owns a set of tickers and advances them when stepped.
//
// Each widget instance that animates should own its own Scheduler so that
// two instances never share timing state. The host frame loop calls Step
// once per frame. [DefaultScheduler] exists for code that has no natural
// owner; it is advanced by [StepTickers].
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	tickers map[*Ticker]struct{}
}

// DefaultScheduler is the package-level scheduler stepped by StepTickers.
var DefaultScheduler = NewScheduler(nil)

// NewScheduler creates a scheduler reading time from c. A nil clock
// defers to the package-level clock (see SetClock).
func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{
		clock:   c,
		tickers: make(map[*Ticker]struct{}),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// CreateTicker returns an inactive ticker bound to this scheduler.
func (s *Scheduler) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{callback: callback, scheduler: s}
}

// Step advances all active tickers. Tickers started or stopped by a
// callback take effect on the next step.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.tickers) == 0 {
		s.mu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(s.tickers))
	for ticker := range s.tickers {
		tickers = append(tickers, ticker)
	}
	s.mu.Unlock()

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers) > 0
}

// StopAll stops every active ticker.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	tickers := s.tickers
	s.tickers = make(map[*Ticker]struct{})
	s.mu.Unlock()
	for ticker := range tickers {
		ticker.isActive = false
	}
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.tickers[t] = struct{}{}
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	delete(s.tickers, t)
	s.mu.Unlock()
}

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback  func(elapsed time.Duration)
	scheduler *Scheduler
	isActive  bool
	start     time.Time
}

// NewTicker creates a ticker on the DefaultScheduler.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return DefaultScheduler.CreateTicker(callback)
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

// StepTickers advances the DefaultScheduler.
func StepTickers() {
	DefaultScheduler.Step()
}

// HasActiveTickers reports whether the DefaultScheduler has running tickers.
func HasActiveTickers() bool {
	return DefaultScheduler.HasActiveTickers()
}
