package invoice

import (
	"sync"
	"time"

	"encore.app/billing/model"
)

// DefaultQuietPeriod is how long a query must be stable before the filter
// re-runs.
const DefaultQuietPeriod = 300 * time.Millisecond

// SearchSession debounces query updates over a fixed item set. Every
// keystroke goes through SetQuery; the filter only re-runs once the query has
// been quiet for the configured period, and the results delivered are
// identical to calling FilterLineItems directly with the final query.
type SearchSession struct {
	items     []model.LineItem
	quiet     time.Duration
	onResults func(query string, results []model.LineItem)

	mu     sync.Mutex
	query  string
	timer  *time.Timer
	closed bool
}

// NewSearchSession creates a session over items. A non-positive quiet period
// falls back to DefaultQuietPeriod.
func NewSearchSession(items []model.LineItem, quiet time.Duration, onResults func(query string, results []model.LineItem)) *SearchSession {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &SearchSession{
		items:     items,
		quiet:     quiet,
		onResults: onResults,
	}
}

// SetQuery records the latest query and restarts the quiet-period timer.
func (s *SearchSession) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.query = query
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, s.deliver)
}

// Flush runs the filter immediately with the current query, without waiting
// out the quiet period.
func (s *SearchSession) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.deliver()
}

// Close stops the session; pending timers deliver nothing afterwards.
func (s *SearchSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *SearchSession) deliver() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	query := s.query
	results := FilterLineItems(s.items, query)
	onResults := s.onResults
	s.mu.Unlock()

	if onResults != nil {
		onResults(query, results)
	}
}
