package invoice

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/billing/model"
)

type deliveryRecorder struct {
	mu         sync.Mutex
	queries    []string
	resultSets [][]model.LineItem
}

func (r *deliveryRecorder) record(query string, results []model.LineItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
	r.resultSets = append(r.resultSets, results)
}

func (r *deliveryRecorder) deliveries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func (r *deliveryRecorder) lastResults() []model.LineItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.resultSets) == 0 {
		return nil
	}
	return r.resultSets[len(r.resultSets)-1]
}

func TestSearchSession_DebouncesRapidTyping(t *testing.T) {
	items := []model.LineItem{namedItem("Blood Test"), namedItem("X-Ray")}
	rec := &deliveryRecorder{}

	session := NewSearchSession(items, 30*time.Millisecond, rec.record)
	defer session.Close()

	// Keystrokes arriving faster than the quiet period collapse to one run.
	session.SetQuery("b")
	session.SetQuery("bl")
	session.SetQuery("blood")

	assert.Eventually(t, func() bool {
		return len(rec.deliveries()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"blood"}, rec.deliveries())
	require.Len(t, rec.lastResults(), 1)
	assert.Equal(t, "Blood Test", rec.lastResults()[0].DisplayName())
}

func TestSearchSession_SeparatedQueriesEachDeliver(t *testing.T) {
	items := []model.LineItem{namedItem("Blood Test"), namedItem("X-Ray")}
	rec := &deliveryRecorder{}

	session := NewSearchSession(items, 20*time.Millisecond, rec.record)
	defer session.Close()

	session.SetQuery("blood")
	assert.Eventually(t, func() bool { return len(rec.deliveries()) == 1 }, time.Second, 5*time.Millisecond)

	session.SetQuery("xray")
	assert.Eventually(t, func() bool { return len(rec.deliveries()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"blood", "xray"}, rec.deliveries())
}

func TestSearchSession_FlushDeliversImmediately(t *testing.T) {
	items := []model.LineItem{namedItem("Consultation")}
	rec := &deliveryRecorder{}

	session := NewSearchSession(items, time.Hour, rec.record)
	defer session.Close()

	session.SetQuery("consult")
	session.Flush()

	require.Len(t, rec.deliveries(), 1)
	assert.Equal(t, "consult", rec.deliveries()[0])
}

func TestSearchSession_ResultsMatchDirectFilter(t *testing.T) {
	items := []model.LineItem{
		namedItem("Blood Test"),
		namedItem("Blood Pressure Check"),
		namedItem("X-Ray"),
	}
	rec := &deliveryRecorder{}

	session := NewSearchSession(items, time.Hour, rec.record)
	defer session.Close()

	session.SetQuery("blood")
	session.Flush()

	assert.Equal(t, FilterLineItems(items, "blood"), rec.lastResults())
}

func TestSearchSession_CloseDropsPendingDelivery(t *testing.T) {
	rec := &deliveryRecorder{}

	session := NewSearchSession([]model.LineItem{namedItem("Blood Test")}, 20*time.Millisecond, rec.record)
	session.SetQuery("blood")
	session.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.deliveries())

	// Further updates after close are no-ops.
	session.SetQuery("x")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.deliveries())
}
