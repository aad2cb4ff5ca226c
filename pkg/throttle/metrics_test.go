package throttle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// MockRecorder captures metrics in memory for assertion.
type MockRecorder struct {
	Counters map[string]float64
	Timings  map[string][]float64
	Tags     map[string]map[string]string
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{
		Counters: make(map[string]float64),
		Timings:  make(map[string][]float64),
		Tags:     make(map[string]map[string]string),
	}
}

func (m *MockRecorder) Add(name string, value float64, tags map[string]string) {
	m.Counters[name] += value
	m.Tags[name] = tags
}

func (m *MockRecorder) Observe(name string, value float64, tags map[string]string) {
	m.Timings[name] = append(m.Timings[name], value)
	m.Tags[name] = tags
}

func TestCheck_Metrics(t *testing.T) {
	clock := &fakeClock{now: 1_000}
	mock := NewMockRecorder()
	tr := newTestThrottler(t, clock, WithThreshold(1), WithRecorder(mock))

	require.NoError(t, tr.Check("k"))
	require.Error(t, tr.Check("k"))

	require.Equal(t, float64(2), mock.Counters["throttle.check"])
	require.Equal(t, float64(1), mock.Counters["throttle.rejected"])
	require.Len(t, mock.Timings["throttle.check.latency"], 2)
	require.Equal(t, map[string]string{"label": "test"}, mock.Tags["throttle.check"])
}

func TestDo_RecordedFailureMetric(t *testing.T) {
	clock := &fakeClock{now: 1_000}
	mock := NewMockRecorder()
	tr := newTestThrottler(t, clock, WithThreshold(5), WithRecorder(mock))

	boom := errors.New("boom")
	require.Same(t, boom, Do([]Guard{{Throttler: tr, Key: "k"}}, func() error { return boom }))

	require.Equal(t, float64(1), mock.Counters["throttle.recorded"])
	require.Zero(t, mock.Counters["throttle.check"])
}
