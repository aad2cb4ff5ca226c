package throttle

// MetricsRecorder receives throttling telemetry. Implementations adapt it
// to whatever metrics backend the host application runs.
//
// Emitted series:
//
//	throttle.check            counter, every Check call
//	throttle.rejected         counter, Check calls denied with RateLimitedError
//	throttle.recorded         counter, failures recorded by Do
//	throttle.check.latency    observation, Check duration in milliseconds
//
// Every series is tagged with {"label": <throttler label>}.
type MetricsRecorder interface {
	Add(name string, value float64, tags map[string]string)
	Observe(name string, value float64, tags map[string]string)
}

// NoOpMetricsRecorder is a placeholder that does nothing.
// It ensures we never have to check 'if r.recorder != nil' in our hot path.
type NoOpMetricsRecorder struct{}

func (n *NoOpMetricsRecorder) Add(name string, value float64, tags map[string]string)     {}
func (n *NoOpMetricsRecorder) Observe(name string, value float64, tags map[string]string) {}
