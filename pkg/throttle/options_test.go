package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	tr, err := New("email")
	require.NoError(t, err)

	require.Equal(t, "email", tr.Label())
	require.Equal(t, DefaultAttemptTTL, tr.attemptTTL)
	require.Equal(t, DefaultThreshold, tr.threshold)
	require.Equal(t, DefaultInitialDelay, tr.initialDelay)
	require.Equal(t, DefaultDelayExponent, tr.delayExponent)
}

func TestNew_Options(t *testing.T) {
	tr, err := New("ip",
		WithAttemptTTL(5*time.Minute),
		WithThreshold(3),
		WithInitialDelay(2*time.Second),
		WithDelayExponent(2),
	)
	require.NoError(t, err)

	require.Equal(t, 5*time.Minute, tr.attemptTTL)
	require.Equal(t, 3, tr.threshold)
	require.Equal(t, 2*time.Second, tr.initialDelay)
	require.Equal(t, float64(2), tr.delayExponent)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name  string
		label string
		opts  []Option
	}{
		{"empty label", "", nil},
		{"zero ttl", "x", []Option{WithAttemptTTL(0)}},
		{"negative ttl", "x", []Option{WithAttemptTTL(-time.Second)}},
		{"negative threshold", "x", []Option{WithThreshold(-1)}},
		{"zero initial delay", "x", []Option{WithInitialDelay(0)}},
		{"negative exponent", "x", []Option{WithDelayExponent(-0.5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.label, tc.opts...)
			require.Error(t, err)
		})
	}
}

func TestNew_ZeroThresholdIsValid(t *testing.T) {
	_, err := New("x", WithThreshold(0))
	require.NoError(t, err)
}
