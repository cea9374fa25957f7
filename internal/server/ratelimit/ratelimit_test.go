package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/v1/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_BurstThenThrottle(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/v1/analyze", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/api/v1/analyze", "POST")
		require.True(t, allowed, "request %d within burst", i)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/v1/analyze", "POST")
	assert.False(t, allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/v1/reset", Method: "POST", Limit: 10, Window: time.Minute, Burst: 1},
		},
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/api/v1/reset", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/api/v1/reset", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/api/v1/reset", "POST")
	assert.True(t, allowed)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	cfg := MatchEndpoint("/api/v1/health", "GET", DefaultEndpointConfigs())

	require.NotNil(t, cfg)
	assert.Zero(t, cfg.Limit)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	cfg := MatchEndpoint("/api/v1/analysis/analysis_abc12345", "DELETE", DefaultEndpointConfigs())

	require.NotNil(t, cfg)
	assert.Equal(t, 100, cfg.Limit)
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/api/v1/history", "GET", DefaultEndpointConfigs()))
}
