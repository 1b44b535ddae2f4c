package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logLevel(0))
	assert.Equal(t, zerolog.DebugLevel, logLevel(1))
	assert.Equal(t, zerolog.TraceLevel, logLevel(2))
	assert.Equal(t, zerolog.TraceLevel, logLevel(5))
}

func TestInitLogger(t *testing.T) {
	orig := log.Logger
	defer func() { log.Logger = orig }()

	assert.NoError(t, initLogger("", 1))
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
}

func TestMetricsDisabled(t *testing.T) {
	var nilMetrics *Metrics
	nilMetrics.Count("inference.rows", 1, nil)
	nilMetrics.Timing("inference.latency", time.Second, nil)
	assert.NoError(t, nilMetrics.Close())

	m := NewMetrics("", "mlserve.", nil)
	m.Count("inference.rows", 1, nil)
	assert.NoError(t, m.Close())
}
