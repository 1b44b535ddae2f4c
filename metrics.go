package main

// metrics module sends inference metrics to statsd agent
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rs/zerolog/log"
)

// Metrics wraps statsd client, zero value (or nil) drops all metrics
type Metrics struct {
	client statsd.ClientInterface
}

// NewMetrics creates metrics client for given statsd address, empty address
// disables metrics
func NewMetrics(addr, prefix string, tags []string) *Metrics {
	if addr == "" {
		return &Metrics{}
	}
	client, err := statsd.New(addr, statsd.WithNamespace(prefix), statsd.WithTags(tags))
	if err != nil {
		log.Error().Err(err).Str("addr", addr).Msg("statsd client initialization failed, metrics will be unavailable")
		return &Metrics{}
	}
	log.Info().Str("addr", addr).Str("prefix", prefix).Strs("tags", tags).Msg("metrics client initialized")
	return &Metrics{client: client}
}

// Timing records duration of named operation
func (m *Metrics) Timing(name string, value time.Duration, tags []string) {
	if m == nil || m.client == nil {
		return
	}
	if err := m.client.Timing(name, value, tags, 1); err != nil {
		log.Warn().Err(err).Str("metric", name).Msg("statsd timing")
	}
}

// Count records counter of named operation
func (m *Metrics) Count(name string, value int64, tags []string) {
	if m == nil || m.client == nil {
		return
	}
	if err := m.client.Count(name, value, tags, 1); err != nil {
		log.Warn().Err(err).Str("metric", name).Msg("statsd count")
	}
}

// Close flushes and closes statsd client
func (m *Metrics) Close() error {
	if m == nil || m.client == nil {
		return nil
	}
	return m.client.Close()
}
