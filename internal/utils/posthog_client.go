// posthog_client.go wraps the PostHog client so callers need not care whether analytics is configured.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// EventSink is the part of posthog.Client the tracker uses.
type EventSink interface {
	Enqueue(msg posthog.Message) error
	Close() error
}

// UsageTracker sends anonymous usage events for one khata instance.
type UsageTracker struct {
	sink       EventSink
	instanceID string
	logger     *slog.Logger
}

// NewUsageTracker connects to PostHog. An empty apiKey yields a disabled tracker.
func NewUsageTracker(apiKey, endpoint, instanceID string, logger *slog.Logger) *UsageTracker {
	if apiKey == "" {
		logger.Info("Posthog API key is empty, usage tracking disabled.")
		return &UsageTracker{instanceID: instanceID, logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("Failed to initialize posthog client, usage tracking disabled", slog.String("error", err.Error()))
		return &UsageTracker{instanceID: instanceID, logger: logger}
	}
	logger.Info("Usage tracking enabled", slog.String("endpoint", endpoint), slog.String("instance_id", instanceID))
	return NewUsageTrackerWithSink(client, instanceID, logger)
}

// NewUsageTrackerWithSink builds a tracker over an existing sink.
func NewUsageTrackerWithSink(sink EventSink, instanceID string, logger *slog.Logger) *UsageTracker {
	return &UsageTracker{sink: sink, instanceID: instanceID, logger: logger}
}

func (t *UsageTracker) IsEnabled() bool {
	return t != nil && t.sink != nil
}

// Track enqueues one event attributed to this instance. Failures are only logged.
func (t *UsageTracker) Track(event string, properties map[string]any) {
	if !t.IsEnabled() {
		return
	}
	err := t.sink.Enqueue(posthog.Capture{
		DistinctId: t.instanceID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && t.logger != nil {
		t.logger.Warn("Failed to enqueue usage event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (t *UsageTracker) Close() {
	if !t.IsEnabled() {
		return
	}
	if err := t.sink.Close(); err != nil && t.logger != nil {
		t.logger.Warn("Failed to flush usage events", slog.String("error", err.Error()))
	}
}
