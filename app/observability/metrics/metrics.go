package metrics

import (
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	BudgetEstimatesTotal  metric.Int64Counter
	BudgetEstimateCOP     metric.Float64Histogram
	SelectionChangesTotal metric.Int64Counter
	ChatRequestsTotal     metric.Int64Counter
	ChatFailuresTotal     metric.Int64Counter
	ChatDurationSeconds   metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// New creates the instruments on the given meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.BudgetEstimatesTotal, err = meter.Int64Counter(
		"budget_estimates_total",
		metric.WithDescription("Total number of budget estimates computed"),
		metric.WithUnit("{estimate}"),
	)
	if err != nil {
		return nil, fmt.Errorf("budget_estimates_total: %w", err)
	}

	m.BudgetEstimateCOP, err = meter.Float64Histogram(
		"budget_estimate_total_cop",
		metric.WithDescription("Estimated trip totals in Colombian pesos"),
		metric.WithUnit("COP"),
	)
	if err != nil {
		return nil, fmt.Errorf("budget_estimate_total_cop: %w", err)
	}

	m.SelectionChangesTotal, err = meter.Int64Counter(
		"selection_changes_total",
		metric.WithDescription("Places added to or removed from a session route"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, fmt.Errorf("selection_changes_total: %w", err)
	}

	m.ChatRequestsTotal, err = meter.Int64Counter(
		"chat_requests_total",
		metric.WithDescription("Total number of chat messages sent to the assistant"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("chat_requests_total: %w", err)
	}

	m.ChatFailuresTotal, err = meter.Int64Counter(
		"chat_failures_total",
		metric.WithDescription("Chat requests answered with the fallback message"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("chat_failures_total: %w", err)
	}

	m.ChatDurationSeconds, err = meter.Float64Histogram(
		"chat_duration_seconds",
		metric.WithDescription("Duration of assistant calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("chat_duration_seconds: %w", err)
	}

	return m, nil
}

// InitAppMetrics initializes the global instruments once, using the Meter of
// the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		m, err := New(otel.GetMeterProvider().Meter("EjePlanner"))
		if err != nil {
			log.Fatalf("Metrics: failed to create instruments: %v", err)
		}
		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the global AppMetrics. Panics if InitAppMetrics was not called.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
