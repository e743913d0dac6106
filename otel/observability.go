// Package otel provides optional OpenTelemetry instrumentation for subtea.
// It records how many effects children emit, how often tagged commands are
// flattened, and how long component updates take. Wiring it up is opt-in
// and does not change core subtea behavior.
package otel

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jilio/subtea"
)

const instrumentationName = "github.com/jilio/subtea"

// Observability records effect traffic between child components and their
// parents using OpenTelemetry.
type Observability struct {
	tracer trace.Tracer
	meter  metric.Meter

	// Metrics
	effectCounter  metric.Int64Counter
	flattenCounter metric.Int64Counter
	updateDuration metric.Float64Histogram
}

// Option configures the Observability
type Option func(*Observability)

// WithTracerProvider sets a custom tracer provider
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *Observability) {
		o.tracer = provider.Tracer(instrumentationName)
	}
}

// WithMeterProvider sets a custom meter provider
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *Observability) {
		o.meter = provider.Meter(instrumentationName)
	}
}

// New creates an Observability using the global providers unless overridden
// by options.
func New(opts ...Option) (*Observability, error) {
	obs := &Observability{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
		meter:  otel.GetMeterProvider().Meter(instrumentationName),
	}

	for _, opt := range opts {
		opt(obs)
	}

	// Initialize metrics
	var err error

	obs.effectCounter, err = obs.meter.Int64Counter(
		"subtea.effect.count",
		metric.WithDescription("Number of effects translated into parent messages"),
		metric.WithUnit("{effect}"),
	)
	if err != nil {
		return nil, err
	}

	obs.flattenCounter, err = obs.meter.Int64Counter(
		"subtea.flatten.count",
		metric.WithDescription("Number of tagged commands flattened into tea commands"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return nil, err
	}

	obs.updateDuration, err = obs.meter.Float64Histogram(
		"subtea.update.duration",
		metric.WithDescription("Component update duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return obs, nil
}

// OnUpdateStart begins a span covering one component update cycle. The
// returned context carries the span; pass it to OnUpdateEnd.
func (o *Observability) OnUpdateStart(ctx context.Context, component string) context.Context {
	ctx, _ = o.tracer.Start(ctx, "subtea.update: "+component,
		trace.WithAttributes(
			attribute.String("component", component),
		),
	)
	return ctx
}

// OnUpdateEnd ends the update span and records the update duration.
func (o *Observability) OnUpdateEnd(ctx context.Context, component string, start time.Time) {
	o.updateDuration.Record(ctx, float64(time.Since(start).Microseconds())/1000.0,
		metric.WithAttributes(
			attribute.String("component", component),
		),
	)

	if span := trace.SpanFromContext(ctx); span != nil {
		span.End()
	}
}

// CountEffects wraps an effectToMsg translator so every translated effect
// increments subtea.effect.count, attributed with the effect's type name.
// The wrapped function is a drop-in replacement in UpdateWithEffect,
// InitWithEffect, and ToCmd.
func CountEffects[E any](o *Observability, effectToMsg func(E) tea.Msg) func(E) tea.Msg {
	return func(effect E) tea.Msg {
		o.effectCounter.Add(context.Background(), 1,
			metric.WithAttributes(
				attribute.String("effect.type", subtea.EffectType(effect)),
			),
		)
		return effectToMsg(effect)
	}
}

// ToCmd is subtea.ToCmd with instrumentation: it counts the flatten for the
// named component and counts every effect the command resolves.
func ToCmd[E any](o *Observability, component string, c subtea.Cmd[E], toMsg func(tea.Msg) tea.Msg, effectToMsg func(E) tea.Msg) tea.Cmd {
	o.flattenCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String("component", component),
		),
	)
	return subtea.ToCmd(c, toMsg, CountEffects(o, effectToMsg))
}

// String implements fmt.Stringer for debugging
func (o *Observability) String() string {
	return fmt.Sprintf("subtea otel instrumentation (%s)", instrumentationName)
}
