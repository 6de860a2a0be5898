package store

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "onboarding-logger/store"

// instrumented wraps a Store with a span per call and an error counter.
type instrumented struct {
	next      Store
	namespace string
	tracer    trace.Tracer
	errors    *prometheus.CounterVec
}

// Instrument decorates s. errs may be nil; it must carry the labels "namespace" and "op".
func Instrument(s Store, namespace string, errs *prometheus.CounterVec) Store {
	return &instrumented{
		next:      s,
		namespace: namespace,
		tracer:    otel.Tracer(tracerName),
		errors:    errs,
	}
}

func (i *instrumented) Put(ctx context.Context, key string, value []byte) error {
	ctx, span := i.start(ctx, "store.Put", key)
	defer span.End()

	span.SetAttributes(attribute.Int("kv.value_bytes", len(value)))
	err := i.next.Put(ctx, key, value)
	i.record(span, "put", err)
	return err
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := i.start(ctx, "store.Get", key)
	defer span.End()

	v, err := i.next.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		span.SetAttributes(attribute.Bool("kv.miss", true))
		return v, err
	}
	i.record(span, "get", err)
	return v, err
}

func (i *instrumented) List(ctx context.Context, prefix string) ([]string, error) {
	ctx, span := i.tracer.Start(ctx, "store.List", trace.WithAttributes(
		attribute.String("kv.namespace", i.namespace),
		attribute.String("kv.prefix", prefix),
	))
	defer span.End()

	keys, err := i.next.List(ctx, prefix)
	span.SetAttributes(attribute.Int("kv.keys", len(keys)))
	i.record(span, "list", err)
	return keys, err
}

func (i *instrumented) start(ctx context.Context, name, key string) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("kv.namespace", i.namespace),
		attribute.String("kv.key", key),
	))
}

func (i *instrumented) record(span trace.Span, op string, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if i.errors != nil {
		i.errors.WithLabelValues(i.namespace, op).Inc()
	}
}
