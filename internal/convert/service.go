// Package convert implements the timestamp conversion service: parsing,
// zone conversion, formatting, and registry listing over the temporal value
// types. Handlers stay thin; every domain rule lives in pkg/temporal.
package convert

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"chrono/internal/convert/metrics"
	dErrors "chrono/pkg/domain-errors"
	"chrono/pkg/requestcontext"
	"chrono/pkg/temporal"
)

// batchConcurrency bounds parallel parsing of a single batch request.
const batchConcurrency = 8

// maxBatchValues caps a single batch so one request cannot monopolize the
// worker pool.
const maxBatchValues = 1000

// Service performs timestamp operations on behalf of the transport layer.
type Service struct {
	defaultZone temporal.TimeZone
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// New constructs the conversion service.
func New(defaultZone temporal.TimeZone, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		defaultZone: defaultZone,
		logger:      logger,
		metrics:     m,
	}
}

// BatchResult is one outcome of a batch parse; exactly one of Timestamp and
// Err is meaningful, and results keep their submission order.
type BatchResult struct {
	Value     string
	Timestamp temporal.Timestamp
	Err       error
}

// Parse parses a single timestamp, optionally re-zoned when zoneSpec is
// non-empty.
func (s *Service) Parse(ctx context.Context, value, zoneSpec string) (temporal.Timestamp, error) {
	start := time.Now()
	defer s.metrics.ObserveDuration("parse", time.Since(start))

	ts, err := temporal.Parse(value)
	if err != nil {
		s.metrics.IncOperation("parse", "invalid")
		return temporal.Timestamp{}, err
	}
	if zoneSpec != "" {
		zone, err := s.ResolveZone(zoneSpec)
		if err != nil {
			s.metrics.IncOperation("parse", "invalid")
			return temporal.Timestamp{}, err
		}
		ts = ts.InZone(zone)
	}
	s.metrics.IncOperation("parse", "ok")
	return ts, nil
}

// Convert re-zones a timestamp: same instant, different presentation.
func (s *Service) Convert(ctx context.Context, value, zoneSpec string) (temporal.Timestamp, error) {
	start := time.Now()
	defer s.metrics.ObserveDuration("convert", time.Since(start))

	if zoneSpec == "" {
		s.metrics.IncOperation("convert", "invalid")
		return temporal.Timestamp{}, dErrors.New(dErrors.CodeBadRequest, "zone is required")
	}
	zone, err := s.ResolveZone(zoneSpec)
	if err != nil {
		s.metrics.IncOperation("convert", "invalid")
		return temporal.Timestamp{}, err
	}
	ts, err := temporal.Parse(value)
	if err != nil {
		s.metrics.IncOperation("convert", "invalid")
		return temporal.Timestamp{}, err
	}
	s.metrics.IncOperation("convert", "ok")
	return ts.InZone(zone), nil
}

// Format parses a timestamp and renders it through the seven-token pattern
// language.
func (s *Service) Format(ctx context.Context, value, pattern string) (string, error) {
	start := time.Now()
	defer s.metrics.ObserveDuration("format", time.Since(start))

	ts, err := temporal.Parse(value)
	if err != nil {
		s.metrics.IncOperation("format", "invalid")
		return "", err
	}
	s.metrics.IncOperation("format", "ok")
	return ts.Format(pattern), nil
}

// ParseBatch parses many values concurrently, preserving submission order.
// Individual failures land in their slot; they never abort the batch.
func (s *Service) ParseBatch(ctx context.Context, values []string) ([]BatchResult, error) {
	if len(values) > maxBatchValues {
		return nil, dErrors.Newf(dErrors.CodeBadRequest, "batch exceeds %d values", maxBatchValues)
	}
	s.metrics.ObserveBatchSize(len(values))

	results := make([]BatchResult, len(values))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, value := range values {
		i, value := i, value
		g.Go(func() error {
			ts, err := temporal.Parse(value)
			results[i] = BatchResult{Value: value, Timestamp: ts, Err: err}
			if err != nil {
				s.metrics.IncOperation("parse", "invalid")
			} else {
				s.metrics.IncOperation("parse", "ok")
			}
			return nil
		})
	}
	// Workers only record into their own slot; the group never fails.
	_ = g.Wait()
	return results, nil
}

// Now returns the request-scoped current instant in the requested zone, or
// the service default zone when none is given.
func (s *Service) Now(ctx context.Context, zoneSpec string) (temporal.Timestamp, error) {
	zone := s.defaultZone
	if zoneSpec != "" {
		resolved, err := s.ResolveZone(zoneSpec)
		if err != nil {
			s.metrics.IncOperation("now", "invalid")
			return temporal.Timestamp{}, err
		}
		zone = resolved
	}
	s.metrics.IncOperation("now", "ok")
	return temporal.FromTime(requestcontext.Now(ctx), zone), nil
}

// Zones lists the named zone registry in order.
func (s *Service) Zones(ctx context.Context) []temporal.TimeZone {
	return temporal.Zones()
}

// ResolveZone accepts either a registry name ("KST") or an offset literal
// ("Z", "+09:00", "-0530", "+09").
func (s *Service) ResolveZone(spec string) (temporal.TimeZone, error) {
	return resolveZone(spec)
}

// MustZone resolves a zone spec or panics. Intended for startup wiring where
// a bad value should abort the process.
func MustZone(spec string) temporal.TimeZone {
	zone, err := resolveZone(spec)
	if err != nil {
		panic(err)
	}
	return zone
}

func resolveZone(spec string) (temporal.TimeZone, error) {
	if spec == "Z" || strings.HasPrefix(spec, "+") || strings.HasPrefix(spec, "-") {
		return temporal.ParseOffset(spec)
	}
	return temporal.FromName(spec)
}
