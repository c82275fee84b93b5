package geocoding

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/domain"
	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type Observer interface {
	ObserveGeocoder(operation, outcome string, elapsed time.Duration)
}

type instrumented struct {
	next     Geocoder
	observer Observer
	logger   *zap.Logger
}

// Instrument reports the outcome and latency of every call made through
// next. A nil observer only logs.
func Instrument(next Geocoder, observer Observer, logger *zap.Logger) Geocoder {
	return &instrumented{
		next:     next,
		observer: observer,
		logger:   logger,
	}
}

func (g *instrumented) Search(ctx context.Context, query string) (*valueobject.Place, error) {
	start := time.Now()
	place, err := g.next.Search(ctx, query)
	g.observe("search", err, time.Since(start), zap.String("query", query))
	return place, err
}

func (g *instrumented) Reverse(ctx context.Context, point valueobject.Point) (*valueobject.Place, error) {
	start := time.Now()
	place, err := g.next.Reverse(ctx, point)
	g.observe("reverse", err, time.Since(start), zap.Stringer("point", point))
	return place, err
}

func (g *instrumented) observe(operation string, err error, elapsed time.Duration, subject zap.Field) {
	outcome := Outcome(err)

	if g.observer != nil {
		g.observer.ObserveGeocoder(operation, outcome, elapsed)
	}

	fields := []zap.Field{
		zap.String("operation", operation),
		subject,
		zap.String("outcome", outcome),
		zap.Duration("latency", elapsed),
	}
	if outcome == OutcomeError {
		g.logger.Warn("geocoder call failed", append(fields, zap.Error(err))...)
		return
	}
	g.logger.Debug("geocoder call", fields...)
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrPlaceNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
