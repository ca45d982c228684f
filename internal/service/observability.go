package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger zerolog.Logger
}

// NewLogUseCaseObserver writes one structured service_use_case event per
// call to logger.
func NewLogUseCaseObserver(logger zerolog.Logger) UseCaseObserver {
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	ev := o.logger.Info()
	if event.Err != nil {
		ev = o.logger.Error().Err(event.Err)
	}
	ev.Str("use_case", event.Name).
		Int64("duration_ms", event.Duration.Milliseconds()).
		Bool("success", event.Success).
		Fields(event.Fields).
		Msg("service_use_case")
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// observe reports a finished use case. Call it deferred with a pointer to
// the named error result.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   e == nil,
		Err:       e,
		Fields:    fields,
	})
}
