package namegen

import (
	"context"
	"fmt"

	"petnames/internal/domain"
	"petnames/internal/infra"
)

// Recorder persists the names of one generation request as a unit.
type Recorder interface {
	SaveAll(ctx context.Context, names []domain.GeneratedName) error
}

// Service runs the engine and records every name it produces. A request's
// names are saved all-or-nothing: if the recorder fails the caller gets the
// operational failure envelope and none of the names.
type Service struct {
	engine   *Engine
	recorder Recorder
	logger   *infra.Logger
}

// Options configures a Service. Recorder may be nil to skip persistence.
type Options struct {
	Source   Source
	Recorder Recorder
	Logger   *infra.Logger
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &Service{
		engine:   NewEngine(opts.Source),
		recorder: opts.Recorder,
		logger:   logger,
	}
}

// Engine exposes the underlying generation engine.
func (s *Service) Engine() *Engine {
	return s.engine
}

// Generate produces count generic names; count below one yields none.
func (s *Service) Generate(ctx context.Context, count int) Result {
	res := s.engine.GenerateDefault(count)
	return s.finish(ctx, "generate", res, MsgGenerateFailed, func(name string) domain.GeneratedName {
		return domain.NewGeneratedName(name, "", count)
	})
}

// GenerateByAnimalType produces one composite name for animalType.
func (s *Service) GenerateByAnimalType(ctx context.Context, animalType string) Result {
	res := s.engine.GenerateByAnimalType(animalType)
	trimmed := trimAnimalType(animalType)
	return s.finish(ctx, "generate_by_animal_type", res, MsgGenerateFailed, func(name string) domain.GeneratedName {
		return domain.NewGeneratedName(name, trimmed, 1)
	})
}

// GenerateBulk validates count and produces that many generic names.
func (s *Service) GenerateBulk(ctx context.Context, count any) Result {
	res := s.engine.GenerateBulk(count)
	n := len(res.Names)
	return s.finish(ctx, "generate_bulk", res, MsgBulkFailed, func(name string) domain.GeneratedName {
		return domain.NewGeneratedName(name, "", n)
	})
}

func (s *Service) finish(ctx context.Context, op string, res Result, failMsg string, record func(string) domain.GeneratedName) Result {
	switch res.Kind {
	case KindInvalid:
		s.logger.Debug().Str("op", op).Str("reason", res.Message).Msg("generation rejected")
		return res
	case KindFailed:
		s.logger.Error().Err(res.Err).Str("op", op).Msg("generation failed")
		return res
	}

	if s.recorder != nil && len(res.Names) > 0 {
		records := make([]domain.GeneratedName, 0, len(res.Names))
		for _, name := range res.Names {
			records = append(records, record(name))
		}
		if err := s.recorder.SaveAll(ctx, records); err != nil {
			err = fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
			s.logger.Error().Err(err).Str("op", op).Int("names", len(records)).Msg("failed to save generated names")
			return failed(failMsg, err)
		}
	}

	s.logger.Info().Str("op", op).Int("names", len(res.Names)).Msg(res.Message)
	return res
}
