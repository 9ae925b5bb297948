package workout

import (
	"context"
	"fmt"
	"log/slog"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Report renders one line per package, in order. Every package is built
// before anything is rendered, so a bad package yields no lines at all.
func (s *Service) Report(ctx context.Context, packages []Package) ([]string, error) {
	workouts := make([]Workout, 0, len(packages))
	for i, p := range packages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w, err := Build(p.Type, p.Data)
		if err != nil {
			return nil, fmt.Errorf("package %d (%s): %w", i, p.Type, err)
		}
		s.logger.Debug("Built workout", slog.Int("index", i), slog.String("type", p.Type), slog.String("kind", w.Kind().String()))
		workouts = append(workouts, w)
	}

	lines := make([]string, 0, len(workouts))
	for _, w := range workouts {
		msg := Info(w)
		s.logger.Debug("Computed metrics",
			slog.String("kind", msg.TrainingType),
			slog.Float64("distance_km", msg.Distance),
			slog.Float64("speed_kmh", msg.Speed),
			slog.Float64("calories", msg.Calories),
		)
		lines = append(lines, msg.String())
	}

	s.logger.Info("Report complete", slog.Int("workouts", len(lines)))

	return lines, nil
}
