package components

import (
	"interview-scheduler/internal/pkg/clock"
	"interview-scheduler/internal/pkg/config"
	"interview-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewLeaveSource,
		usecase.NewBookingSource,
		usecase.NewExternalSource,
		NewCheckerConfig,
		usecase.NewConflictChecker,
		usecase.NewNotifier,
		usecase.NewScheduler,
	),
)

func NewCheckerConfig(cfg config.Config) usecase.CheckerConfig {
	return usecase.CheckerConfig{
		SourceTimeout:  cfg.Scheduler.SourceTimeout,
		MaxSuggestions: cfg.Scheduler.MaxSuggestions,
	}
}
