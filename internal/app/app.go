package app

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/prestic-org/prestic-cli/internal/adapters/restic"
	"github.com/prestic-org/prestic-cli/internal/adapters/schedule"
	"github.com/prestic-org/prestic-cli/internal/config"
	"github.com/prestic-org/prestic-cli/internal/logging"
	"github.com/prestic-org/prestic-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ResolveProfile   *usecase.ResolveProfile
	ListProfiles     *usecase.ListProfiles
	RunBackup        *usecase.RunBackup
	ValidateSchedule *usecase.ValidateSchedule
}

// InitApp creates a fully wired App instance from the viper configuration.
func InitApp(v *viper.Viper) (*App, error) {
	cfg, err := config.Provider(v)
	if err != nil {
		return nil, err
	}

	log := logging.NewLogger(cfg)

	// Adapters
	runner := restic.NewExecutor(cfg.ResticBinary, log)
	checker := schedule.NewChecker(log)

	return &App{
		Config:           cfg,
		Log:              log,
		ResolveProfile:   usecase.NewResolveProfile(cfg, log),
		ListProfiles:     usecase.NewListProfiles(cfg, log),
		RunBackup:        usecase.NewRunBackup(cfg, runner, log),
		ValidateSchedule: usecase.NewValidateSchedule(checker, log),
	}, nil
}
