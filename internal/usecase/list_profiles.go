package usecase

import (
	"context"
	"log/slog"

	"github.com/prestic-org/prestic-cli/internal/config"
	"github.com/prestic-org/prestic-cli/internal/domain"
	"github.com/prestic-org/prestic-cli/internal/profile"
)

// ProfileSummary describes one profile for listing.
type ProfileSummary struct {
	Name       string
	Inherit    string
	Repository string
	FlagCount  int
}

// ListProfilesResult contains all profile summaries.
type ListProfilesResult struct {
	Profiles []ProfileSummary
}

// ListProfiles is the use case for listing configured profiles.
type ListProfiles struct {
	config *config.RuntimeConfig
	log    *slog.Logger
}

// NewListProfiles creates a new ListProfiles use case
func NewListProfiles(cfg *config.RuntimeConfig, log *slog.Logger) *ListProfiles {
	return &ListProfiles{
		config: cfg,
		log:    log.With("component", "ListProfiles"),
	}
}

// Run executes the list profiles use case. Each profile is fully resolved
// so the listing reflects inherited settings, not just the raw sections.
func (uc *ListProfiles) Run(ctx context.Context, _ struct{}) (*ListProfilesResult, error) {
	names := uc.config.Store.SectionNames()
	if len(names) == 0 {
		return nil, domain.ErrNoProfiles
	}

	summaries := make([]ProfileSummary, 0, len(names))
	for _, name := range names {
		p := profile.New(uc.config.Store, name)
		if err := p.Resolve(); err != nil {
			return nil, err
		}
		summaries = append(summaries, ProfileSummary{
			Name:       p.Name(),
			Inherit:    p.Inherit(),
			Repository: p.Repository(),
			FlagCount:  len(p.GlobalFlags()),
		})
	}

	return &ListProfilesResult{Profiles: summaries}, nil
}
