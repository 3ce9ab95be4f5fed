package usecase

import (
	"context"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/prestic-org/prestic-cli/internal/config"
	"github.com/prestic-org/prestic-cli/internal/domain"
	"github.com/prestic-org/prestic-cli/internal/profile"
)

// ResolveProfileParams contains parameters for resolving a profile
type ResolveProfileParams struct {
	// Name overrides the profile name from the runtime config when set
	Name string
}

// ResolveProfileResult is the resolved profile plus its rendered flags.
type ResolveProfileResult struct {
	Name        string
	Inherit     string
	Repository  string
	Quiet       bool
	Verbose     domain.Value
	Flags       []string
	CommandArgs []string

	// Suggestions holds close profile-name matches when the requested
	// profile has no section
	Suggestions []string
}

// ResolveProfile is the use case for resolving a named profile into flags.
type ResolveProfile struct {
	config *config.RuntimeConfig
	log    *slog.Logger
}

// NewResolveProfile creates a new ResolveProfile use case
func NewResolveProfile(cfg *config.RuntimeConfig, log *slog.Logger) *ResolveProfile {
	return &ResolveProfile{
		config: cfg,
		log:    log.With("component", "ResolveProfile"),
	}
}

// Run executes the resolve profile use case
func (uc *ResolveProfile) Run(ctx context.Context, params ResolveProfileParams) (*ResolveProfileResult, error) {
	name := params.Name
	if name == "" {
		name = uc.config.ProfileName
	}

	var opts []profile.Option
	if uc.config.StrictInheritance {
		opts = append(opts, profile.WithStrictInheritance())
	}

	p := profile.New(uc.config.Store, name, opts...)
	if err := p.Resolve(); err != nil {
		return nil, err
	}

	result := &ResolveProfileResult{
		Name:        p.Name(),
		Inherit:     p.Inherit(),
		Repository:  p.Repository(),
		Quiet:       p.Quiet(),
		Verbose:     p.Verbose(),
		Flags:       p.GlobalFlags(),
		CommandArgs: p.CommandArgs(),
	}

	// An undefined profile is valid (all defaults) but usually a typo, so
	// surface close matches as a hint.
	if !uc.config.Store.HasSection(name) {
		result.Suggestions = uc.suggestions(name)
		uc.log.Warn("profile has no configuration section",
			"profile", name, "suggestions", result.Suggestions)
	}

	return result, nil
}

// suggestions returns up to three profile names close to the requested one.
func (uc *ResolveProfile) suggestions(name string) []string {
	names := uc.config.Store.SectionNames()
	matches := fuzzy.Find(name, names)

	suggestions := make([]string, 0, 3)
	for _, match := range matches {
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == 3 {
			break
		}
	}
	return suggestions
}
