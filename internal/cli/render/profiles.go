package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/prestic-org/prestic-cli/internal/usecase"
)

// ProfilesRenderer renders the profile listing as a table.
type ProfilesRenderer struct {
	out io.Writer
}

// NewProfilesRenderer creates a new profiles renderer
func NewProfilesRenderer(out io.Writer) *ProfilesRenderer {
	return &ProfilesRenderer{out: out}
}

// Render renders all configured profiles.
func (r *ProfilesRenderer) Render(result *usecase.ListProfilesResult) error {
	if len(result.Profiles) == 0 {
		fmt.Fprintln(r.out, "No profiles configured")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Profile", "Inherits", "Repository", "Flags"})

	for _, p := range result.Profiles {
		inherit := p.Inherit
		if inherit == "" {
			inherit = "-"
		}
		repository := p.Repository
		if repository == "" {
			repository = "-"
		}
		t.AppendRow(table.Row{p.Name, inherit, repository, p.FlagCount})
	}

	t.Render()
	return nil
}

var _ Renderer[*usecase.ListProfilesResult] = (*ProfilesRenderer)(nil)
