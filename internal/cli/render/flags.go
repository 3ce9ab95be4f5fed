package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/prestic-org/prestic-cli/internal/usecase"
)

// FlagsRenderer renders a resolved profile and its generated flags.
type FlagsRenderer struct {
	out   io.Writer
	color bool
}

// NewFlagsRenderer creates a new flags renderer
func NewFlagsRenderer(out io.Writer, useColor bool) *FlagsRenderer {
	return &FlagsRenderer{
		out:   out,
		color: useColor,
	}
}

// Render renders the resolved profile in the profile/property/flags layout.
func (r *FlagsRenderer) Render(result *usecase.ResolveProfileResult) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if !r.color {
		bold.DisableColor()
		faint.DisableColor()
	}

	_, _ = bold.Fprintf(r.out, "Profile %s\n", result.Name)

	if result.Inherit != "" {
		fmt.Fprintf(r.out, "  inherits from: %s\n", result.Inherit)
	}
	if result.Repository != "" {
		fmt.Fprintf(r.out, "  repository:    %s\n", result.Repository)
	}
	if result.Quiet {
		fmt.Fprintln(r.out, "  quiet:         true")
	}
	if !result.Verbose.IsAbsent() {
		fmt.Fprintf(r.out, "  verbose:       %s\n", result.Verbose.Display())
	}

	fmt.Fprintln(r.out)
	if len(result.Flags) == 0 {
		_, _ = faint.Fprintln(r.out, "No global flags generated")
	} else {
		fmt.Fprintln(r.out, "Global flags:")
		for _, flag := range result.Flags {
			fmt.Fprintf(r.out, "  %s\n", flag)
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "Profile %q is not defined. Did you mean:\n", result.Name)
		for _, suggestion := range result.Suggestions {
			fmt.Fprintf(r.out, "  - %s\n", suggestion)
		}
	}

	return nil
}

var _ Renderer[*usecase.ResolveProfileResult] = (*FlagsRenderer)(nil)
