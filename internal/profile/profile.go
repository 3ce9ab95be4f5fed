package profile

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/prestic-org/prestic-cli/internal/domain"
)

// SectionSource is the read-only view of the configuration document the
// engine resolves against.
type SectionSource interface {
	GetSection(name string) (map[string]any, bool)
}

// Profile resolves one named profile: it merges the inheritance chain,
// classifies every recognized key, and renders the merged settings as
// command-line flags. Construction is lazy; nothing is read until Resolve
// is called.
type Profile struct {
	source SectionSource
	name   string
	strict bool

	resolved   bool
	inherit    string
	settings   map[string]domain.Value
	repository string
	quiet      bool
	verbose    domain.Value
}

// Option configures a Profile at construction time.
type Option func(*Profile)

// WithStrictInheritance makes a missing ancestor a hard error. By default a
// parent name without a section contributes nothing, which mirrors how a
// missing profile resolves to all-defaults.
func WithStrictInheritance() Option {
	return func(p *Profile) {
		p.strict = true
	}
}

// New creates a profile bound to a configuration source. No merging happens
// until Resolve.
func New(source SectionSource, name string, opts ...Option) *Profile {
	p := &Profile{
		source:  source,
		name:    name,
		verbose: domain.Absent(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resolve fetches the profile's section, follows the inheritance chain,
// merges ancestor settings underneath the profile's own keys, and populates
// the typed fields. It must run before flags or properties are queried.
// Resolving twice is a no-op.
func (p *Profile) Resolve() error {
	if p.resolved {
		return nil
	}

	chain, err := p.ancestorChain()
	if err != nil {
		return err
	}

	// Merge from the root ancestor down: later (more derived) sections win.
	merged := make(map[string]domain.Value)
	for _, section := range chain {
		for key, raw := range section {
			merged[key] = domain.ValueOf(raw)
		}
	}
	p.settings = merged

	// The inherit property reports the direct parent, not a merged value.
	if own, ok := p.source.GetSection(p.name); ok {
		if parent, ok := own["inherit"].(string); ok {
			p.inherit = parent
		}
	}

	p.repository = repositoryOf(merged["repository"])
	p.quiet = merged["quiet"].Kind() == domain.KindBool && merged["quiet"].Bool()
	p.verbose = verboseOf(merged["verbose"])

	p.resolved = true
	return nil
}

// ancestorChain returns the sections from the root ancestor down to this
// profile. A profile appearing twice in its own chain is a fatal
// configuration error; a named ancestor without a section terminates the
// chain unless strict inheritance is enabled.
func (p *Profile) ancestorChain() ([]map[string]any, error) {
	var chain []map[string]any
	visited := make(map[string]bool)
	var order []string

	name := p.name
	previous := ""
	for {
		if visited[name] {
			return nil, &domain.InheritanceCycleError{Chain: append(order, name)}
		}
		visited[name] = true
		order = append(order, name)

		section, ok := p.source.GetSection(name)
		if !ok {
			if p.strict && previous != "" {
				return nil, &domain.MissingAncestorError{Profile: previous, Ancestor: name}
			}
			break
		}
		chain = append([]map[string]any{section}, chain...)

		parent, ok := section["inherit"].(string)
		if !ok || parent == "" {
			break
		}
		previous = name
		name = parent
	}

	return chain, nil
}

// GlobalFlags renders the merged settings as an ordered list of flag
// fragments. Iteration follows the recognized-key table, so the output is
// reproducible regardless of source map ordering. Unrecognized keys never
// contribute.
func (p *Profile) GlobalFlags() []string {
	flags := []string{}
	for _, spec := range globalFlagTable {
		value, ok := p.settings[spec.Key]
		if !ok {
			continue
		}
		flags = append(flags, renderFlag(spec, value)...)
	}
	return flags
}

// renderFlag applies one FlagSpec policy to one value. Wrong types resolve
// to no output, never an error.
func renderFlag(spec FlagSpec, value domain.Value) []string {
	flag := spec.FlagName()

	switch spec.Policy {
	case BoolFlag:
		if value.Kind() == domain.KindBool && value.Bool() {
			return []string{"--" + flag}
		}

	case ScalarFlag:
		if value.Kind() == domain.KindInt {
			return []string{fmt.Sprintf("--%s %d", flag, value.Int())}
		}

	case MultiTypeFlag:
		switch value.Kind() {
		case domain.KindBool:
			if value.Bool() {
				return []string{"--" + flag}
			}
		case domain.KindInt:
			return []string{fmt.Sprintf("--%s %d", flag, value.Int())}
		}

	case ListFlag:
		switch value.Kind() {
		case domain.KindString:
			return []string{fmt.Sprintf("--%s '%s'", flag, value.String())}
		case domain.KindList:
			return lo.Map(value.List(), func(item string, _ int) string {
				return fmt.Sprintf("--%s '%s'", flag, item)
			})
		}

	case RepositoryField:
		if repo := repositoryOf(value); repo != "" {
			return []string{fmt.Sprintf("--%s '%s'", flag, repo)}
		}
	}

	return nil
}

// CommandArgs renders the merged settings as a tokenized argument vector
// ready for exec, with values as separate tokens and no shell quoting.
func (p *Profile) CommandArgs() []string {
	var args []string
	for _, spec := range globalFlagTable {
		value, ok := p.settings[spec.Key]
		if !ok {
			continue
		}
		flag := "--" + spec.FlagName()

		switch spec.Policy {
		case BoolFlag:
			if value.Kind() == domain.KindBool && value.Bool() {
				args = append(args, flag)
			}
		case ScalarFlag:
			if value.Kind() == domain.KindInt {
				args = append(args, flag, fmt.Sprintf("%d", value.Int()))
			}
		case MultiTypeFlag:
			switch value.Kind() {
			case domain.KindBool:
				if value.Bool() {
					args = append(args, flag)
				}
			case domain.KindInt:
				args = append(args, flag, fmt.Sprintf("%d", value.Int()))
			}
		case ListFlag:
			switch value.Kind() {
			case domain.KindString:
				args = append(args, flag, value.String())
			case domain.KindList:
				for _, item := range value.List() {
					args = append(args, flag, item)
				}
			}
		case RepositoryField:
			if repo := repositoryOf(value); repo != "" {
				args = append(args, flag, repo)
			}
		}
	}
	return args
}

// Name returns the requested profile name.
func (p *Profile) Name() string {
	return p.name
}

// Inherit returns the direct parent profile name, or "" when the profile
// does not inherit.
func (p *Profile) Inherit() string {
	return p.inherit
}

// Repository returns the resolved repository path. A non-string or empty
// value resolves to "".
func (p *Profile) Repository() string {
	return p.repository
}

// Quiet reports whether the quiet flag is set.
func (p *Profile) Quiet() bool {
	return p.quiet
}

// Verbose returns the verbosity setting: a bool, an int, or absent when the
// key is missing or carries an unusable type.
func (p *Profile) Verbose() domain.Value {
	return p.verbose
}

// Settings returns the merged settings keyed by configuration key.
func (p *Profile) Settings() map[string]domain.Value {
	return p.settings
}

// repositoryOf applies the repository policy: only a non-empty string
// counts.
func repositoryOf(value domain.Value) string {
	if value.Kind() == domain.KindString {
		return value.String()
	}
	return ""
}

// verboseOf applies the verbose policy: bools and ints pass through, any
// other type resolves to absent.
func verboseOf(value domain.Value) domain.Value {
	switch value.Kind() {
	case domain.KindBool, domain.KindInt:
		return value
	default:
		return domain.Absent()
	}
}
