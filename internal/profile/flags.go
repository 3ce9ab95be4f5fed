package profile

// Policy declares how a recognized configuration key is turned into
// command-line flags.
type Policy int

const (
	// StructuralField participates in resolution but never renders a flag
	StructuralField Policy = iota

	// BoolFlag renders a bare --key when the value is boolean true
	BoolFlag

	// ScalarFlag renders --key <n> for any integer value, including zero
	// and negatives
	ScalarFlag

	// MultiTypeFlag renders a bare --key for boolean true, --key <n> for an
	// integer, and nothing for anything else
	MultiTypeFlag

	// ListFlag renders one --key '<item>' per value; a single string counts
	// as a one-item list
	ListFlag

	// RepositoryField is only honored as a non-empty string and renders
	// --repo '<value>'
	RepositoryField
)

// FlagSpec binds a configuration key to its rendering policy. When Flag is
// empty the key name doubles as the flag name.
type FlagSpec struct {
	Key    string
	Flag   string
	Policy Policy
}

// FlagName returns the command-line flag name for this spec.
func (s FlagSpec) FlagName() string {
	if s.Flag != "" {
		return s.Flag
	}
	return s.Key
}

// globalFlagTable lists every recognized configuration key. Declaration
// order here is the render order of the generated flags, so output stays
// stable no matter how the source document orders its keys.
var globalFlagTable = []FlagSpec{
	{Key: "inherit", Policy: StructuralField},
	{Key: "repository", Flag: "repo", Policy: RepositoryField},
	{Key: "password-file", Policy: ListFlag},
	{Key: "password-command", Policy: ListFlag},
	{Key: "cache-dir", Policy: ListFlag},
	{Key: "cacert", Policy: ListFlag},
	{Key: "key-hint", Policy: ListFlag},
	{Key: "quiet", Policy: BoolFlag},
	{Key: "verbose", Policy: MultiTypeFlag},
	{Key: "json", Policy: BoolFlag},
	{Key: "no-cache", Policy: BoolFlag},
	{Key: "no-lock", Policy: BoolFlag},
	{Key: "cleanup-cache", Policy: BoolFlag},
	{Key: "limit-upload", Policy: ScalarFlag},
	{Key: "limit-download", Policy: ScalarFlag},
	{Key: "option", Policy: ListFlag},
}

// GlobalFlagTable exposes a copy of the recognized-key table, mainly for
// documentation commands.
func GlobalFlagTable() []FlagSpec {
	table := make([]FlagSpec, len(globalFlagTable))
	copy(table, globalFlagTable)
	return table
}
