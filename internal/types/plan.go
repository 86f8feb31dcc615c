package types

// Step is the tagged unit of work in a plan. Kind selects the variant;
// the remaining fields are interpreted per kind:
//
//	repo/aur/pip: Package (and optional MinVersion)
//	command:      Argv, optional Unless predicate
//	file:         Path, Content, Mode
//	gitrepo:      URL, Dest
//	update:       no extra fields
type Step struct {
	Name    string   `yaml:"name"`
	Kind    StepKind `yaml:"kind"`
	Package string   `yaml:"package,omitempty"`
	// MinVersion narrows the idempotence check for package steps: an
	// installed version older than this does not count as satisfied.
	MinVersion string    `yaml:"min_version,omitempty"`
	Argv       []string  `yaml:"argv,omitempty"`
	Unless     []string  `yaml:"unless,omitempty"`
	Path       string    `yaml:"path,omitempty"`
	Content    string    `yaml:"content,omitempty"`
	Mode       WriteMode `yaml:"mode,omitempty"`
	URL        string    `yaml:"url,omitempty"`
	Dest       string    `yaml:"dest,omitempty"`

	Critical bool `yaml:"critical,omitempty"`
	// ProvidesAurHelper marks the step that installs the AUR helper
	// binary. Such steps are implicitly critical and must precede every
	// aur step in the plan.
	ProvidesAurHelper bool `yaml:"provides_aur_helper,omitempty"`
	// Elevate runs the step's subprocess through the configured
	// privilege-escalation command. Package and update steps elevate
	// regardless of this flag.
	Elevate        bool `yaml:"elevate,omitempty"`
	TimeoutSeconds int  `yaml:"timeout_seconds,omitempty"`
}

type Plan struct {
	Name  string
	Steps []Step
}
