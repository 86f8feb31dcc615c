package types

// PlanSpec is the on-disk YAML representation of a plan.
type PlanSpec struct {
	APIVersion string   `yaml:"api_version"`
	Kind       PlanKind `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Settings   Settings `yaml:"settings"`
	Steps      []Step   `yaml:"steps"`
}

type Metadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Settings carries run-wide configuration that the shell-script
// ancestors of this tool took from ambient environment state.
type Settings struct {
	// Home is the base directory substituted for a leading "~/" in
	// file and gitrepo step paths.
	Home string `yaml:"home,omitempty"`
	// FailureLog is where failed-step records are appended.
	FailureLog string `yaml:"failure_log,omitempty"`
	// SudoCommand is the privilege-escalation binary prepended to
	// elevated subprocesses. Defaults to sudo.
	SudoCommand string `yaml:"sudo_command,omitempty"`
}
