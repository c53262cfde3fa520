package config

// Manifest represents the structure of the remake.yaml build manifest.
type Manifest struct {
	Version string    `yaml:"version"`
	Rules   []RuleDTO `yaml:"rules"`
}

// RuleDTO represents one rule entry in the manifest. A rule either
// creates a target (target set, with run or compile as its action) or
// modifies a file in place (modify + key set, with run as the modifier).
type RuleDTO struct {
	Target  string      `yaml:"target"`
	Deps    []string    `yaml:"deps"`
	Run     string      `yaml:"run"`
	Compile *CompileDTO `yaml:"compile"`
	Modify  string      `yaml:"modify"`
	Key     string      `yaml:"key"`
}

// CompileDTO configures the compile convenience form. An empty compiler
// falls back to the default.
type CompileDTO struct {
	Sources  []string `yaml:"sources"`
	Flags    []string `yaml:"flags"`
	Compiler string   `yaml:"compiler"`
}
