package models

// ProjectConfig is the complete set of generator choices.
// It is a value type: copy it freely, never mutate a shared instance.
type ProjectConfig struct {
	Prisma       bool      `yaml:"prisma" mapstructure:"prisma"`
	ReactQuery   bool      `yaml:"react_query" mapstructure:"react_query"`
	Axios        bool      `yaml:"axios" mapstructure:"axios"`
	UI           UILibrary `yaml:"ui" mapstructure:"ui"`
	FramerMotion bool      `yaml:"framer_motion" mapstructure:"framer_motion"`
	Lucide       bool      `yaml:"lucide" mapstructure:"lucide"`
	Examples     Examples  `yaml:"examples" mapstructure:"examples"`
}

// DefaultProjectConfig returns the built-in defaults offered by the wizard.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Prisma:       false,
		ReactQuery:   true,
		Axios:        false,
		UI:           UIShadcn,
		FramerMotion: false,
		Lucide:       true,
		Examples:     ExamplesNone,
	}
}

// NeedsProviders reports whether any selected feature requires a
// run-time context provider around the application tree.
func (c ProjectConfig) NeedsProviders() bool {
	return c.ReactQuery
}

// Options is a partially specified ProjectConfig collected from flags.
// A nil field means the value was not supplied.
type Options struct {
	Prisma       *bool
	ReactQuery   *bool
	Axios        *bool
	UI           *UILibrary
	FramerMotion *bool
	Lucide       *bool
	Examples     *Examples
}

// Complete reports whether every dimension has been supplied.
func (o Options) Complete() bool {
	return o.Prisma != nil && o.ReactQuery != nil && o.Axios != nil &&
		o.UI != nil && o.FramerMotion != nil && o.Lucide != nil && o.Examples != nil
}

// Merge fills every unsupplied dimension from base and returns the result.
func (o Options) Merge(base ProjectConfig) ProjectConfig {
	cfg := base
	if o.Prisma != nil {
		cfg.Prisma = *o.Prisma
	}
	if o.ReactQuery != nil {
		cfg.ReactQuery = *o.ReactQuery
	}
	if o.Axios != nil {
		cfg.Axios = *o.Axios
	}
	if o.UI != nil {
		cfg.UI = *o.UI
	}
	if o.FramerMotion != nil {
		cfg.FramerMotion = *o.FramerMotion
	}
	if o.Lucide != nil {
		cfg.Lucide = *o.Lucide
	}
	if o.Examples != nil {
		cfg.Examples = *o.Examples
	}
	return cfg
}
