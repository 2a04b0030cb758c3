package config

import (
	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// rawPreset mirrors the preset file before enum validation.
type rawPreset struct {
	Prisma       bool   `mapstructure:"prisma"`
	ReactQuery   bool   `mapstructure:"react_query"`
	Axios        bool   `mapstructure:"axios"`
	UI           string `mapstructure:"ui"`
	FramerMotion bool   `mapstructure:"framer_motion"`
	Lucide       bool   `mapstructure:"lucide"`
	Examples     string `mapstructure:"examples"`
}

// Validate converts raw into a ProjectConfig, collecting every invalid field.
func (raw rawPreset) Validate() (models.ProjectConfig, error) {
	var errs []ValidationError

	ui, err := models.ParseUILibrary(raw.UI)
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   KeyUI,
			Message: "unknown UI library",
			Value:   raw.UI,
			Wrapped: ErrInvalidUI,
		})
	}

	examples, err := models.ParseExamples(raw.Examples)
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   KeyExamples,
			Message: "unknown example set",
			Value:   raw.Examples,
			Wrapped: ErrInvalidExamples,
		})
	}

	if len(errs) > 0 {
		return models.ProjectConfig{}, &ValidationErrors{Errors: errs}
	}

	return models.ProjectConfig{
		Prisma:       raw.Prisma,
		ReactQuery:   raw.ReactQuery,
		Axios:        raw.Axios,
		UI:           ui,
		FramerMotion: raw.FramerMotion,
		Lucide:       raw.Lucide,
		Examples:     examples,
	}, nil
}
