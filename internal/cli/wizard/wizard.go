package wizard

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nxt-gen-cli/nxt-gen/internal/ui"
	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// Collect builds a ProjectConfig. Dimensions supplied in opts are taken as
// is; the rest are asked through p in declared order, pre-selecting the
// value from defaults.
func Collect(opts models.Options, defaults models.ProjectConfig, p Prompter) (models.ProjectConfig, error) {
	cfg := opts.Merge(defaults)
	if opts.Complete() {
		return cfg, nil
	}

	for _, q := range ConfigQuestions() {
		if isSupplied(q.ID, opts) {
			continue
		}
		answer, err := p.Ask(q, defaultAnswer(q.ID, cfg))
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				return models.ProjectConfig{}, err
			}
			return models.ProjectConfig{}, fmt.Errorf("wizard error: %w", err)
		}
		if err := saveAnswer(q.ID, answer, &cfg); err != nil {
			return models.ProjectConfig{}, err
		}
	}
	return cfg, nil
}

// PromptName asks for the project name, offering def. The answer is trimmed.
func PromptName(p Prompter, def string) (string, error) {
	if def == "" {
		def = DefaultProjectName
	}
	answer, err := p.Ask(NameQuestion(), def)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// DefaultsPrompter answers every question with its default.
type DefaultsPrompter struct{}

// Ask returns def.
func (DefaultsPrompter) Ask(_ Question, def string) (string, error) {
	return def, nil
}

// HuhPrompter asks questions on the terminal with huh forms.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewHuhPrompter creates a HuhPrompter. With noColor set it uses huh's
// base theme. Setting ACCESSIBLE switches huh to plain line prompts.
func NewHuhPrompter(noColor bool) *HuhPrompter {
	h := &HuhPrompter{
		theme:      newWizardTheme(),
		accessible: os.Getenv("ACCESSIBLE") != "",
	}
	if noColor {
		h.theme = huh.ThemeBase()
	}
	return h
}

// Ask runs a single-field form for q.
func (h *HuhPrompter) Ask(q Question, def string) (string, error) {
	var (
		field   huh.Field
		collect func() string
	)

	switch q.Type {
	case QuestionTypeConfirm:
		value := def == "true"
		field = huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&value)
		collect = func() string { return strconv.FormatBool(value) }

	case QuestionTypeSelect:
		value := def
		field = huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(buildOptions(q.Options, def)...).
			Value(&value)
		collect = func() string { return value }

	case QuestionTypeInput:
		value := ""
		required := q.Required
		inp := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Value(&value).
			Validate(func(val string) error {
				if required && strings.TrimSpace(val) == "" && def == "" {
					return errors.New("a value is required")
				}
				return nil
			})
		if def != "" {
			inp = inp.Placeholder(def)
		}
		field = inp
		collect = func() string {
			if v := strings.TrimSpace(value); v != "" {
				return v
			}
			return def
		}

	default:
		return "", fmt.Errorf("unsupported question type %d", q.Type)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithAccessible(h.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return collect(), nil
}

// buildOptions converts options to huh options with the default first.
// huh v0.8.0 sets viewport.YOffset to the selected index, hiding any
// options listed above the default.
func buildOptions(options []Option, def string) []huh.Option[string] {
	ordered := make([]Option, 0, len(options))
	for _, opt := range options {
		if opt.Value == def {
			ordered = append(ordered, opt)
		}
	}
	for _, opt := range options {
		if opt.Value != def {
			ordered = append(ordered, opt)
		}
	}

	opts := make([]huh.Option[string], len(ordered))
	for i, opt := range ordered {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}
	return opts
}

// newWizardTheme creates a huh.Theme with the nxt-gen brand colors.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	p := ui.DefaultPalette()

	t.Focused.Base = t.Focused.Base.BorderForeground(p.Border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(p.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p.Primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(p.Text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p.Success)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p.Primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(p.Muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p.Secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(p.Primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(p.Text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
