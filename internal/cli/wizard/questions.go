package wizard

import (
	"fmt"
	"strconv"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// Question IDs, in the order they are asked.
const (
	QuestionPrisma       = "prisma"
	QuestionReactQuery   = "react_query"
	QuestionAxios        = "axios"
	QuestionUI           = "ui"
	QuestionFramerMotion = "framer_motion"
	QuestionLucide       = "lucide"
	QuestionExamples     = "examples"
	QuestionProjectName  = "project_name"
)

// DefaultProjectName is offered when the project name is prompted for.
const DefaultProjectName = "my-app"

// ConfigQuestions returns one question per configuration dimension.
func ConfigQuestions() []Question {
	return []Question{
		{
			ID:    QuestionPrisma,
			Type:  QuestionTypeConfirm,
			Title: "Would you like to use Prisma as your ORM?",
		},
		{
			ID:    QuestionReactQuery,
			Type:  QuestionTypeConfirm,
			Title: "Would you like to use React Query for data fetching?",
		},
		{
			ID:    QuestionAxios,
			Type:  QuestionTypeConfirm,
			Title: "Would you like to use Axios for HTTP requests?",
		},
		{
			ID:    QuestionUI,
			Type:  QuestionTypeSelect,
			Title: "Which UI library would you like to use?",
			Options: []Option{
				{Label: "shadcn/ui", Value: string(models.UIShadcn), Desc: "Tailwind utilities for shadcn components"},
				{Label: "HeroUI", Value: string(models.UIHeroUI), Desc: "Component library with a Tailwind plugin"},
				{Label: "Both", Value: string(models.UIBoth)},
				{Label: "None", Value: string(models.UINone)},
			},
		},
		{
			ID:    QuestionFramerMotion,
			Type:  QuestionTypeConfirm,
			Title: "Would you like to use Framer Motion for animations?",
		},
		{
			ID:    QuestionLucide,
			Type:  QuestionTypeConfirm,
			Title: "Would you like to use Lucide React for icons?",
		},
		{
			ID:    QuestionExamples,
			Type:  QuestionTypeSelect,
			Title: "Which example features would you like to include?",
			Options: []Option{
				{Label: "None", Value: string(models.ExamplesNone)},
				{Label: "CRUD", Value: string(models.ExamplesCRUD), Desc: "Posts API route and page"},
				{Label: "Auth", Value: string(models.ExamplesAuth), Desc: "Placeholder auth page"},
				{Label: "Both", Value: string(models.ExamplesBoth)},
			},
		},
	}
}

// NameQuestion returns the project name question.
func NameQuestion() Question {
	return Question{
		ID:          QuestionProjectName,
		Type:        QuestionTypeInput,
		Title:       "What is your project named?",
		Description: "Lowercase letters, digits, '-', '_' and '.'.",
		Required:    true,
	}
}

// isSupplied reports whether the dimension behind id was given as a flag.
func isSupplied(id string, opts models.Options) bool {
	switch id {
	case QuestionPrisma:
		return opts.Prisma != nil
	case QuestionReactQuery:
		return opts.ReactQuery != nil
	case QuestionAxios:
		return opts.Axios != nil
	case QuestionUI:
		return opts.UI != nil
	case QuestionFramerMotion:
		return opts.FramerMotion != nil
	case QuestionLucide:
		return opts.Lucide != nil
	case QuestionExamples:
		return opts.Examples != nil
	}
	return false
}

// defaultAnswer returns the pre-selected answer for id from cfg.
func defaultAnswer(id string, cfg models.ProjectConfig) string {
	switch id {
	case QuestionPrisma:
		return strconv.FormatBool(cfg.Prisma)
	case QuestionReactQuery:
		return strconv.FormatBool(cfg.ReactQuery)
	case QuestionAxios:
		return strconv.FormatBool(cfg.Axios)
	case QuestionUI:
		return string(cfg.UI)
	case QuestionFramerMotion:
		return strconv.FormatBool(cfg.FramerMotion)
	case QuestionLucide:
		return strconv.FormatBool(cfg.Lucide)
	case QuestionExamples:
		return string(cfg.Examples)
	}
	return ""
}

// saveAnswer stores an answer in cfg.
func saveAnswer(id, value string, cfg *models.ProjectConfig) error {
	var err error
	switch id {
	case QuestionPrisma:
		cfg.Prisma, err = strconv.ParseBool(value)
	case QuestionReactQuery:
		cfg.ReactQuery, err = strconv.ParseBool(value)
	case QuestionAxios:
		cfg.Axios, err = strconv.ParseBool(value)
	case QuestionUI:
		cfg.UI, err = models.ParseUILibrary(value)
	case QuestionFramerMotion:
		cfg.FramerMotion, err = strconv.ParseBool(value)
	case QuestionLucide:
		cfg.Lucide, err = strconv.ParseBool(value)
	case QuestionExamples:
		cfg.Examples, err = models.ParseExamples(value)
	default:
		return fmt.Errorf("%w: unknown question %q", ErrInvalidAnswer, id)
	}
	if err != nil {
		return fmt.Errorf("%w for %s: %v", ErrInvalidAnswer, id, err)
	}
	return nil
}
