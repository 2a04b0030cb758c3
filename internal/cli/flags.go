package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// Flag names.
const (
	flagPrisma       = "prisma"
	flagReactQuery   = "react-query"
	flagAxios        = "axios"
	flagUI           = "ui"
	flagFramerMotion = "framer-motion"
	flagLucide       = "lucide"
	flagExamples     = "examples"
	flagYes          = "yes"
	flagVerbose      = "verbose"
	flagConfig       = "config"
)

// enumFlag is a pflag.Value that accepts only the values parse accepts,
// so cobra rejects bad input while parsing flags.
type enumFlag[T ~string] struct {
	value    T
	typeName string
	parse    func(string) (T, error)
}

var _ pflag.Value = (*enumFlag[models.UILibrary])(nil)

func (f *enumFlag[T]) String() string { return string(f.value) }

func (f *enumFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f *enumFlag[T]) Type() string { return f.typeName }

func newUIFlag() *enumFlag[models.UILibrary] {
	return &enumFlag[models.UILibrary]{typeName: "ui", parse: models.ParseUILibrary}
}

func newExamplesFlag() *enumFlag[models.Examples] {
	return &enumFlag[models.Examples]{typeName: "examples", parse: models.ParseExamples}
}

// registerFlags adds the generator flags to cmd.
func registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool(flagPrisma, false, "Use Prisma as the ORM")
	f.Bool(flagReactQuery, false, "Use TanStack React Query for data fetching")
	f.Bool(flagAxios, false, "Use Axios for HTTP requests")
	f.Var(newUIFlag(), flagUI, "UI library: shadcn, heroui, both or none")
	f.Bool(flagFramerMotion, false, "Install Framer Motion")
	f.Bool(flagLucide, false, "Install Lucide React icons")
	f.Var(newExamplesFlag(), flagExamples, "Example features: none, crud, auth or both")
	f.BoolP(flagYes, "y", false, "Accept defaults for every choice not given as a flag")
	f.BoolP(flagVerbose, "v", false, "Stream install output and print debug logs")
	f.String(flagConfig, "", "Preset file with default choices (default: .nxtgen.yaml in the working or home directory)")
}

// optionsFromFlags returns the choices supplied on the command line.
// Flags that were not set stay nil so the wizard asks for them.
func optionsFromFlags(cmd *cobra.Command) models.Options {
	f := cmd.Flags()
	var opts models.Options

	opts.Prisma = changedBool(f, flagPrisma)
	opts.ReactQuery = changedBool(f, flagReactQuery)
	opts.Axios = changedBool(f, flagAxios)
	opts.FramerMotion = changedBool(f, flagFramerMotion)
	opts.Lucide = changedBool(f, flagLucide)

	if f.Changed(flagUI) {
		if v, ok := f.Lookup(flagUI).Value.(*enumFlag[models.UILibrary]); ok {
			ui := v.value
			opts.UI = &ui
		}
	}
	if f.Changed(flagExamples) {
		if v, ok := f.Lookup(flagExamples).Value.(*enumFlag[models.Examples]); ok {
			examples := v.value
			opts.Examples = &examples
		}
	}
	return opts
}

func changedBool(f *pflag.FlagSet, name string) *bool {
	if !f.Changed(name) {
		return nil
	}
	v, err := f.GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
