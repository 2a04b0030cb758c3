package project

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// packageNamePattern allows lowercase alphanumerics, '-', '_' and '.',
// and forbids a leading '.' or '_'.
var packageNamePattern = regexp.MustCompile(`^[a-z0-9-][a-z0-9._-]*$`)

var nameValidator = newNameValidator()

func newNameValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("pkgname", func(fl validator.FieldLevel) bool {
		return packageNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateName reports whether name is usable as a project (npm package) name.
func ValidateName(name string) bool {
	return nameValidator.Var(name, "required,pkgname") == nil
}

// SuggestName derives a valid project name from an invalid one by stripping
// diacritics, lowercasing and collapsing disallowed characters into '-'.
// It returns "" when nothing usable remains.
func SuggestName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = cases.Lower(language.Und).String(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}

	suggestion := strings.TrimLeft(b.String(), "._-")
	if !ValidateName(suggestion) {
		return ""
	}
	return suggestion
}
