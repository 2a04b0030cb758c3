package models

import (
	"fmt"
	"strings"
)

// UILibrary selects the component library installed into the project.
type UILibrary string

const (
	UINone   UILibrary = "none"
	UIShadcn UILibrary = "shadcn"
	UIHeroUI UILibrary = "heroui"
	UIBoth   UILibrary = "both"
)

// ValidUILibraries returns all valid UI library values in display order.
func ValidUILibraries() []UILibrary {
	return []UILibrary{UIShadcn, UIHeroUI, UIBoth, UINone}
}

// IsValid checks if the UI library is a known value.
func (u UILibrary) IsValid() bool {
	switch u {
	case UINone, UIShadcn, UIHeroUI, UIBoth:
		return true
	}
	return false
}

// HasShadcn reports whether shadcn/ui utilities are part of the selection.
func (u UILibrary) HasShadcn() bool {
	return u == UIShadcn || u == UIBoth
}

// HasHeroUI reports whether HeroUI is part of the selection.
func (u UILibrary) HasHeroUI() bool {
	return u == UIHeroUI || u == UIBoth
}

// ParseUILibrary converts a user-supplied string into a UILibrary.
func ParseUILibrary(s string) (UILibrary, error) {
	u := UILibrary(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", fmt.Errorf("invalid ui library %q: must be one of: %s", s, joinValues(ValidUILibraries()))
	}
	return u, nil
}

// Examples selects which example features are generated.
type Examples string

const (
	ExamplesNone Examples = "none"
	ExamplesCRUD Examples = "crud"
	ExamplesAuth Examples = "auth"
	ExamplesBoth Examples = "both"
)

// ValidExamples returns all valid examples values in display order.
func ValidExamples() []Examples {
	return []Examples{ExamplesNone, ExamplesCRUD, ExamplesAuth, ExamplesBoth}
}

// IsValid checks if the examples selection is a known value.
func (e Examples) IsValid() bool {
	switch e {
	case ExamplesNone, ExamplesCRUD, ExamplesAuth, ExamplesBoth:
		return true
	}
	return false
}

// HasCRUD reports whether the posts CRUD example is selected.
func (e Examples) HasCRUD() bool {
	return e == ExamplesCRUD || e == ExamplesBoth
}

// HasAuth reports whether the auth placeholder example is selected.
func (e Examples) HasAuth() bool {
	return e == ExamplesAuth || e == ExamplesBoth
}

// ParseExamples converts a user-supplied string into an Examples value.
func ParseExamples(s string) (Examples, error) {
	e := Examples(strings.ToLower(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", fmt.Errorf("invalid examples %q: must be one of: %s", s, joinValues(ValidExamples()))
	}
	return e, nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
