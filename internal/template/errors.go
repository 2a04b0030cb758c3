package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the data lacks a key the template references.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a template token.
	ErrUnexpandedToken = errors.New("unexpanded template token")
)
