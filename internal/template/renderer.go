package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"sync"
	"text/template"
)

// unexpandedTokenPattern detects leftover Go template actions in rendered output.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render executes the named template with data.
	// Returns ErrMissingTemplateKey if a key is missing and
	// ErrUnexpandedToken if template actions remain after rendering.
	Render(templateName string, data any) ([]byte, error)

	// Preload parses every template up front so later renders never parse.
	Preload() error
}

// renderer is the concrete implementation of Renderer.
// Each template is read and parsed once, then served from the cache.
type renderer struct {
	fsys fs.FS

	mu     sync.Mutex
	parsed map[string]*template.Template
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys, parsed: make(map[string]*template.Template)}
}

// Preload parses every *.tmpl file at the root of the filesystem.
func (r *renderer) Preload() error {
	names, err := fs.Glob(r.fsys, "*.tmpl")
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}
	for _, name := range names {
		if _, err := r.lookup(name); err != nil {
			return err
		}
	}
	return nil
}

// lookup returns the parsed template for name, parsing it on first use.
func (r *renderer) lookup(name string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.parsed[name]; ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}

	r.parsed[name] = tmpl
	return tmpl, nil
}

// Render executes a cached template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	tmpl, err := r.lookup(templateName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}
