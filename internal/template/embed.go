package template

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the embedded template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedFS, "templates")
}
