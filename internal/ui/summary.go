package ui

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ddddddO/gtree"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// FileTree renders files (slash-separated paths relative to the project
// root) as a tree under root.
func FileTree(root string, files []string) (string, error) {
	if len(files) == 0 {
		return root + "\n", nil
	}
	tree := gtree.NewRoot(root)
	for _, f := range files {
		node := tree
		for _, part := range strings.Split(path.Clean(f), "/") {
			node = node.Add(part)
		}
	}

	var buf bytes.Buffer
	if err := gtree.OutputFromRoot(&buf, tree); err != nil {
		return "", fmt.Errorf("render file tree: %w", err)
	}
	return buf.String(), nil
}

// NextStepsMarkdown returns the follow-up instructions for a generated project.
func NextStepsMarkdown(name string, cfg models.ProjectConfig) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	b.WriteString("```sh\n")
	fmt.Fprintf(&b, "cd %s\n", name)
	if cfg.Prisma {
		b.WriteString("npx prisma migrate dev --name init\n")
	}
	b.WriteString("npm run dev\n")
	b.WriteString("```\n")
	if cfg.Prisma {
		b.WriteString("\nSet `DATABASE_URL` in `.env` before running the migration.\n")
	}
	if cfg.Examples.HasCRUD() {
		b.WriteString("\nOpen http://localhost:3000/posts for the CRUD example.\n")
	}
	if cfg.Examples.HasAuth() {
		b.WriteString("\nOpen http://localhost:3000/auth for the auth example.\n")
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal. The no-color theme uses
// glamour's plain style.
func RenderMarkdown(theme *Theme, md string) (string, error) {
	style := glamour.WithAutoStyle()
	if theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// SuccessCard renders the framed success message shown after scaffolding.
func SuccessCard(theme *Theme, name, root string) string {
	body := theme.Success.Render("✓ Project created successfully!") + "\n" +
		theme.Muted.Render(name+" → "+root)
	return theme.Card.Render(body) + "\n"
}

// Summary combines the success card, the file tree and the next steps.
// Markdown rendering failures fall back to the raw markdown.
func Summary(theme *Theme, name, root string, files []string, cfg models.ProjectConfig) string {
	var b strings.Builder
	b.WriteString(SuccessCard(theme, name, root))

	if tree, err := FileTree(name, files); err == nil {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("Generated files:"))
		b.WriteString("\n")
		b.WriteString(tree)
	}

	md := NextStepsMarkdown(name, cfg)
	if rendered, err := RenderMarkdown(theme, md); err == nil {
		b.WriteString(rendered)
	} else {
		b.WriteString("\n" + md)
	}
	return b.String()
}
