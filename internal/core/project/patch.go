package project

import (
	"strings"

	"github.com/nxt-gen-cli/nxt-gen/internal/template"
)

// PatchLayout prepends the providers import to a root layout and wraps the
// first {children} with the providers component. When the layout has no
// {children} token only the import is added.
func PatchLayout(layout string) (patched string, wrapped bool) {
	patched = template.ProvidersImport + layout
	if !strings.Contains(patched, template.ChildrenToken) {
		return patched, false
	}
	return strings.Replace(patched, template.ChildrenToken, template.WrappedChildren, 1), true
}

// PatchTailwindConfig adds the HeroUI import, plugin and theme content glob
// to an existing Tailwind config. Each edit is skipped when already present,
// so patching twice is a no-op. pluginInjected is false when the config has
// no plugins array to extend.
func PatchTailwindConfig(config string) (patched string, pluginInjected bool) {
	patched = config

	if !strings.Contains(patched, "@heroui/react") {
		patched = template.HeroUIImport + patched
	}

	switch {
	case strings.Contains(patched, "heroui()"):
		pluginInjected = true
	case strings.Contains(patched, "plugins: ["):
		patched = strings.Replace(patched, "plugins: [", "plugins: ["+template.HeroUIPlugin, 1)
		pluginInjected = true
	}

	if strings.Contains(patched, "content: [") && !strings.Contains(patched, "@heroui/theme") {
		patched = strings.Replace(patched, "content: [", "content: ["+template.HeroUIContentGlob, 1)
	}

	return patched, pluginInjected
}
