// Package template holds the source files nxt-gen writes into a generated
// Next.js project. Every exported function is pure and deterministic: the
// same arguments always produce byte-identical text.
package template

import (
	"fmt"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// library renders the embedded templates, all parsed once at init. The
// template set is static, so a parse or render failure is a programming
// error and panics.
var library = mustLibrary()

func mustLibrary() Renderer {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		panic(fmt.Sprintf("template: load embedded templates: %v", err))
	}
	r := NewRenderer(fsys)
	if err := r.Preload(); err != nil {
		panic(fmt.Sprintf("template: %v", err))
	}
	return r
}

func mustRender(name string, data any) string {
	out, err := library.Render(name, data)
	if err != nil {
		panic(fmt.Sprintf("template: render %s: %v", name, err))
	}
	return string(out)
}

// APIRoute returns the posts API route handler. With prisma the handler
// reads and writes through the generated Prisma client; without it the
// handler serves an in-memory mock list.
func APIRoute(prisma bool) string {
	return mustRender("api_route.ts.tmpl", struct{ Prisma bool }{prisma})
}

// PostsPage returns the client-side posts page. reactQuery selects the
// useQuery/useMutation implementation over useState/useEffect; axios
// selects the shared Axios instance over fetch.
func PostsPage(reactQuery, axios bool) string {
	return mustRender("posts_page.tsx.tmpl", struct {
		ReactQuery bool
		Axios      bool
	}{reactQuery, axios})
}

// Providers returns the root providers component. Only features that need
// a run-time context provider add a wrapper element.
func Providers(cfg models.ProjectConfig) string {
	return mustRender("providers.tsx.tmpl", struct{ ReactQuery bool }{cfg.NeedsProviders()})
}

// QueryProvider returns the React Query client provider component.
func QueryProvider() string {
	return mustRender("query_provider.tsx.tmpl", nil)
}

// PrismaSchema returns the Prisma schema with the example Post model.
func PrismaSchema() string {
	return mustRender("schema.prisma.tmpl", nil)
}

// PrismaClient returns the shared Prisma client module.
func PrismaClient() string {
	return mustRender("prisma_client.ts.tmpl", nil)
}

// AxiosClient returns the shared Axios instance module.
func AxiosClient() string {
	return mustRender("axios_client.ts.tmpl", nil)
}

// HomePage returns the placeholder home page for the named project.
func HomePage(projectName string) string {
	return mustRender("home_page.tsx.tmpl", struct{ Name string }{projectName})
}

// HubPage returns the home page that links to every generated example.
func HubPage(projectName string) string {
	return mustRender("hub_page.tsx.tmpl", struct{ Name string }{projectName})
}
