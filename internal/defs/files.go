package defs

// Relative paths (slash-separated) inside a generated Next.js project.
const (
	// HomePage is the entry page created by create-next-app.
	HomePage = "src/app/page.tsx"

	// RootLayout is the root layout patched to mount the providers component.
	RootLayout = "src/app/layout.tsx"

	// TailwindConfig is the Tailwind configuration patched for HeroUI.
	TailwindConfig = "tailwind.config.ts"

	// PrismaSchema is the Prisma schema file.
	PrismaSchema = "prisma/schema.prisma"

	// PrismaClient is the shared Prisma client module.
	PrismaClient = "src/lib/prisma.ts"

	// AxiosClient is the shared Axios instance module.
	AxiosClient = "src/lib/axios.ts"

	// CNUtils is the shadcn/ui class name helper.
	CNUtils = "src/lib/utils.ts"

	// QueryProvider is the React Query provider component.
	QueryProvider = "src/components/providers/query-provider.tsx"

	// Providers is the root providers component.
	Providers = "src/components/providers.tsx"

	// PostsRoute is the posts API route handler of the CRUD example.
	PostsRoute = "src/app/api/posts/route.ts"

	// PostsPage is the posts page of the CRUD example.
	PostsPage = "src/app/posts/page.tsx"

	// AuthPage is the placeholder page of the auth example.
	AuthPage = "src/app/auth/page.tsx"
)

// DefaultAssets are the static files shipped by create-next-app that the
// generator removes.
var DefaultAssets = []string{
	"public/next.svg",
	"public/vercel.svg",
}

// File permissions for generated content.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
