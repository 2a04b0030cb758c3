package project

import (
	"context"

	"github.com/nxt-gen-cli/nxt-gen/internal/defs"
	"github.com/nxt-gen-cli/nxt-gen/internal/shell"
	"github.com/nxt-gen-cli/nxt-gen/internal/template"
)

// createBaseProject runs create-next-app in the working directory. The
// command always streams to the terminal because it may prompt.
func createBaseProject(ctx context.Context, s *session) error {
	args := append([]string{"create-next-app@latest", s.name}, createNextAppArgs...)
	return s.run(ctx, shell.Command{Name: "npx", Args: args, Dir: s.opts.WorkDir})
}

func cleanupDefaultFiles(_ context.Context, s *session) error {
	if err := s.writeFile(defs.HomePage, template.HomePage(s.name)); err != nil {
		return err
	}
	for _, asset := range defs.DefaultAssets {
		if err := s.removeFile(asset); err != nil {
			return err
		}
	}
	return nil
}

func setupPrisma(ctx context.Context, s *session) error {
	if err := s.install(ctx, "prisma", "--save-dev"); err != nil {
		return err
	}
	if err := s.install(ctx, "@prisma/client"); err != nil {
		return err
	}
	if err := s.exec(ctx, "npx", "prisma", "init"); err != nil {
		return err
	}
	if err := s.writeFile(defs.PrismaSchema, template.PrismaSchema()); err != nil {
		return err
	}
	return s.writeFile(defs.PrismaClient, template.PrismaClient())
}

func setupReactQuery(ctx context.Context, s *session) error {
	if err := s.install(ctx, "@tanstack/react-query"); err != nil {
		return err
	}
	return s.writeFile(defs.QueryProvider, template.QueryProvider())
}

func setupAxios(ctx context.Context, s *session) error {
	if err := s.install(ctx, "axios"); err != nil {
		return err
	}
	return s.writeFile(defs.AxiosClient, template.AxiosClient())
}

func setupUI(ctx context.Context, s *session) error {
	if s.cfg.UI.HasShadcn() {
		if err := s.install(ctx, "class-variance-authority", "clsx", "tailwind-merge", "lucide-react"); err != nil {
			return err
		}
		if err := s.writeFile(defs.CNUtils, template.CNUtils()); err != nil {
			return err
		}
	}
	if s.cfg.UI.HasHeroUI() {
		if err := s.install(ctx, "@heroui/react", "framer-motion"); err != nil {
			return err
		}
		if err := configureHeroUITailwind(s); err != nil {
			return err
		}
	}
	return nil
}

// configureHeroUITailwind writes a HeroUI-ready Tailwind config, or patches
// the existing one. Tailwind v4 projects ship without a config file.
func configureHeroUITailwind(s *session) error {
	ok, err := s.exists(defs.TailwindConfig)
	if err != nil {
		return err
	}
	if !ok {
		return s.writeFile(defs.TailwindConfig, template.HeroUITailwindConfig())
	}

	current, err := s.readFile(defs.TailwindConfig)
	if err != nil {
		return err
	}
	patched, pluginInjected := PatchTailwindConfig(current)
	if !pluginInjected {
		s.warn("Could not inject HeroUI plugin into " + defs.TailwindConfig + " automatically. Please check manually.")
	}
	return s.patchFile(defs.TailwindConfig, patched)
}

func setupFramerMotion(ctx context.Context, s *session) error {
	return s.install(ctx, "framer-motion")
}

func setupLucide(ctx context.Context, s *session) error {
	return s.install(ctx, "lucide-react")
}

func setupExamples(_ context.Context, s *session) error {
	if s.cfg.Examples.HasCRUD() {
		if err := s.writeFile(defs.PostsRoute, template.APIRoute(s.cfg.Prisma)); err != nil {
			return err
		}
		if err := s.writeFile(defs.PostsPage, template.PostsPage(s.cfg.ReactQuery, s.cfg.Axios)); err != nil {
			return err
		}
	}
	if s.cfg.Examples.HasAuth() {
		if err := s.writeFile(defs.AuthPage, template.AuthPage()); err != nil {
			return err
		}
	}
	if s.cfg.Examples.HasCRUD() && s.cfg.Examples.HasAuth() {
		return s.writeFile(defs.HomePage, template.HubPage(s.name))
	}
	return nil
}

// setupProviders writes the providers component and mounts it in the root
// layout created by create-next-app.
func setupProviders(_ context.Context, s *session) error {
	if err := s.writeFile(defs.Providers, template.Providers(s.cfg)); err != nil {
		return err
	}

	layout, err := s.readFile(defs.RootLayout)
	if err != nil {
		return err
	}
	patched, wrapped := PatchLayout(layout)
	if !wrapped {
		s.logger.Debug("layout has no children placeholder; providers not mounted", "path", defs.RootLayout)
	}
	return s.patchFile(defs.RootLayout, patched)
}
