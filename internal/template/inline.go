package template

import (
	"strings"

	"github.com/lithammer/dedent"
)

func block(s string) string {
	return strings.TrimLeft(dedent.Dedent(s), "\n")
}

// CNUtils returns the shadcn/ui class name helper.
func CNUtils() string {
	return block(`
		import { type ClassValue, clsx } from 'clsx';
		import { twMerge } from 'tailwind-merge';

		export function cn(...inputs: ClassValue[]) {
		  return twMerge(clsx(inputs));
		}
	`)
}

// AuthPage returns the placeholder page for the authentication example.
func AuthPage() string {
	return block(`
		export default function AuthPage() {
		  return <div>Auth Page Placeholder (Extend with NextAuth/Clerk)</div>;
		}
	`)
}

// HeroUITailwindConfig returns a fresh tailwind.config.ts wired for HeroUI.
func HeroUITailwindConfig() string {
	return block(`
		import type { Config } from 'tailwindcss';
		import { heroui } from '@heroui/react';

		const config: Config = {
		  content: [
		    './src/**/*.{js,ts,jsx,tsx,mdx}',
		    './node_modules/@heroui/theme/dist/**/*.{js,ts,jsx,tsx}',
		  ],
		  theme: {
		    extend: {},
		  },
		  darkMode: 'class',
		  plugins: [heroui()],
		};

		export default config;
	`)
}

// Snippets spliced into an existing Tailwind config by the HeroUI setup.
const (
	HeroUIImport      = "import { heroui } from '@heroui/react';\n"
	HeroUIPlugin      = "heroui(),"
	HeroUIContentGlob = "\n    './node_modules/@heroui/theme/dist/**/*.{js,ts,jsx,tsx}',"
)

// Snippets used to wrap the root layout in the providers component.
const (
	ProvidersImport = "import { Providers } from '@/components/providers';\n"
	ChildrenToken   = "{children}"
	WrappedChildren = "<Providers>{children}</Providers>"
)
