package profile

import "github.com/qntx/bob/internal/config"

// Registry returns every known profile in priority order: custom build
// scripts first, then language manifests, then generic build tools.
// Exactly one profile is registered for package.json, chosen by cfg.UseYarn.
func Registry(cfg config.Config) []Profile {
	profiles := []Profile{
		justfile(".justfile"),
		justfile("justfile"),
		{
			Marker:   "Makefile",
			Command:  "make",
			Label:    "🍥 Makefile",
			Build:    args("build"),
			Clean:    args("clean"),
			Run:      args("run"),
			Test:     args("test"),
			Install:  args("install"),
			LookPath: true,
		},
		{
			Marker:   "Cargo.toml",
			Command:  "cargo",
			Label:    "🦀 Rust",
			Build:    args("build"),
			Clean:    args("clean"),
			Run:      args("run"),
			Test:     args("test"),
			Install:  args("install", "--path", "."),
			LookPath: true,
		},
		nodeProfile(cfg.UseYarn),
		{
			Marker:  "gradlew",
			Command: "./gradlew",
			Label:   "🎁 Gradle Wrapper",
			Build:   args("build"),
			Clean:   args("clean"),
			Run:     args("run"),
			Test:    args("test"),
		},
		gradle("build.gradle.kts"),
		gradle("build.gradle"),
	}
	return profiles
}

func justfile(marker string) Profile {
	return Profile{
		Marker:   marker,
		Command:  "just",
		Label:    "🤖 Justfile",
		Build:    args("build"),
		Clean:    args("clean"),
		Run:      args("run"),
		Test:     args("test"),
		Install:  args("install"),
		LookPath: true,
	}
}

func nodeProfile(yarn bool) Profile {
	if yarn {
		return Profile{
			Marker:   "package.json",
			Command:  "yarn",
			Label:    "🧶 Yarn",
			Build:    args("build"),
			Clean:    args("clean"),
			Run:      args("start"),
			Test:     args("test"),
			Install:  args("install"),
			LookPath: true,
		}
	}
	return Profile{
		Marker:   "package.json",
		Command:  "npm",
		Label:    "📦 NPM",
		Build:    args("run", "build"),
		Clean:    args("run", "clean"),
		Run:      args("run", "start"),
		Test:     args("run", "test"),
		Install:  args("install"),
		LookPath: true,
	}
}

func gradle(marker string) Profile {
	return Profile{
		Marker:   marker,
		Command:  "gradle",
		Label:    "🔩 Gradle",
		Build:    args("build"),
		Clean:    args("clean"),
		Run:      args("run"),
		Test:     args("test"),
		LookPath: true,
	}
}

func args(a ...string) []string { return a }
