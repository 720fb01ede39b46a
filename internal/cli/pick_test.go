package cli

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/qntx/bob/internal/profile"
	"github.com/qntx/bob/internal/tui"
)

func stubSelect(t *testing.T, fn func(title string, choices []tui.Choice[profile.Verb]) (profile.Verb, error)) {
	t.Helper()
	old := selectVerb
	t.Cleanup(func() { selectVerb = old })
	selectVerb = func(title, _ string, choices []tui.Choice[profile.Verb]) (profile.Verb, error) {
		return fn(title, choices)
	}
}

func TestPick_RunsPromptedProfile(t *testing.T) {
	rec := &recordingExecutor{}
	setupProject(t, rec, "Cargo.toml")
	dir, err := getwd()
	if err != nil {
		t.Fatal(err)
	}

	var title string
	stubSelect(t, func(got string, choices []tui.Choice[profile.Verb]) (profile.Verb, error) {
		title = got
		if len(choices) != 5 {
			t.Errorf("choices = %d, want 5", len(choices))
		}
		// A higher-priority marker shows up while the prompt is open.
		if err := os.WriteFile(filepath.Join(dir, "Makefile"), nil, 0o644); err != nil {
			t.Fatal(err)
		}
		return profile.VerbTest, nil
	})

	if err := execute(t, "pick"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if title != "🦀 Rust" {
		t.Errorf("prompt title = %q, want 🦀 Rust", title)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("executor calls = %d, want 1", len(rec.calls))
	}
	if got := rec.calls[0]; got.Name != "cargo" || !slices.Equal(got.Args, []string{"test"}) {
		t.Errorf("command = %+v, want cargo test", got)
	}
}

func TestPick_PromptCancelled(t *testing.T) {
	rec := &recordingExecutor{}
	setupProject(t, rec, "package.json")

	cancelled := errors.New("user aborted")
	stubSelect(t, func(string, []tui.Choice[profile.Verb]) (profile.Verb, error) {
		return "", cancelled
	})

	err := execute(t, "pick")
	if !errors.Is(err, cancelled) {
		t.Fatalf("Execute() error = %v, want %v", err, cancelled)
	}
	if len(rec.calls) != 0 {
		t.Errorf("executor calls = %d, want 0", len(rec.calls))
	}
}
