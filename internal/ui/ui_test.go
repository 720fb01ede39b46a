package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() { Output = old })
	return &buf
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0ms"},
		{500 * time.Millisecond, "500ms"},
		{999 * time.Millisecond, "999ms"},
		{1 * time.Second, "1.0s"},
		{1500 * time.Millisecond, "1.5s"},
		{60 * time.Second, "60.0s"},
		{90 * time.Second, "90.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	var buf bytes.Buffer
	Heading(&buf, "🦀 Rust", "cargo build")

	got := buf.String()
	for _, want := range []string{"🦀 Rust", iconGear, "'", "cargo build"} {
		if !strings.Contains(got, want) {
			t.Errorf("Heading() = %q, missing %q", got, want)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Heading() = %q, want trailing newline", got)
	}
}

func TestStatusMessages(t *testing.T) {
	buf := captureOutput(t)

	Error("no build system detected in %s", "/tmp/x")
	Done("📦 NPM", 1500*time.Millisecond)
	Detected("🦀 Rust", "Cargo.toml")

	got := buf.String()
	for _, want := range []string{
		"no build system detected in /tmp/x",
		"📦 NPM", "1.5s",
		"🦀 Rust", "(Cargo.toml)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTable(t *testing.T) {
	t.Run("basic table", func(t *testing.T) {
		tbl := NewTable("NAME", "SIZE", "COUNT")

		if len(tbl.headers) != 3 {
			t.Errorf("len(headers) = %d, want 3", len(tbl.headers))
		}
		if tbl.widths[0] != 4 { // "NAME"
			t.Errorf("widths[0] = %d, want 4", tbl.widths[0])
		}
	})

	t.Run("add row updates widths", func(t *testing.T) {
		tbl := NewTable("A", "B")
		tbl.AddRow("longer-value", "x")

		if tbl.widths[0] != 12 {
			t.Errorf("widths[0] = %d, want 12", tbl.widths[0])
		}
		if tbl.widths[1] != 1 {
			t.Errorf("widths[1] = %d, want 1", tbl.widths[1])
		}
	})

	t.Run("render", func(t *testing.T) {
		tbl := NewTable("MARKER", "COMMAND")
		tbl.AddRow("Cargo.toml", "cargo")
		tbl.AddRow("gradlew", "./gradlew")

		var buf bytes.Buffer
		tbl.Render(&buf)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("rendered %d lines, want 4:\n%s", len(lines), buf.String())
		}
		if !strings.Contains(lines[2], "Cargo.toml  cargo") {
			t.Errorf("row = %q, want padded columns", lines[2])
		}
		if !strings.Contains(lines[3], "gradlew     ./gradlew") {
			t.Errorf("row = %q, want padded columns", lines[3])
		}
	})
}
