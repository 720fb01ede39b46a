package profile

import (
	"fmt"
	"slices"
	"strings"
)

// ----------------------------------------------------------------------------
// Verb
// ----------------------------------------------------------------------------

// Verb is a user-facing action delegated to the detected build tool.
type Verb string

const (
	VerbBuild   Verb = "build"
	VerbClean   Verb = "clean"
	VerbRun     Verb = "run"
	VerbTest    Verb = "test"
	VerbInstall Verb = "install"
)

// Verbs lists every verb in display order.
var Verbs = []Verb{VerbBuild, VerbClean, VerbRun, VerbTest, VerbInstall}

// Valid reports whether v is one of Verbs.
func (v Verb) Valid() bool {
	switch v {
	case VerbBuild, VerbClean, VerbRun, VerbTest, VerbInstall:
		return true
	}
	return false
}

// ParseVerb converts a command-line word into a Verb.
func ParseVerb(s string) (Verb, error) {
	v := Verb(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown verb: %q", s)
	}
	return v, nil
}

// ----------------------------------------------------------------------------
// Profile
// ----------------------------------------------------------------------------

// Profile binds one build ecosystem to its marker file and per-verb commands.
// Argument lists are passed to the tool as-is, one element per argv entry.
type Profile struct {
	Marker  string
	Command string
	Label   string

	Build   []string
	Clean   []string
	Run     []string
	Test    []string
	Install []string // nil when the tool has no install step

	// LookPath requires Command to be found on PATH before spawning.
	LookPath bool
}

// Args returns a copy of the argument list mapped to v. The second result is
// false when the profile has no mapping for v.
func (p Profile) Args(v Verb) ([]string, bool) {
	var args []string
	switch v {
	case VerbBuild:
		args = p.Build
	case VerbClean:
		args = p.Clean
	case VerbRun:
		args = p.Run
	case VerbTest:
		args = p.Test
	case VerbInstall:
		args = p.Install
	}
	if args == nil {
		return nil, false
	}
	return slices.Clone(args), true
}

// Clone returns a copy of p that shares no argument slices with it.
func (p Profile) Clone() Profile {
	p.Build = slices.Clone(p.Build)
	p.Clean = slices.Clone(p.Clean)
	p.Run = slices.Clone(p.Run)
	p.Test = slices.Clone(p.Test)
	p.Install = slices.Clone(p.Install)
	return p
}
