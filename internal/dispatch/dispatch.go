package dispatch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/qntx/bob/internal/profile"
	"github.com/qntx/bob/internal/runner"
)

var (
	// ErrNoProfile reports that no registered marker exists in the directory.
	ErrNoProfile = errors.New("no build system detected")

	// ErrUnsupported reports a verb with no command on the resolved profile.
	ErrUnsupported = errors.New("unsupported operation")
)

// Executor runs a mapped command to completion.
type Executor interface {
	Run(cmd runner.Command) error
}

// Dispatcher maps verbs onto the profile detected for a directory.
type Dispatcher struct {
	profiles []profile.Profile
	exec     Executor
	log      *zap.Logger
}

// New creates a Dispatcher over profiles, listed in priority order.
func New(profiles []profile.Profile, exec Executor, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{profiles: profiles, exec: exec, log: log}
}

// Profiles returns a copy of the registry the dispatcher resolves against.
func (d *Dispatcher) Profiles() []profile.Profile {
	out := make([]profile.Profile, len(d.profiles))
	for i, p := range d.profiles {
		out[i] = p.Clone()
	}
	return out
}

// Detect resolves the profile governing dir.
func (d *Dispatcher) Detect(dir string) (profile.Profile, error) {
	p, ok := profile.Resolve(d.profiles, dir)
	if !ok {
		d.log.Debug("no marker matched", zap.String("dir", dir), zap.Int("profiles", len(d.profiles)))
		return profile.Profile{}, fmt.Errorf("%w in %s", ErrNoProfile, dir)
	}
	d.log.Debug("detected profile", zap.String("marker", p.Marker), zap.String("command", p.Command))
	return p, nil
}

// DetectAll returns every profile whose marker exists in dir, in priority
// order, from a single scan. The first element is the governing profile.
func (d *Dispatcher) DetectAll(dir string) ([]profile.Profile, error) {
	matches := profile.Matches(d.profiles, dir)
	if len(matches) == 0 {
		d.log.Debug("no marker matched", zap.String("dir", dir), zap.Int("profiles", len(d.profiles)))
		return nil, fmt.Errorf("%w in %s", ErrNoProfile, dir)
	}
	return matches, nil
}

// Command maps v onto p without running anything.
func (d *Dispatcher) Command(p profile.Profile, v profile.Verb) (runner.Command, error) {
	args, ok := p.Args(v)
	if !ok {
		return runner.Command{}, fmt.Errorf("%s has no %s command: %w", p.Label, v, ErrUnsupported)
	}
	return runner.Command{
		Label:    p.Label,
		Name:     p.Command,
		Args:     args,
		LookPath: p.LookPath,
	}, nil
}

// Dispatch detects the profile for dir and runs its command for v. The
// returned profile is valid whenever detection succeeded.
func (d *Dispatcher) Dispatch(dir string, v profile.Verb) (profile.Profile, error) {
	p, err := d.Detect(dir)
	if err != nil {
		return p, err
	}
	return p, d.Execute(p, v)
}

// Execute runs the command p maps v to, without detecting again.
func (d *Dispatcher) Execute(p profile.Profile, v profile.Verb) error {
	cmd, err := d.Command(p, v)
	if err != nil {
		return err
	}

	d.log.Debug("dispatching", zap.String("verb", string(v)), zap.Stringer("command", cmd))
	return d.exec.Run(cmd)
}
