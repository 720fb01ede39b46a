package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/qntx/bob/internal/ui"
)

// ErrCommandNotFound reports a LookPath command missing from PATH.
var ErrCommandNotFound = errors.New("command not found")

// ErrExecutionFailed matches every *ExecError via errors.Is.
var ErrExecutionFailed = errors.New("execution failed")

// Command is a fully mapped request to run one external tool.
type Command struct {
	Label    string
	Name     string
	Args     []string
	LookPath bool
}

// String renders the command line for diagnostics.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ExitCannotExecute is the status reported when the child never started.
const ExitCannotExecute = 126

// ExecError is returned when the child cannot be started or exits non-zero.
// Code is the status bob should exit with.
type ExecError struct {
	Command string
	Code    int
	Err     error
}

func (e *ExecError) Error() string {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) && exitErr.ExitCode() > 0 {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

func (e *ExecError) Is(target error) bool { return target == ErrExecutionFailed }

// Runner spawns commands synchronously with inherited standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	log      *zap.Logger
	lookPath func(string) (string, error)
}

// New creates a Runner bound to the process streams.
func New(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		log:      log,
		lookPath: exec.LookPath,
	}
}

// Run prints the command heading, locates the executable when required and
// blocks until the child exits. Args reach the child as separate argv
// entries with no shell in between. SIGTERM is relayed to the child. SIGINT
// is not relayed, since the terminal delivers it to the child directly, but
// bob keeps running until the child exits.
func (r *Runner) Run(c Command) error {
	ui.Heading(r.Stdout, c.Label, c.String())

	bin := c.Name
	if c.LookPath {
		path, err := r.lookPath(c.Name)
		if err != nil {
			r.log.Debug("path lookup failed", zap.String("command", c.Name), zap.Error(err))
			fmt.Fprintf(r.Stdout, "Command not found: %s\n", c.Name)
			return fmt.Errorf("%s: %w", c.Name, ErrCommandNotFound)
		}
		bin = path
	}
	r.log.Debug("spawning", zap.String("path", bin), zap.Strings("args", c.Args))

	cmd := exec.Command(bin, c.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := cmd.Start(); err != nil {
		return &ExecError{Command: c.Name, Code: ExitCannotExecute, Err: err}
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigCh:
				if sig == os.Interrupt {
					// Ctrl-C already reached the child through the
					// terminal's foreground process group.
					r.log.Debug("interrupt received, waiting for child", zap.String("command", c.Name))
					continue
				}
				r.log.Debug("forwarding signal", zap.String("command", c.Name), zap.Stringer("signal", sig))
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			r.log.Debug("child exited", zap.String("command", c.Name), zap.Int("code", code))
			if code < 0 {
				// killed by a signal
				code = 1
			}
			return &ExecError{Command: c.Name, Code: code, Err: err}
		}
		return &ExecError{Command: c.Name, Code: 1, Err: err}
	}
	return nil
}
