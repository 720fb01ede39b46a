//go:build unix

package runner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

// runUntilReady starts cmd in the background and returns once the helper
// has written its ready file.
func runUntilReady(t *testing.T, r *Runner, cmd Command, ready string) <-chan error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(cmd) }()

	deadline := time.Now().Add(10 * time.Second)
	for {
		if _, err := os.Stat(ready); err == nil {
			return errCh
		}
		if time.Now().After(deadline) {
			t.Fatal("helper never became ready")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func waitRun(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(20 * time.Second):
		t.Fatal("Run() did not return")
		return nil
	}
}

func TestRun_ForwardsSIGTERM(t *testing.T) {
	ready := filepath.Join(t.TempDir(), "ready")
	r, _, _ := newTestRunner()
	errCh := runUntilReady(t, r, helperCommand(t, "wait", ready, "30000"), ready)

	if err := syscall.Kill(os.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatal(err)
	}
	err := waitRun(t, errCh)

	if !errors.Is(err, ErrExecutionFailed) {
		t.Fatalf("Run() error = %v, want ErrExecutionFailed", err)
	}
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("Run() error = %T, want *ExecError", err)
	}
	if execErr.Code != 1 {
		t.Errorf("Code = %d, want 1 for a child killed by a signal", execErr.Code)
	}
	msg := execErr.Error()
	if strings.Contains(msg, "exit status -1") || !strings.Contains(msg, "signal: terminated") {
		t.Errorf("Error() = %q, want the signal named", msg)
	}
}

func TestRun_DoesNotRelaySIGINT(t *testing.T) {
	ready := filepath.Join(t.TempDir(), "ready")
	r, _, _ := newTestRunner()
	errCh := runUntilReady(t, r, helperCommand(t, "wait", ready, "2000"), ready)

	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatal(err)
	}
	if err := waitRun(t, errCh); err != nil {
		t.Errorf("Run() error = %v, want the child to finish undisturbed", err)
	}
}
