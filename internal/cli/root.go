package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qntx/bob/internal/config"
	"github.com/qntx/bob/internal/dispatch"
	"github.com/qntx/bob/internal/logging"
	"github.com/qntx/bob/internal/profile"
	"github.com/qntx/bob/internal/runner"
	"github.com/qntx/bob/internal/ui"
)

// version is set at link time with -ldflags "-X github.com/qntx/bob/internal/cli.version=...".
var version = "dev"

type globalFlags struct {
	yarn        bool
	verbose     bool
	interactive bool
}

var (
	gFlags  globalFlags
	rootCmd = &cobra.Command{
		Use:   "bob",
		Short: "Build command shortcuts",
		Long: `bob runs the build commands of whatever build system governs the current directory.

The build system is detected from its marker file, checked in priority order:
.justfile, justfile, Makefile, Cargo.toml, package.json, gradlew,
build.gradle.kts, build.gradle. The first match wins.

package.json projects use npm unless BOB_USE_YARN is set (or --yarn is given).`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          runRoot,
	}
)

// Swapped in tests.
var (
	newExecutor = func(log *zap.Logger) dispatch.Executor { return runner.New(log) }
	getwd       = os.Getwd
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&gFlags.yarn, "yarn", false, "use yarn instead of npm for package.json (overrides "+config.EnvUseYarn+")")
	pf.BoolVarP(&gFlags.verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().BoolVarP(&gFlags.interactive, "interactive", "i", false, "choose the verb interactively")
}

// Execute runs the root command and reports any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		report(err)
	}
	return err
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if gFlags.interactive {
		return runPick(cmd, nil)
	}
	return cmd.Help()
}

// load reads the configuration once and builds the dispatch pipeline.
func load(cmd *cobra.Command) (*dispatch.Dispatcher, *zap.Logger, error) {
	cfg := config.FromEnv()
	if cmd.Flags().Changed("yarn") {
		cfg.UseYarn = gFlags.yarn
	}

	log, err := logging.New(cfg.LogLevel, gFlags.verbose)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("config loaded", zap.Bool("use_yarn", cfg.UseYarn))

	return dispatch.New(profile.Registry(cfg), newExecutor(log), log), log, nil
}

func report(err error) {
	switch {
	case errors.Is(err, runner.ErrCommandNotFound):
		// the runner already said so
	default:
		ui.Error("%v", err)
	}
}

// Exit codes for failures that carry no child status.
const (
	ExitFailure     = 1
	ExitUnsupported = 2
	ExitNotFound    = 127
)

// ExitCode maps an Execute error onto the process exit status.
func ExitCode(err error) int {
	var execErr *runner.ExecError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &execErr):
		return execErr.Code
	case errors.Is(err, runner.ErrCommandNotFound):
		return ExitNotFound
	case errors.Is(err, dispatch.ErrUnsupported):
		return ExitUnsupported
	default:
		return ExitFailure
	}
}
