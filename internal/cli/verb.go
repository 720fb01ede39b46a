package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/qntx/bob/internal/dispatch"
	"github.com/qntx/bob/internal/profile"
	"github.com/qntx/bob/internal/ui"
)

var verbCommands = []struct {
	verb  profile.Verb
	short string
}{
	{profile.VerbBuild, "Build code ⚒️"},
	{profile.VerbClean, "Clean artifacts 🧹"},
	{profile.VerbRun, "Run code 🚀"},
	{profile.VerbInstall, "Install packages or binary 🚚"},
	{profile.VerbTest, "Run tests 🧪"},
}

func init() {
	for _, vc := range verbCommands {
		rootCmd.AddCommand(newVerbCmd(vc.verb, vc.short))
	}
}

func newVerbCmd(v profile.Verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(v),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerb(cmd, v)
		},
	}
}

func runVerb(cmd *cobra.Command, v profile.Verb) error {
	d, log, err := load(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // best-effort flush

	dir, err := getwd()
	if err != nil {
		return err
	}
	p, err := d.Detect(dir)
	if err != nil {
		return err
	}
	return runProfile(d, p, v)
}

// runProfile runs v on an already detected profile and reports the elapsed time.
func runProfile(d *dispatch.Dispatcher, p profile.Profile, v profile.Verb) error {
	start := time.Now()
	if err := d.Execute(p, v); err != nil {
		return err
	}
	ui.Done(p.Label, time.Since(start))
	return nil
}
