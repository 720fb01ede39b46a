package cli

import (
	"github.com/spf13/cobra"

	"github.com/qntx/bob/internal/dispatch"
	"github.com/qntx/bob/internal/profile"
	"github.com/qntx/bob/internal/ui"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the build system detected in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, _ []string) error {
	d, log, err := load(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // best-effort flush

	dir, err := getwd()
	if err != nil {
		return err
	}

	matches, err := d.DetectAll(dir)
	if err != nil {
		return err
	}

	p := matches[0]
	ui.Detected(p.Label, p.Marker)
	for _, v := range profile.Verbs {
		ui.Label(string(v), commandLine(d, p, v))
	}
	for _, other := range matches[1:] {
		ui.Dim("shadowed: %s (%s)", other.Label, other.Marker)
	}
	return nil
}

func commandLine(d *dispatch.Dispatcher, p profile.Profile, v profile.Verb) string {
	c, err := d.Command(p, v)
	if err != nil {
		return "-"
	}
	return c.String()
}
