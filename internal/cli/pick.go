package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qntx/bob/internal/dispatch"
	"github.com/qntx/bob/internal/profile"
	"github.com/qntx/bob/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a verb interactively for the detected build system",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

// selectVerb is swapped out in tests.
var selectVerb = tui.Select[profile.Verb]

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, _ []string) error {
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

	verb, err := selectVerb(p.Label, "Select the command to run", verbChoices(d, p))
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	return runProfile(d, p, verb)
}

// verbChoices lists the verbs p can run, labelled with their command line.
func verbChoices(d *dispatch.Dispatcher, p profile.Profile) []tui.Choice[profile.Verb] {
	var choices []tui.Choice[profile.Verb]
	for _, v := range profile.Verbs {
		if _, ok := p.Args(v); !ok {
			continue
		}
		choices = append(choices, tui.Choice[profile.Verb]{
			Label: fmt.Sprintf("%-8s %s", v, commandLine(d, p, v)),
			Value: v,
		})
	}
	return choices
}
