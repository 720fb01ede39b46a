package cli

import (
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/qntx/bob/internal/profile"
	"github.com/qntx/bob/internal/ui"
)

type profilesFlags struct {
	toml bool
}

var (
	pFlags      profilesFlags
	profilesCmd = &cobra.Command{
		Use:   "profiles",
		Short: "List known build systems in priority order",
		Long: `List every registered build system in the order markers are checked.

With --toml the registry is printed as [[profile]] tables, one per marker.`,
		Args: cobra.NoArgs,
		RunE: runProfiles,
	}
)

func init() {
	profilesCmd.Flags().BoolVar(&pFlags.toml, "toml", false, "print the registry as TOML")
	rootCmd.AddCommand(profilesCmd)
}

// profileDoc is the TOML shape of the registry.
type profileDoc struct {
	Profiles []profileEntry `toml:"profile"`
}

type profileEntry struct {
	Marker   string   `toml:"marker"`
	Command  string   `toml:"command"`
	Label    string   `toml:"label"`
	LookPath bool     `toml:"lookpath"`
	Build    []string `toml:"build"`
	Clean    []string `toml:"clean"`
	Run      []string `toml:"run"`
	Test     []string `toml:"test"`
	Install  []string `toml:"install,omitempty"`
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	d, log, err := load(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // best-effort flush

	profiles := d.Profiles()
	if pFlags.toml {
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(toDoc(profiles))
	}

	tbl := ui.NewTable("#", "MARKER", "COMMAND", "TOOL", "INSTALL")
	for i, p := range profiles {
		install := "no"
		if _, ok := p.Args(profile.VerbInstall); ok {
			install = "yes"
		}
		tbl.AddRow(strconv.Itoa(i+1), p.Marker, p.Command, p.Label, install)
	}
	tbl.Render(cmd.OutOrStdout())
	return nil
}

func toDoc(profiles []profile.Profile) profileDoc {
	doc := profileDoc{Profiles: make([]profileEntry, len(profiles))}
	for i, p := range profiles {
		doc.Profiles[i] = profileEntry{
			Marker:   p.Marker,
			Command:  p.Command,
			Label:    p.Label,
			LookPath: p.LookPath,
			Build:    p.Build,
			Clean:    p.Clean,
			Run:      p.Run,
			Test:     p.Test,
			Install:  p.Install,
		}
	}
	return doc
}
