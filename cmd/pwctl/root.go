package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

// newRootCmd builds the command tree. The app is built once per run, before
// any subcommand executes.
func newRootCmd(build appFactory) *cobra.Command {
	state := &app{}

	root := &cobra.Command{
		Use:           "pwctl",
		Short:         "Manage Paranoid World characters from the command line",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := build(cmd.Context())
			if err != nil {
				return err
			}
			*state = *built
			if state.Out == nil {
				state.Out = cmd.OutOrStdout()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			state.Close()
		},
	}

	root.AddCommand(
		newActorCmd(state),
		newRollCmd(state),
		newXPCmd(state),
		newLevelUpCmd(state),
		newClassesCmd(state),
		newMigrateCmd(state),
	)

	return root
}

// printYAML writes v to the app output
func (a *app) printYAML(v any) error {
	enc := yaml.NewEncoder(a.Out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}

// parseAbilityMap turns "vio=16" style flags into ability scores
func parseAbilityMap(rs *ruleset.Ruleset, raw map[string]int) (map[ruleset.Ability]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[ruleset.Ability]int, len(raw))
	for _, k := range keys {
		ability, ok := rs.ParseAbility(strings.ToLower(k))
		if !ok {
			return nil, pwerr.InvalidArgumentf("unknown ability %q", k)
		}
		out[ability] = raw[k]
	}
	return out, nil
}
