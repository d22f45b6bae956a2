package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/paranoidworld/internal/levelup"
	"github.com/KirkDiggler/paranoidworld/internal/ruleset"
)

func newLevelUpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levelup",
		Short: "Level up a character",
	}

	options := &cobra.Command{
		Use:   "options <actor-id>",
		Short: "Print the moves, drives and equipment the character can take",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ready, err := a.Characters.CanLevelUp(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ready {
				a.printf("# not enough xp to level up; options are shown for reference\n")
			}

			candidates, err := a.Characters.LevelUpOptions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printYAML(candidates)
		},
	}

	var (
		moves     []string
		equipment []string
		drive     string
		scores    map[string]int
		increase  string
	)
	apply := &cobra.Command{
		Use:   "apply <actor-id>",
		Short: "Apply level up choices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abilities, err := parseAbilityMap(a.Ruleset, scores)
			if err != nil {
				return err
			}

			sel := levelup.Selections{
				MoveIDs:       moves,
				EquipmentIDs:  equipment,
				Drive:         drive,
				AbilityScores: abilities,
			}
			if increase != "" {
				ability, ok := a.Ruleset.ParseAbility(increase)
				if !ok {
					ability = ruleset.Ability(increase)
				}
				sel.AbilityIncrease = ability
			}

			outcome, err := a.Characters.LevelUp(cmd.Context(), args[0], sel)
			if err != nil {
				return err
			}

			a.printf("%s is level %d (xp %d)\n", outcome.Actor.Name, outcome.Level, outcome.XP)
			for _, item := range outcome.Granted {
				a.printf("  + %s %s\n", item.Type, item.Name)
			}
			return nil
		},
	}
	apply.Flags().StringSliceVar(&moves, "move", nil, "move ids to take")
	apply.Flags().StringSliceVar(&equipment, "equipment", nil, "equipment ids to take")
	apply.Flags().StringVar(&drive, "drive", "", "drive key")
	apply.Flags().StringToIntVar(&scores, "score", nil, "first level scores, e.g. --score vio=16,stl=15")
	apply.Flags().StringVar(&increase, "increase", "", "ability to raise by one")

	cmd.AddCommand(options, apply)
	return cmd
}
