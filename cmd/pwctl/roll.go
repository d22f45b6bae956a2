package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	"github.com/KirkDiggler/paranoidworld/internal/roll"
	characterService "github.com/KirkDiggler/paranoidworld/internal/services/character"
)

func newRollCmd(a *app) *cobra.Command {
	var (
		item     string
		title    string
		modifier int
		ask      int
		mode     string
	)

	cmd := &cobra.Command{
		Use:   "roll <actor-id> [formula|ability|BOND|ASKMOD]",
		Short: "Roll for an actor, or roll one of its moves with --item",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userMod *int
			if cmd.Flags().Changed("ask") {
				userMod = &ask
			}

			var (
				out *characterService.RollOutput
				err error
			)
			if item != "" {
				out, err = a.Characters.RollItem(cmd.Context(), &characterService.RollItemInput{
					ActorID:      args[0],
					ItemID:       item,
					UserModifier: userMod,
					Mode:         entities.RollMode(mode),
				})
			} else {
				req := roll.Request{
					Modifier:     modifier,
					UserModifier: userMod,
					Title:        title,
					Mode:         entities.RollMode(mode),
				}
				if len(args) > 1 {
					req.Roll = args[1]
				}
				out, err = a.Characters.Roll(cmd.Context(), &characterService.RollInput{
					ActorID: args[0],
					Request: req,
				})
			}
			if err != nil {
				return err
			}

			a.printf("%s", out.Card.Text())
			if out.Card.CanMarkXP {
				a.printf("failed roll: run `pwctl xp mark %s` to mark XP\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&item, "item", "", "owned move or equipment id to roll")
	cmd.Flags().StringVar(&title, "title", "", "chat card title")
	cmd.Flags().IntVar(&modifier, "mod", 0, "flat modifier")
	cmd.Flags().IntVar(&ask, "ask", 0, "modifier for BOND and ASKMOD rolls")
	cmd.Flags().StringVar(&mode, "mode", "", "def, adv or dis")

	return cmd
}
