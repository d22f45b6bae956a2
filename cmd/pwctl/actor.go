package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	characterService "github.com/KirkDiggler/paranoidworld/internal/services/character"
)

func newActorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actor",
		Short: "Create and inspect actors",
	}

	var (
		owner     string
		class     string
		actorType string
		abilities map[string]int
	)
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a character or NPC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseAbilityMap(a.Ruleset, abilities)
			if err != nil {
				return err
			}

			actor, err := a.Characters.CreateActor(cmd.Context(), &characterService.CreateActorInput{
				OwnerID:   owner,
				Name:      args[0],
				Type:      entities.ActorType(actorType),
				Class:     class,
				Abilities: scores,
			})
			if err != nil {
				return err
			}

			a.printf("created %s (%s)\n", actor.Name, actor.ID)
			return nil
		},
	}
	create.Flags().StringVar(&owner, "owner", "", "owning user id")
	create.Flags().StringVar(&class, "class", "", "class name")
	create.Flags().StringVar(&actorType, "type", "", "character or npc")
	create.Flags().StringToIntVar(&abilities, "ability", nil, "ability scores, e.g. --ability vio=16,stl=15")

	show := &cobra.Command{
		Use:   "show <actor-id>",
		Short: "Print an actor sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.Characters.GetActor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printYAML(actor)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List actors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actors, err := a.Characters.ListActors(cmd.Context(), owner)
			if err != nil {
				return err
			}
			for _, actor := range actors {
				a.printf("%s\t%s\tlevel %d\t%s\n", actor.ID, actor.Name, actor.Level(), actor.Details.Class)
			}
			return nil
		},
	}
	list.Flags().StringVar(&owner, "owner", "", "only list actors of this user")

	var (
		path  string
		delta int
	)
	adjust := &cobra.Command{
		Use:   "adjust <actor-id>",
		Short: "Step a sheet resource such as attributes.xp.value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.Characters.AdjustResource(cmd.Context(), args[0], path, delta)
			if err != nil {
				return err
			}
			a.printf("%s: %s adjusted by %d\n", actor.Name, path, delta)
			return nil
		},
	}
	adjust.Flags().StringVar(&path, "path", "", "resource path")
	adjust.Flags().IntVar(&delta, "delta", 1, "amount to add")
	_ = adjust.MarkFlagRequired("path")

	cmd.AddCommand(create, show, list, adjust)
	return cmd
}

func newXPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Experience commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "mark <actor-id>",
		Short: "Mark one XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.Characters.MarkXP(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.printf("%s: xp %d\n", actor.Name, actor.Attributes.XP.Value)
			return nil
		},
	})

	return cmd
}

func newClassesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the available classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.Characters.ListClasses(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				a.printf("%s\n", name)
			}
			return nil
		},
	}
}
