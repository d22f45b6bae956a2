package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending data migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.Migrations.Run(cmd.Context())
			if err != nil {
				return err
			}
			if report.FromVersion == report.ToVersion {
				a.printf("already at version %d\n", report.ToVersion)
				return nil
			}
			a.printf("migrated %d -> %d, %d items updated\n", report.FromVersion, report.ToVersion, report.ItemsUpdated)
			return nil
		},
	}
}
