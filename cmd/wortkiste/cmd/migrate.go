package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wortkiste/internal/adapters/sqlite"
)

var migrateList bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending words database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateList {
			for _, m := range sqlite.Migrations() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", m.Version, m.Description)
			}
			return nil
		}

		applied, err := GetApp().Migrate(cmd.Context())
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
			return nil
		}
		for _, v := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "Applied migration %d\n", v)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateList, "list", "l", false, "list declared migrations without applying them")
	rootCmd.AddCommand(migrateCmd)
}
