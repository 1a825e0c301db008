package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations and print the schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		version, dirty, err := e.store.MigrationVersion()
		if err != nil {
			return err
		}
		printf(cmd, "schema version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}
