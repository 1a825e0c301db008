package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/campus/internal/campus/service"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage events",
}

var eventsRefreshCmd = &cobra.Command{
	Use:   "refresh-status",
	Short: "Store each event's status as of today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		events := &service.EventService{Store: e.store, Catalog: e.catalog}
		n, err := events.RefreshStatuses(cmd.Context())
		if err != nil {
			return err
		}
		printf(cmd, "%d event(s) changed status\n", n)
		return nil
	},
}

func init() {
	eventsCmd.AddCommand(eventsRefreshCmd)
}
