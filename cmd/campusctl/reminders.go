package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/campus/internal/campus/app"
	"github.com/aussiebroadwan/campus/internal/campus/service"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Event reminder emails",
}

var remindersSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send reminders for upcoming events now",
	Long: `Send the reminders the scheduler would send on its next run: every event
starting within REMINDER_LEAD_DAYS that has not been reminded yet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		mailer, err := app.NewMailer(e.cfg)
		if err != nil {
			return err
		}
		events := &service.EventService{Store: e.store, Catalog: e.catalog}
		sched, err := service.NewScheduler(e.store, events, mailer, e.logger, service.SchedulerConfig{
			LeadDays: e.cfg.ReminderLeadDays,
		})
		if err != nil {
			return err
		}

		n, err := sched.SendReminders(cmd.Context())
		printf(cmd, "%d event(s) reminded\n", n)
		return err
	},
}

func init() {
	remindersCmd.AddCommand(remindersSendCmd)
}
