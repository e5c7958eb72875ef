package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change daily limits and holidays",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show custom daily limits and holidays",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		s, err := client.GetSettings(cmd.Context())
		if err != nil {
			return err
		}
		printSettings(cmd, s)
		return nil
	},
}

var settingsLimitCmd = &cobra.Command{
	Use:   "limit [date] [limit]",
	Short: "Set the daily job limit for a date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := strconv.Atoi(args[1])
		if err != nil || limit < 0 {
			return fmt.Errorf("limit must be a non-negative integer, got %q", args[1])
		}

		client, err := newClient(true)
		if err != nil {
			return err
		}

		s, err := client.SetDailyLimit(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		printSettings(cmd, s)
		return nil
	},
}

var settingsHolidayCmd = &cobra.Command{
	Use:   "holiday [date]",
	Short: "Toggle a public holiday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		s, err := client.ToggleHoliday(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSettings(cmd, s)
		return nil
	},
}

func printSettings(cmd *cobra.Command, s *Settings) {
	dates := make([]string, 0, len(s.DailyJobLimits))
	for d := range s.DailyJobLimits {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	cmd.Println("Daily limits:")
	if len(dates) == 0 {
		cmd.Println("  (none, default applies)")
	}
	for _, d := range dates {
		cmd.Printf("  %s  %d\n", d, s.DailyJobLimits[d])
	}

	cmd.Println("Holidays:")
	if len(s.Holidays) == 0 {
		cmd.Println("  (none)")
	}
	for _, h := range s.Holidays {
		cmd.Printf("  %s\n", h)
	}
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsLimitCmd, settingsHolidayCmd)
	rootCmd.AddCommand(settingsCmd)
}
