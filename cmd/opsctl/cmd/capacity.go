package cmd

import (
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [date]",
	Short: "Show the daily limit and clearance cap usage for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		c, err := client.Capacity(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		cmd.Printf("Date:       %s\n", c.Date)
		if c.Holiday {
			cmd.Println("Holiday:    yes, no jobs can be scheduled")
		}
		cmd.Printf("Jobs:       %d/%d (%d left)\n", c.Used, c.Limit, c.Remaining)
		cmd.Printf("Clearance:  %d/%d (%d left)\n", c.ClearanceUsed, c.ClearanceLimit, c.ClearanceRemaining)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
