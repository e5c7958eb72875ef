package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// resourceCmd builds the list/status/delete tree shared by personnel and
// vehicles. kind is the API path segment.
func resourceCmd(kind, short string) *cobra.Command {
	root := &cobra.Command{
		Use:   kind,
		Short: short,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List " + kind,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(true)
			if err != nil {
				return err
			}

			items, err := client.ListResources(cmd.Context(), kind)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDETAIL\tSTATUS")
			for _, r := range items {
				detail := r.Plate
				if detail == "" {
					detail = r.Type
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Name, dash(detail), r.Status)
			}
			return tw.Flush()
		},
	}

	status := &cobra.Command{
		Use:   "status [id] [status]",
		Short: "Change the status of one entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(true)
			if err != nil {
				return err
			}

			r, err := client.UpdateResourceStatus(cmd.Context(), kind, args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Printf("%s is now %s\n", r.Name, r.Status)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(true)
			if err != nil {
				return err
			}

			if err := client.DeleteResource(cmd.Context(), kind, args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}

	root.AddCommand(list, status, del)
	return root
}

func init() {
	rootCmd.AddCommand(
		resourceCmd("personnel", "Manage team leaders and writer crew"),
		resourceCmd("vehicles", "Manage the vehicle fleet"),
	)
}
