package cmd

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List, create and manage jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		q := url.Values{}
		for _, name := range []string{"status", "date", "q"} {
			if v, _ := cmd.Flags().GetString(name); v != "" {
				q.Set(name, v)
			}
		}
		if cmd.Flags().Changed("clearance") {
			v, _ := cmd.Flags().GetBool("clearance")
			q.Set("import_clearance", strconv.FormatBool(v))
		}
		if cmd.Flags().Changed("warehouse") {
			v, _ := cmd.Flags().GetBool("warehouse")
			q.Set("warehouse_activity", strconv.FormatBool(v))
		}
		if page, _ := cmd.Flags().GetInt("page"); page > 0 {
			q.Set("page", strconv.Itoa(page))
		}

		jobs, meta, err := client.ListJobs(cmd.Context(), q)
		if err != nil {
			return err
		}

		printJobs(cmd.OutOrStdout(), jobs)
		if meta != nil && meta.TotalPages > 0 {
			cmd.Printf("page %d/%d, %d jobs\n", meta.Page, meta.TotalPages, meta.Total)
		}
		return nil
	},
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a job (admins schedule directly, users request approval)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		req := map[string]any{}
		for flag, field := range map[string]string{
			"id":           "id",
			"shipper":      "shipper_name",
			"date":         "job_date",
			"time":         "job_time",
			"priority":     "priority",
			"loading-type": "loading_type",
			"location":     "location",
			"description":  "description",
			"bol":          "bol_number",
			"container":    "container_number",
		} {
			if v, _ := f.GetString(flag); v != "" {
				req[field] = v
			}
		}
		if v, _ := f.GetBool("clearance"); v {
			req["is_import_clearance"] = true
		}
		if v, _ := f.GetBool("warehouse"); v {
			req["is_warehouse_activity"] = true
		}

		job, err := client.CreateJob(cmd.Context(), req)
		if err != nil {
			return err
		}
		cmd.Printf("Job %s created with status %s\n", job.ID, job.Status)
		return nil
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete [job_id]",
	Short: "Delete a job or request its deletion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		res, err := client.DeleteJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if res.Deleted {
			cmd.Printf("Job %s deleted\n", args[0])
			return nil
		}
		cmd.Printf("Deletion of job %s requested, awaiting approval\n", args[0])
		return nil
	},
}

var jobsLockCmd = &cobra.Command{
	Use:   "lock [job_id]",
	Short: "Toggle the lock flag of a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		job, err := client.ToggleLock(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if job.IsLocked {
			cmd.Printf("Job %s locked\n", job.ID)
		} else {
			cmd.Printf("Job %s unlocked\n", job.ID)
		}
		return nil
	},
}

var jobsAllocateCmd = &cobra.Command{
	Use:   "allocate [job_id]",
	Short: "Assign team leader, vehicle and writer crew",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		req := map[string]any{}
		if f.Changed("team-leader") {
			v, _ := f.GetString("team-leader")
			req["team_leader"] = v
		}
		if f.Changed("vehicle") {
			v, _ := f.GetString("vehicle")
			req["vehicle"] = v
		}
		if f.Changed("crew") {
			v, _ := f.GetStringSlice("crew")
			req["writer_crew"] = v
		}
		if len(req) == 0 {
			return fmt.Errorf("nothing to allocate: set --team-leader, --vehicle or --crew")
		}

		job, err := client.UpdateAllocation(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		cmd.Printf("Job %s: leader=%s vehicle=%s crew=%s\n",
			job.ID, dash(job.TeamLeader), dash(job.Vehicle), dash(strings.Join(job.WriterCrew, ",")))
		return nil
	},
}

var jobsCustomsCmd = &cobra.Command{
	Use:   "customs [job_id] [status]",
	Short: "Set the customs status of an import clearance job",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		job, err := client.UpdateCustomsStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		cmd.Printf("Job %s customs status: %s\n", job.ID, job.CustomsStatus)
		return nil
	},
}

func approvalCmd(use, short string, approved bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [job_id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(true)
			if err != nil {
				return err
			}

			res, err := client.ResolveApproval(cmd.Context(), args[0], approved)
			if err != nil {
				return err
			}
			cmd.Printf("Job %s: %s\n", args[0], res.Outcome)
			return nil
		},
	}
}

var jobsCompleteCmd = &cobra.Command{
	Use:   "complete [job_id]",
	Short: "Mark an active job completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(true)
		if err != nil {
			return err
		}

		job, err := client.Complete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Job %s is %s\n", job.ID, job.Status)
		return nil
	},
}

func printJobs(w io.Writer, jobs []Job) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSTATUS\tPRIORITY\tSHIPPER\tLOCKED\tCLEARANCE")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\t%t\n",
			j.ID, j.JobDate, j.Status, j.Priority, j.ShipperName, j.IsLocked, j.IsImportClearance)
	}
	_ = tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	jobsListCmd.Flags().String("status", "", "filter by status")
	jobsListCmd.Flags().String("date", "", "filter by job date (YYYY-MM-DD)")
	jobsListCmd.Flags().String("q", "", "search shipper, id, location")
	jobsListCmd.Flags().Bool("clearance", false, "only import clearance jobs")
	jobsListCmd.Flags().Bool("warehouse", false, "only warehouse activity jobs")
	jobsListCmd.Flags().Int("page", 0, "page number")

	jobsCreateCmd.Flags().String("id", "", "job number")
	jobsCreateCmd.Flags().String("shipper", "", "shipper name")
	jobsCreateCmd.Flags().String("date", "", "job date (YYYY-MM-DD), defaults to today")
	jobsCreateCmd.Flags().String("time", "", "job time (HH:MM)")
	jobsCreateCmd.Flags().String("priority", "", "LOW, MEDIUM or HIGH")
	jobsCreateCmd.Flags().String("loading-type", "", "loading type")
	jobsCreateCmd.Flags().String("location", "", "location")
	jobsCreateCmd.Flags().String("description", "", "description")
	jobsCreateCmd.Flags().String("bol", "", "bill of lading number")
	jobsCreateCmd.Flags().String("container", "", "container number")
	jobsCreateCmd.Flags().Bool("clearance", false, "import clearance job")
	jobsCreateCmd.Flags().Bool("warehouse", false, "warehouse activity")
	_ = jobsCreateCmd.MarkFlagRequired("id")
	_ = jobsCreateCmd.MarkFlagRequired("shipper")

	jobsAllocateCmd.Flags().String("team-leader", "", "team leader name")
	jobsAllocateCmd.Flags().String("vehicle", "", "vehicle name")
	jobsAllocateCmd.Flags().StringSlice("crew", nil, "writer crew names, comma separated")

	jobsCmd.AddCommand(
		jobsListCmd,
		jobsCreateCmd,
		jobsDeleteCmd,
		jobsLockCmd,
		jobsAllocateCmd,
		jobsCustomsCmd,
		approvalCmd("approve", "Approve a pending request", true),
		approvalCmd("reject", "Reject a pending request", false),
		jobsCompleteCmd,
	)
	rootCmd.AddCommand(jobsCmd)
}
