package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print a bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		client, err := newClient(false)
		if err != nil {
			return err
		}

		res, err := client.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		cmd.Printf("Logged in as %s (%s, %s)\n", res.User.Name, res.User.EmployeeID, res.User.Role)
		cmd.Printf("Token expires %s\n", time.Unix(res.ExpiresAt, 0).Format(time.RFC3339))
		cmd.Printf("export OPSCTL_TOKEN=%s\n", res.AccessToken)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "roster username")
	loginCmd.Flags().StringP("password", "p", "", "password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}
