package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "opsctl",
	Short: "opsctl is a command line client for the operations API",
	Long: `opsctl drives the operations API from a terminal: job scheduling and
approval, capacity lookups, settings and resource status.

Common workflows:

  Log in and export the token:
    opsctl login --username Admin --password Admin

  Check remaining capacity for a day:
    opsctl capacity 2024-06-01

  Create a job:
    opsctl jobs create --id JOB-1 --shipper "ACME" --date 2024-06-01

  Approve a pending request:
    opsctl jobs approve JOB-1

Configuration:
  Set the API endpoint and token via flags, environment variables or a config file:
    OPSCTL_URL      API endpoint (default: http://localhost:3000)
    OPSCTL_TOKEN    Bearer token returned by "opsctl login"`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".opsctl"
		viper.AddConfigPath(home)
		viper.SetConfigName(".opsctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("OPSCTL")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// newClient reads url and token from viper. Commands that need a token
// fail before any request is sent.
func newClient(requireToken bool) (*Client, error) {
	token := viper.GetString("token")
	if requireToken && token == "" {
		return nil, fmt.Errorf("API token not found. Run \"opsctl login\" or set OPSCTL_TOKEN")
	}
	return NewClient(viper.GetString("url"), token), nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.opsctl.yaml)")

	rootCmd.PersistentFlags().String("url", "http://localhost:3000", "operations API URL")
	_ = viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))

	rootCmd.PersistentFlags().StringP("token", "t", "", "bearer token")
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
}
