package main

import (
	"strings"

	"taskhub/pkg/apiclient"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultBaseURL = "http://localhost:7000"
	envPrefix      = "TASKHUB"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "apiclient",
		Short: "Client for the taskhub users and tasks API",
		Long: `apiclient sends requests to a running taskhub server.
The server address and timeout come from flags or the TASKHUB_BASE_URL
and TASKHUB_TIMEOUT environment variables.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.PersistentFlags().String("base-url", defaultBaseURL, "taskhub server address")
	rootCmd.PersistentFlags().Duration("timeout", apiclient.DefaultTimeout, "per-request timeout")

	v.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	v.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	newClient := func() *apiclient.Client {
		return apiclient.New(v.GetString("base_url"), v.GetDuration("timeout"))
	}

	rootCmd.AddCommand(
		newDemoCmd(newClient),
		newUsersCmd(newClient),
		newTasksCmd(newClient),
		newStatusCmd(newClient),
	)

	return rootCmd
}
