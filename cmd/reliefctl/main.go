package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	authToken string
	timeout   time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reliefctl",
	Short: "Administrative CLI for the relief custody engine",
	Long: `reliefctl talks to a running relief custody engine over its HTTP API.

It covers the administrative surface: organizer approval, minting,
pausing the token, and inspecting campaigns and wallets. Authenticate
with 'reliefctl login' first; the printed token goes into --token or
the RELIEFCTL_TOKEN environment variable.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Engine base URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "JWT bearer token (or set RELIEFCTL_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "Request timeout")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(approveOrganizerCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(unpauseCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(allocateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
