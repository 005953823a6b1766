package main

import (
	"fmt"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd authenticates and prints a token for subsequent commands.
var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate and print a bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		var result struct {
			Token  string `json:"token"`
			Expiry int64  `json:"expiry"`
		}
		client := newClient()
		if err := client.do("POST", "/api/v1/auth/login", map[string]string{
			"username": args[0],
			"password": string(password),
		}, &result); err != nil {
			return err
		}

		fmt.Println(result.Token)
		return nil
	},
}

// approveOrganizerCmd adds an address to the organizer approval set.
var approveOrganizerCmd = &cobra.Command{
	Use:   "approve-organizer <address>",
	Short: "Approve an address as a campaign organizer (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result map[string]any
		if err := newClient().do("POST", "/api/v1/registry/organizers", map[string]string{
			"address": args[0],
		}, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

// mintCmd creates new token supply.
var mintCmd = &cobra.Command{
	Use:   "mint <address> <amount>",
	Short: "Mint tokens to an address (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		var result map[string]any
		if err := newClient().do("POST", "/api/v1/token/mint", map[string]any{
			"to":     args[0],
			"amount": amount,
		}, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

func setPaused(paused bool) error {
	var result map[string]any
	if err := newClient().do("POST", "/api/v1/token/pause", map[string]bool{
		"paused": paused,
	}, &result); err != nil {
		return err
	}
	printJSON(result)
	return nil
}

// pauseCmd halts all token movement.
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause all token movement (admin)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPaused(true)
	},
}

// unpauseCmd resumes token movement.
var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "Resume token movement (admin)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPaused(false)
	},
}

// balanceCmd reads a ledger account balance.
var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show the token balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result map[string]any
		if err := newClient().do("GET", "/api/v1/token/balances/"+args[0], nil, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

// campaignCmd groups campaign inspection subcommands.
var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Inspect campaigns",
}

var campaignListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var result map[string]any
		if err := newClient().do("GET", "/api/v1/campaigns", nil, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

var campaignShowCmd = &cobra.Command{
	Use:   "show <campaign-id>",
	Short: "Show campaign details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result map[string]any
		if err := newClient().do("GET", "/api/v1/campaigns/"+args[0], nil, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

var campaignStatsCmd = &cobra.Command{
	Use:   "stats <campaign-id>",
	Short: "Show campaign reporting figures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result map[string]any
		if err := newClient().do("GET", "/api/v1/reports/campaigns/"+args[0]+"/stats", nil, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

// allocateCmd moves pool funds into a beneficiary's custodial wallet.
var allocateCmd = &cobra.Command{
	Use:   "allocate <campaign-id> <beneficiary> <amount>",
	Short: "Allocate campaign pool funds to a beneficiary (organizer)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[2])
		}

		var result map[string]any
		if err := newClient().do("POST", "/api/v1/campaigns/"+args[0]+"/allocations", map[string]any{
			"beneficiary": args[1],
			"amount":      amount,
		}, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

func init() {
	campaignCmd.AddCommand(campaignListCmd)
	campaignCmd.AddCommand(campaignShowCmd)
	campaignCmd.AddCommand(campaignStatsCmd)
}
