package cmd

import (
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication operations",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify credentials against the server",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		resp, err := c.Authenticate(cmd.Context(), cfg.Username, cfg.Password)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Authentication failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		cmd.Printf("Authenticated as %s\n", cfg.Username)
		if expiry, ok := c.TokenExpiresAt(); ok {
			cmd.Printf("Token expires at %s\n", expiry.Format("2006-01-02 15:04:05 MST"))
		}
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured connection and credentials",
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.BaseURL != "" {
			cmd.Printf("Server: %s\n", cfg.BaseURL)
		} else if cfg.SSHHost != "" {
			cmd.Printf("Server: resolved from SSH host %q\n", cfg.SSHHost)
		} else {
			cmd.Println("Server: (not configured, interactive SSH selection)")
		}
		if cfg.Username != "" {
			cmd.Printf("Username: %s\n", cfg.Username)
		} else {
			cmd.Println("Username: (not set)")
		}
		if cfg.Password != "" {
			cmd.Println("Password: (set)")
		} else {
			cmd.Println("Password: (not set)")
		}
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
