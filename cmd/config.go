package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.BaseURL != "" {
			cmd.Printf("Base URL: %s\n", cfg.BaseURL)
		} else {
			cmd.Println("Base URL: (not set)")
		}
		if cfg.SSHHost != "" {
			cmd.Printf("SSH host: %s\n", cfg.SSHHost)
		} else {
			cmd.Println("SSH host: (not set)")
		}
		if cfg.Username != "" {
			cmd.Printf("Username: %s\n", cfg.Username)
		} else {
			cmd.Println("Username: (not set)")
		}
		cmd.Printf("Timeout: %s\n", cfg.Timeout)
		cmd.Printf("Log level: %s\n", cfg.LogLevel)
		cmd.Printf("Verify SSL: %t\n", cfg.VerifySSL)
	},
}

var configSetServerCmd = &cobra.Command{
	Use:   "set-server [url]",
	Short: "Set the API base URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg.BaseURL = args[0]

		if err := saveConfig(); err != nil {
			cmd.Printf("Error saving configuration: %v\n", err)
			return
		}

		cmd.Printf("Base URL set to: %s\n", cfg.BaseURL)
	},
}

var configSetUsernameCmd = &cobra.Command{
	Use:   "set-username [name]",
	Short: "Set the API username",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg.Username = args[0]

		if err := saveConfig(); err != nil {
			cmd.Printf("Error saving configuration: %v\n", err)
			return
		}

		cmd.Printf("Username set to: %s\n", cfg.Username)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetServerCmd)
	configCmd.AddCommand(configSetUsernameCmd)
	rootCmd.AddCommand(configCmd)
}
