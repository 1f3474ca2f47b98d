package cmd

import (
	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Server information",
}

var systemInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		resp, err := c.SystemInfo(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Request failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		if info, ok := resp.Data.(map[string]any); ok {
			for key, value := range info {
				cmd.Printf("%s: %v\n", key, value)
			}
			return
		}
		cmd.Printf("%v\n", resp.Data)
	},
}

func init() {
	systemCmd.AddCommand(systemInfoCmd)
	rootCmd.AddCommand(systemCmd)
}
