package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"opensilex-client/internal/sshconfig"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Work with SSH config host entries",
}

var hostsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List host aliases from the SSH config",
	Run: func(cmd *cobra.Command, args []string) {
		hosts, err := newResolver(cmd).Hosts()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if len(hosts) == 0 {
			cmd.Println("No hosts found in SSH config")
			return
		}

		aliases := make([]string, 0, len(hosts))
		for alias := range hosts {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)

		for _, alias := range aliases {
			h := hosts[alias]
			port := h.Port
			if port == 0 {
				port = sshconfig.DefaultPort
			}
			cmd.Printf("%s\t%s:%d", alias, h.HostName, port)
			if h.User != "" {
				cmd.Printf("\t%s", h.User)
			}
			cmd.Println()
		}
	},
}

var hostsSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Interactively pick a host and print its base URL",
	Run: func(cmd *cobra.Command, args []string) {
		resolver := newResolver(cmd)
		alias, ok, err := resolver.SelectInteractive()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !ok {
			cmd.Println("No host selected")
			return
		}

		host, _, err := resolver.Get(alias)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		baseURL, err := sshconfig.BaseURL(host)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Printf("Base URL: %s\n", baseURL)

		save, _ := cmd.Flags().GetBool("save")
		if save {
			cfg.SSHHost = alias
			if err := saveConfig(); err != nil {
				cmd.Printf("Error saving configuration: %v\n", err)
				return
			}
			cmd.Printf("SSH host %q saved to configuration\n", alias)
		}
	},
}

func init() {
	hostsSelectCmd.Flags().Bool("save", false, "Save the selected host to the configuration")
	hostsCmd.AddCommand(hostsListCmd)
	hostsCmd.AddCommand(hostsSelectCmd)
	rootCmd.AddCommand(hostsCmd)
}
