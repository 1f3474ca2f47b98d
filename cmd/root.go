package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"opensilex-client/internal/client"
	"opensilex-client/internal/config"
	"opensilex-client/internal/sshconfig"
)

var (
	cfg            config.Config
	logger         hclog.Logger
	serverURL      string
	sshHost        string
	username       string
	password       string
	timeoutSeconds int
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "opensilex",
	Short: "OpenSilex CLI - Manage projects, experiments and scientific data",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.LoadConfig()
		if serverURL != "" {
			cfg.BaseURL = serverURL
		}
		if sshHost != "" {
			cfg.SSHHost = sshHost
		}
		if username != "" {
			cfg.Username = username
		}
		if password != "" {
			cfg.Password = password
		}
		if timeoutSeconds > 0 {
			cfg.Timeout = time.Duration(timeoutSeconds) * time.Second
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "opensilex",
			Level: hclog.LevelFromString(cfg.LogLevel),
		})
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "API base URL (overrides config and SSH resolution)")
	rootCmd.PersistentFlags().StringVar(&sshHost, "ssh-host", "", "SSH config alias to resolve the server from")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "API username")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "API password")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}

func SetArgs(args []string) {
	rootCmd.SetArgs(args)
}

func SetOut(w io.Writer) {
	rootCmd.SetOut(w)
}

// newResolver builds an SSH resolver whose prompt is wired to the
// command's streams so interactive selection works under tests.
func newResolver(cmd *cobra.Command) *sshconfig.Resolver {
	return sshconfig.NewResolver(
		sshconfig.WithPrompt(cmd.InOrStdin(), cmd.OutOrStdout()),
	)
}

// newClient builds an unauthenticated client, resolving the base URL
// from the SSH config when none is configured directly.
func newClient(cmd *cobra.Command) (*client.Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		resolved, err := newResolver(cmd).Resolve(cfg.SSHHost)
		if err != nil {
			return nil, fmt.Errorf("resolve server address: %w", err)
		}
		baseURL = resolved
	}
	return client.New(client.Config{
		BaseURL:            baseURL,
		Timeout:            cfg.Timeout,
		InsecureSkipVerify: !cfg.VerifySSL,
		Logger:             logger,
	})
}

// newAuthedClient builds a client and logs in with the configured
// credentials. Callers should defer c.Logout().
func newAuthedClient(cmd *cobra.Command) (*client.Client, error) {
	c, err := newClient(cmd)
	if err != nil {
		return nil, err
	}
	resp, err := c.Authenticate(cmd.Context(), cfg.Username, cfg.Password)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("authentication failed: %s", failureText(resp))
	}
	return c, nil
}

func failureText(resp *client.Response) string {
	if len(resp.Errors) > 0 {
		return resp.Errors[0]
	}
	return resp.Message
}

// saveConfig saves the current configuration to disk.
func saveConfig() error {
	return config.SaveConfig(cfg)
}
