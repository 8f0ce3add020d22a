// Package cli is the authctl command tree.
package cli

import (
	"MockAuthPortal/internal/client"
	"MockAuthPortal/internal/logs"
	"MockAuthPortal/internal/session"

	"github.com/Atrox/homedir"
	"github.com/spf13/cobra"
)

const defaultSessionPath = "~/.mockauth/session.json"

type rootConfig struct {
	verbose     bool
	server      string
	sessionPath string
}

// NewRootCmd builds authctl with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cfg := &rootConfig{}

	cmd := &cobra.Command{
		Use:           "authctl",
		Short:         "Terminal client for the mock auth portal",
		Long:          "Sign up, log in and inspect the current session of a running mock auth portal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logs.ConfigureVerbosity(cfg.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "print verbose messages")
	cmd.PersistentFlags().StringVarP(&cfg.server, "server", "s", "http://localhost:8080", "portal base URL")
	cmd.PersistentFlags().StringVar(&cfg.sessionPath, "session-file", defaultSessionPath, "where the session is kept between runs")

	cmd.AddCommand(
		newSignupCmd(cfg),
		newLoginCmd(cfg),
		newWhoamiCmd(cfg),
		newLogoutCmd(cfg),
	)
	return cmd
}

func (cfg *rootConfig) client() (*client.Client, error) {
	path, err := homedir.Expand(cfg.sessionPath)
	if err != nil {
		return nil, err
	}
	logs.Printv("Using session file %s", path)
	store, err := session.OpenFileStore(path)
	if err != nil {
		return nil, err
	}
	return client.New(cfg.server, store), nil
}
