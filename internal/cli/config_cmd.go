package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/pushcli/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pushcli configuration file",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a starter config file with every supported key.

The file is created at ~/.pushcli/config.json (or at the path given with
--config) with mode 0600, since it will usually hold the API token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.GlobalPath()
			}
			if path == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: cannot determine home directory; pass --config")
				return NewExitError(ExitConfigError)
			}
			if err := config.WriteTemplate(path, force); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return NewExitError(ExitConfigError)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the global config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GlobalPath())
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the merged configuration after applying the global file, the
--config file, and PUSHCLI_* environment variables. The API token is
masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return NewExitError(ExitConfigError)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user_key:  %s\n", cfg.UserKey)
			fmt.Fprintf(out, "api_token: %s\n", maskSecret(cfg.APIToken))
			fmt.Fprintf(out, "sound:     %s\n", cfg.Sound)
			fmt.Fprintf(out, "device:    %s\n", cfg.Device)
			fmt.Fprintf(out, "timeout:   %d\n", cfg.Timeout)
			fmt.Fprintf(out, "quiet:     %t\n", cfg.Quiet)
			return nil
		},
	}
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
