package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/pushcli/internal/config"
)

func newSoundsCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "sounds",
		Short: "List the alert sounds the Pushover API offers",
		Long: `Fetch the catalog of alert sounds from the Pushover API.

Any name in the catalog can be passed to --sound when sending. The API
token comes from --token or from the configured api_token.`,
		Example: `  pushcli sounds --token=<token>`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return NewExitError(ExitConfigError)
			}
			if token == "" {
				token = cfg.APIToken
			}
			if token == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Missing required parameter --token\n")
				return NewExitError(ExitValidationFailed)
			}

			client := newClient(cfg)
			sounds, err := client.Sounds(cmd.Context(), token)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to fetch sound catalog: %v\n", err)
				return NewExitError(ExitSendFailed)
			}

			names := make([]string, 0, len(sounds))
			for name := range sounds {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, sounds[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Pushover application API token")
	return cmd
}
