// pushcli - Pushover notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pushcli

// Package cli provides the Cobra-based command surface for pushcli. The
// root command runs the whole send pipeline (parse -> validate -> build
// -> POST -> report); subcommands cover version info, the sound catalog,
// and config file management.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ariel-frischer/pushcli/internal/config"
	"github.com/ariel-frischer/pushcli/internal/options"
	"github.com/ariel-frischer/pushcli/internal/progress"
	"github.com/ariel-frischer/pushcli/internal/pushover"
	"github.com/ariel-frischer/pushcli/internal/report"
	"github.com/ariel-frischer/pushcli/internal/request"
)

// NewRootCmd builds the root command with all flags and subcommands.
// Tests create their own instance so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pushcli",
		Short: "Send Pushover notifications from the command line",
		Long: `Send a Pushover notification with one command.

The user key, API token, and message are required; they can come from
flags, from ~/.pushcli/config.json, or from PUSHCLI_* environment
variables. Every parameter problem is reported in one pass before
anything is sent.`,
		Example: `  # Send a plain notification
  pushcli --user=<key> --token=<token> --msg="backup finished"

  # Emergency priority retries every 60s for up to an hour
  pushcli --user=<key> --token=<token> --msg="disk failing" --priority=2 --retry=60 --expire=3600

  # With user/token stored in ~/.pushcli/config.json
  pushcli --msg="deploy complete" --sound=cosmic --quiet`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSend,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to an extra config file")

	rootCmd.Flags().String("user", "", "Pushover user key (required)")
	rootCmd.Flags().String("token", "", "Pushover application API token (required)")
	rootCmd.Flags().String("msg", "", "Message text to send (required)")
	rootCmd.Flags().String("sound", "", "Alert sound name (default \"pushover\")")
	rootCmd.Flags().String("title", "", "Message title (defaults to the application name)")
	rootCmd.Flags().String("device", "", "Deliver to a single named device")
	rootCmd.Flags().Int("priority", 0, "Priority from -2 (lowest) to 2 (emergency)")
	rootCmd.Flags().Int("retry", 0, "Emergency resend interval in seconds (min 30)")
	rootCmd.Flags().Int("expire", 0, "Emergency retry window in seconds (max 10800)")
	rootCmd.Flags().Int("ttl", 0, "Seconds until the notification disappears")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress the success confirmation")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\nSee '%s --help' for usage.\n", err, cmd.CommandPath())
		return NewExitError(ExitInvalidArguments)
	})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSoundsCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// runSend executes the whole pipeline for the root invocation.
func runSend(cmd *cobra.Command, _ []string) error {
	printer := &report.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return NewExitError(ExitConfigError)
	}

	raw := rawOptionsFromFlags(cmd.Flags())
	applyConfigDefaults(&raw, cmd.Flags(), cfg)

	norm, warnings, errs := options.Validate(raw)
	for _, warning := range warnings {
		printer.Warning(warning)
	}
	if len(errs) > 0 {
		printer.ValidationFailure(errs)
		return NewExitError(ExitValidationFailed)
	}

	fields := request.Build(norm)
	client := newClient(cfg)

	spin := progress.New("Sending notification")
	if !norm.Quiet {
		spin.Start()
	}
	outcome := client.Send(cmd.Context(), fields)
	spin.Stop()

	if !outcome.Success() {
		printer.Failure(outcome)
		return NewExitError(ExitSendFailed)
	}
	printer.Success(outcome, norm.Quiet)
	return nil
}

// newClient builds the API client from config. PUSHCLI_API_BASE
// redirects the client to another host, for tests and self-hosted
// proxies.
func newClient(cfg *config.Configuration) *pushover.Client {
	client := pushover.NewClient(time.Duration(cfg.Timeout) * time.Second)
	if base := os.Getenv("PUSHCLI_API_BASE"); base != "" {
		client.SetBaseURL(base)
	}
	return client
}

// rawOptionsFromFlags captures flag values without interpreting them.
// Changed() distinguishes an explicit zero from an absent flag, which
// validation needs for the retry/expire/ttl rules.
func rawOptionsFromFlags(flags *pflag.FlagSet) options.RawOptions {
	user, _ := flags.GetString("user")
	token, _ := flags.GetString("token")
	msg, _ := flags.GetString("msg")
	sound, _ := flags.GetString("sound")
	title, _ := flags.GetString("title")
	device, _ := flags.GetString("device")
	priority, _ := flags.GetInt("priority")
	retry, _ := flags.GetInt("retry")
	expire, _ := flags.GetInt("expire")
	ttl, _ := flags.GetInt("ttl")
	quiet, _ := flags.GetBool("quiet")

	return options.RawOptions{
		User:        user,
		Token:       token,
		Message:     msg,
		Sound:       sound,
		Title:       title,
		Device:      device,
		Priority:    priority,
		PrioritySet: flags.Changed("priority"),
		Retry:       retry,
		RetrySet:    flags.Changed("retry"),
		Expire:      expire,
		ExpireSet:   flags.Changed("expire"),
		TTL:         ttl,
		TTLSet:      flags.Changed("ttl"),
		Quiet:       quiet,
	}
}

// applyConfigDefaults fills in values from the config file for flags the
// user did not supply. Flags always win over config.
func applyConfigDefaults(raw *options.RawOptions, flags *pflag.FlagSet, cfg *config.Configuration) {
	if !flags.Changed("user") && cfg.UserKey != "" {
		raw.User = cfg.UserKey
	}
	if !flags.Changed("token") && cfg.APIToken != "" {
		raw.Token = cfg.APIToken
	}
	if !flags.Changed("sound") && cfg.Sound != "" {
		raw.Sound = cfg.Sound
	}
	if !flags.Changed("device") && cfg.Device != "" {
		raw.Device = cfg.Device
	}
	if !flags.Changed("quiet") && cfg.Quiet {
		raw.Quiet = true
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
