package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the server, history and analysis settings.

Settings persist in ~/.paperiq/config.toml and apply to every command.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set a single configuration key.

Run 'paperiq settings keys' to list the available keys.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the settable configuration keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Printf("  Rate limit: %.1f req/s (burst %d)\n", settings.Server.RateLimit, settings.Server.Burst)
	cmd.Printf("  Browser UI: %s\n", enabledWord(settings.Server.UIEnabled))
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", enabledWord(settings.History.Enabled))
	cmd.Printf("  List limit: %d\n", settings.History.Limit)
	cmd.Println()

	cmd.Println("[Analyze]")
	cmd.Printf("  Flagged sentences: %d\n", settings.Analyze.FlagCount)
	cmd.Printf("  Minimum length: %d characters\n", settings.Analyze.MinLength)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.SetKey(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

// enabledWord renders a boolean setting for display.
func enabledWord(enabled bool) string {
	if enabled {
		return "yes"
	}
	return "no"
}
