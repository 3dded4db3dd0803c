package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"potx/internal/settings"
)

var settingTypeFlag string

// settingsCmd represents the settings command group
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change persistent settings",
	Long: `Settings manages the project's persistent key/value settings stored
in .potx/settings.json. Keys are slash-separated paths, e.g. /use_tm
or /ota/etag.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSettings()
		if err != nil {
			return err
		}
		fmt.Println(store.String(args[0], ""))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value under a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSettings()
		if err != nil {
			return err
		}
		return storeSetting(store, args[0], args[1], settingTypeFlag)
	},
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSettings()
		if err != nil {
			return err
		}
		return store.Unset(args[0])
	},
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSettings()
		if err != nil {
			return err
		}
		keys := store.Keys()
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
	settingsCmd.AddCommand(settingsListCmd)

	settingsSetCmd.Flags().StringVarP(&settingTypeFlag, "type", "t", "string", "value type: string, bool, int or time (RFC 3339)")
}

func openSettings() (*settings.Store, error) {
	rootDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return settings.Open(filepath.Join(rootDir, ".potx", "settings.json"))
}

// storeSetting parses value according to typ and persists it under key.
func storeSetting(store *settings.Store, key, value, typ string) error {
	switch typ {
	case "string":
		return store.SetString(key, value)
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", value, err)
		}
		return store.SetBool(key, b)
	case "int":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", value, err)
		}
		return store.SetInt(key, n)
	case "time":
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("invalid time value %q: %w", value, err)
		}
		return store.SetTime(key, ts)
	default:
		return fmt.Errorf("unknown value type %q", typ)
	}
}
