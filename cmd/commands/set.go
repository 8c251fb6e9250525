package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gifblock/gifblock-cli/pkg/files"
	"github.com/gifblock/gifblock-cli/pkg/models"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a settings key in .gifblock/settings.yaml",
		Long: `Update one settings key and write the settings file back.

Supported keys:
  search.endpoint      Endpoint URL the block queries
  search.limit         Candidates requested per search
  search.debounce_ms   Debounce delay in milliseconds
  search.header        One "Name: Value" request header (repeatable key)
  display.powered_by   Attribution footer text
  log.level            Log level (debug, info, warn, error)

Examples:
  gifblock set search.endpoint https://proxy.example.com/gifs
  gifblock set search.limit 20
  gifblock set search.header "Authorization: Bearer token"`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}
	if err := files.WriteSettings(settings); err != nil {
		return err
	}

	fmt.Printf("✓ Set %s\n", key)
	return nil
}

func applySetting(settings *models.Settings, key, value string) error {
	switch key {
	case "search.endpoint":
		settings.Search.Endpoint = value
	case "search.limit":
		limit, err := strconv.Atoi(value)
		if err != nil || limit <= 0 {
			return fmt.Errorf("search.limit must be a positive integer, got %q", value)
		}
		settings.Search.Limit = limit
	case "search.debounce_ms":
		delay, err := strconv.Atoi(value)
		if err != nil || delay < 0 {
			return fmt.Errorf("search.debounce_ms must be a non-negative integer, got %q", value)
		}
		settings.Search.DebounceMs = delay
	case "search.header":
		name, headerValue, found := strings.Cut(value, ":")
		if !found {
			return fmt.Errorf(`search.header expects "Name: Value", got %q`, value)
		}
		if settings.Search.Headers == nil {
			settings.Search.Headers = map[string]string{}
		}
		settings.Search.Headers[strings.TrimSpace(name)] = strings.TrimSpace(headerValue)
	case "display.powered_by":
		settings.Display.PoweredByText = value
	case "log.level":
		switch value {
		case "debug", "info", "warn", "error":
			settings.Log.Level = value
		default:
			return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", value)
		}
	default:
		return fmt.Errorf("unknown settings key %q", key)
	}
	return nil
}
