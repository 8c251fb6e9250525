package models

import (
	"testing"
	"time"
)

func TestResolveConfigDefaults(t *testing.T) {
	for _, opts := range []*Options{nil, {}} {
		cfg := ResolveConfig(opts)

		if cfg.Endpoint != "" {
			t.Errorf("Endpoint = %q, want empty (no default endpoint)", cfg.Endpoint)
		}
		if cfg.Limit != DefaultLimit {
			t.Errorf("Limit = %d, want %d", cfg.Limit, DefaultLimit)
		}
		if cfg.Placeholder != DefaultPlaceholder {
			t.Errorf("Placeholder = %q, want %q", cfg.Placeholder, DefaultPlaceholder)
		}
		if cfg.ButtonText != DefaultButtonText {
			t.Errorf("ButtonText = %q, want %q", cfg.ButtonText, DefaultButtonText)
		}
		if cfg.RemoveButtonText != DefaultRemoveButtonText {
			t.Errorf("RemoveButtonText = %q, want %q", cfg.RemoveButtonText, DefaultRemoveButtonText)
		}
		if cfg.PoweredByText != DefaultPoweredByText {
			t.Errorf("PoweredByText = %q, want %q", cfg.PoweredByText, DefaultPoweredByText)
		}
		if cfg.PreviewHeight != DefaultPreviewHeight {
			t.Errorf("PreviewHeight = %d, want %d", cfg.PreviewHeight, DefaultPreviewHeight)
		}
		if !cfg.EnableHorizontalScroll {
			t.Error("EnableHorizontalScroll = false, want true")
		}
		if cfg.DebounceDelay != DefaultDebounceDelay {
			t.Errorf("DebounceDelay = %v, want %v", cfg.DebounceDelay, DefaultDebounceDelay)
		}
		if cfg.Headers == nil || len(cfg.Headers) != 0 {
			t.Errorf("Headers = %v, want empty map", cfg.Headers)
		}
		if cfg.Parser == nil {
			t.Error("Parser = nil, want the default parser")
		}
	}
}

func TestResolveConfigOverrides(t *testing.T) {
	t.Run("EachFieldOverridesOnlyItself", func(t *testing.T) {
		limit := 5
		cfg := ResolveConfig(&Options{Limit: &limit})

		if cfg.Limit != 5 {
			t.Errorf("Limit = %d, want 5", cfg.Limit)
		}
		// Everything else keeps its default.
		if cfg.Placeholder != DefaultPlaceholder || cfg.DebounceDelay != DefaultDebounceDelay {
			t.Error("overriding Limit changed unrelated fields")
		}
	})

	t.Run("ZeroValuesAreValidOverrides", func(t *testing.T) {
		scroll := false
		delay := time.Duration(0)
		empty := ""
		cfg := ResolveConfig(&Options{
			EnableHorizontalScroll: &scroll,
			DebounceDelay:          &delay,
			Placeholder:            &empty,
		})

		if cfg.EnableHorizontalScroll {
			t.Error("EnableHorizontalScroll = true, want explicit false")
		}
		if cfg.DebounceDelay != 0 {
			t.Errorf("DebounceDelay = %v, want 0", cfg.DebounceDelay)
		}
		if cfg.Placeholder != "" {
			t.Errorf("Placeholder = %q, want explicit empty", cfg.Placeholder)
		}
	})

	t.Run("AllFields", func(t *testing.T) {
		limit := 3
		placeholder := "Find a GIF"
		button := "Go"
		remove := "Clear"
		powered := "via proxy"
		height := 120
		scroll := false
		delay := 50 * time.Millisecond
		headers := map[string]string{"Authorization": "Bearer x"}

		cfg := ResolveConfig(&Options{
			Endpoint:               "https://proxy.example.com/gifs",
			Limit:                  &limit,
			Placeholder:            &placeholder,
			ButtonText:             &button,
			RemoveButtonText:       &remove,
			PoweredByText:          &powered,
			PreviewHeight:          &height,
			EnableHorizontalScroll: &scroll,
			DebounceDelay:          &delay,
			Headers:                headers,
		})

		if cfg.Endpoint != "https://proxy.example.com/gifs" {
			t.Errorf("Endpoint = %q", cfg.Endpoint)
		}
		if cfg.Limit != 3 || cfg.Placeholder != placeholder || cfg.ButtonText != button {
			t.Error("supplied fields were not applied")
		}
		if cfg.RemoveButtonText != remove || cfg.PoweredByText != powered {
			t.Error("supplied text fields were not applied")
		}
		if cfg.PreviewHeight != 120 || cfg.EnableHorizontalScroll || cfg.DebounceDelay != delay {
			t.Error("supplied layout fields were not applied")
		}
		if cfg.Headers["Authorization"] != "Bearer x" {
			t.Error("supplied headers were not applied")
		}
	})
}

func TestSettingsBlockOptions(t *testing.T) {
	t.Run("DefaultsRoundTrip", func(t *testing.T) {
		settings := DefaultSettings()
		cfg := ResolveConfig(settings.BlockOptions())

		if cfg.Limit != DefaultLimit {
			t.Errorf("Limit = %d, want %d", cfg.Limit, DefaultLimit)
		}
		if cfg.DebounceDelay != DefaultDebounceDelay {
			t.Errorf("DebounceDelay = %v, want %v", cfg.DebounceDelay, DefaultDebounceDelay)
		}
		if cfg.PreviewHeight != DefaultPreviewHeight {
			t.Errorf("PreviewHeight = %d, want %d", cfg.PreviewHeight, DefaultPreviewHeight)
		}
	})

	t.Run("CarriesOverrides", func(t *testing.T) {
		settings := DefaultSettings()
		settings.Search.Endpoint = "https://proxy.example.com/gifs"
		settings.Search.Limit = 9
		settings.Search.DebounceMs = 100
		settings.Display.HorizontalScroll = false

		cfg := ResolveConfig(settings.BlockOptions())
		if cfg.Endpoint != "https://proxy.example.com/gifs" {
			t.Errorf("Endpoint = %q", cfg.Endpoint)
		}
		if cfg.Limit != 9 {
			t.Errorf("Limit = %d, want 9", cfg.Limit)
		}
		if cfg.DebounceDelay != 100*time.Millisecond {
			t.Errorf("DebounceDelay = %v, want 100ms", cfg.DebounceDelay)
		}
		if cfg.EnableHorizontalScroll {
			t.Error("EnableHorizontalScroll = true, want false")
		}
	})
}
