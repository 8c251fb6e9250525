package models

import "time"

// Settings represents the on-disk configuration used by the CLI and
// the demo editor host.
type Settings struct {
	Search  SearchSettings  `yaml:"search"`
	Display DisplaySettings `yaml:"display"`
	Log     LogSettings     `yaml:"log"`
}

// SearchSettings controls the search pipeline
type SearchSettings struct {
	Endpoint   string            `yaml:"endpoint"`
	Limit      int               `yaml:"limit"`
	Headers    map[string]string `yaml:"headers,omitempty"`
	DebounceMs int               `yaml:"debounce_ms"`
}

// DisplaySettings controls the block's rendered texts and layout
type DisplaySettings struct {
	Placeholder      string `yaml:"placeholder"`
	ButtonText       string `yaml:"button_text"`
	RemoveButtonText string `yaml:"remove_button_text"`
	PoweredByText    string `yaml:"powered_by_text"`
	PreviewHeight    int    `yaml:"preview_height"`
	HorizontalScroll bool   `yaml:"horizontal_scroll"`
}

// LogSettings controls where diagnostics go
type LogSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			Endpoint:   "",
			Limit:      DefaultLimit,
			DebounceMs: int(DefaultDebounceDelay / time.Millisecond),
		},
		Display: DisplaySettings{
			Placeholder:      DefaultPlaceholder,
			ButtonText:       DefaultButtonText,
			RemoveButtonText: DefaultRemoveButtonText,
			PoweredByText:    DefaultPoweredByText,
			PreviewHeight:    DefaultPreviewHeight,
			HorizontalScroll: true,
		},
		Log: LogSettings{
			File:  "gifblock.log",
			Level: "info",
		},
	}
}

// BlockOptions converts file settings into the partial options record
// a block is constructed with. Only values that differ from the yaml
// zero value are carried over, so an absent key keeps its default.
func (s *Settings) BlockOptions() *Options {
	opts := &Options{Endpoint: s.Search.Endpoint}

	if s.Search.Limit > 0 {
		limit := s.Search.Limit
		opts.Limit = &limit
	}
	if s.Search.Headers != nil {
		opts.Headers = s.Search.Headers
	}
	if s.Search.DebounceMs >= 0 {
		delay := time.Duration(s.Search.DebounceMs) * time.Millisecond
		opts.DebounceDelay = &delay
	}
	if s.Display.Placeholder != "" {
		opts.Placeholder = &s.Display.Placeholder
	}
	if s.Display.ButtonText != "" {
		opts.ButtonText = &s.Display.ButtonText
	}
	if s.Display.RemoveButtonText != "" {
		opts.RemoveButtonText = &s.Display.RemoveButtonText
	}
	if s.Display.PoweredByText != "" {
		opts.PoweredByText = &s.Display.PoweredByText
	}
	if s.Display.PreviewHeight > 0 {
		opts.PreviewHeight = &s.Display.PreviewHeight
	}
	scroll := s.Display.HorizontalScroll
	opts.EnableHorizontalScroll = &scroll

	return opts
}
