package models

import (
	"time"

	"github.com/gifblock/gifblock-cli/pkg/search"
)

// Default display and behavior values for a gif block.
const (
	DefaultLimit         = 15
	DefaultPreviewHeight = 200
	DefaultDebounceDelay = 300 * time.Millisecond

	DefaultPlaceholder      = "Search GIFs..."
	DefaultButtonText       = "Search"
	DefaultRemoveButtonText = "Remove GIF"
	DefaultPoweredByText    = "Powered by Tenor"
)

// Options is the partial configuration a host hands to a gif block.
// Nil pointer fields mean "use the default"; supplied fields override
// only themselves.
type Options struct {
	Endpoint               string
	Limit                  *int
	Placeholder            *string
	ButtonText             *string
	RemoveButtonText       *string
	PoweredByText          *string
	PreviewHeight          *int
	EnableHorizontalScroll *bool
	DebounceDelay          *time.Duration
	Headers                map[string]string
	Parser                 search.Parser
}

// Config is the resolved, complete configuration of one block
// instance. It is built once at construction and never mutated.
type Config struct {
	Endpoint               string
	Limit                  int
	Placeholder            string
	ButtonText             string
	RemoveButtonText       string
	PoweredByText          string
	PreviewHeight          int
	EnableHorizontalScroll bool
	DebounceDelay          time.Duration
	Headers                map[string]string
	Parser                 search.Parser
}

// DefaultConfig returns the configuration used when the host supplies
// no options at all. The endpoint has no default; a block without one
// renders its error view instead of failing construction.
func DefaultConfig() Config {
	return Config{
		Limit:                  DefaultLimit,
		Placeholder:            DefaultPlaceholder,
		ButtonText:             DefaultButtonText,
		RemoveButtonText:       DefaultRemoveButtonText,
		PoweredByText:          DefaultPoweredByText,
		PreviewHeight:          DefaultPreviewHeight,
		EnableHorizontalScroll: true,
		DebounceDelay:          DefaultDebounceDelay,
		Headers:                map[string]string{},
		Parser:                 search.DefaultParser(),
	}
}

// ResolveConfig merges the supplied options over the defaults. The
// merge is shallow and deliberately unvalidated: a malformed endpoint
// or limit surfaces later as a render- or fetch-time error, not here.
func ResolveConfig(opts *Options) Config {
	cfg := DefaultConfig()
	if opts == nil {
		return cfg
	}

	cfg.Endpoint = opts.Endpoint
	if opts.Limit != nil {
		cfg.Limit = *opts.Limit
	}
	if opts.Placeholder != nil {
		cfg.Placeholder = *opts.Placeholder
	}
	if opts.ButtonText != nil {
		cfg.ButtonText = *opts.ButtonText
	}
	if opts.RemoveButtonText != nil {
		cfg.RemoveButtonText = *opts.RemoveButtonText
	}
	if opts.PoweredByText != nil {
		cfg.PoweredByText = *opts.PoweredByText
	}
	if opts.PreviewHeight != nil {
		cfg.PreviewHeight = *opts.PreviewHeight
	}
	if opts.EnableHorizontalScroll != nil {
		cfg.EnableHorizontalScroll = *opts.EnableHorizontalScroll
	}
	if opts.DebounceDelay != nil {
		cfg.DebounceDelay = *opts.DebounceDelay
	}
	if opts.Headers != nil {
		cfg.Headers = opts.Headers
	}
	if opts.Parser != nil {
		cfg.Parser = opts.Parser
	}
	return cfg
}
