package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gifblock/gifblock-cli/internal/cli"
	"github.com/gifblock/gifblock-cli/pkg/files"
	"github.com/gifblock/gifblock-cli/pkg/search"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query   string             `json:"query" yaml:"query"`
	Count   int                `json:"count" yaml:"count"`
	Results []search.Candidate `json:"results" yaml:"results"`
}

var (
	searchOutputFormat string
	searchLimit        int
	searchEndpoint     string
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the configured GIF endpoint from the command line",
		Long: `Run one search against the configured GIF endpoint and print the
candidates. Useful for checking a proxy endpoint and its response
shape before using it inside the editor.

Examples:
  # Search with the endpoint from .gifblock/settings.yaml
  gifblock search "office party"

  # Override the endpoint and limit
  gifblock search cats --endpoint https://proxy.example.com/gifs --limit 5

  # Machine-readable output
  gifblock search cats --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVarP(&searchOutputFormat, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(cli.ValidFormats(), ", ")))
	cmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum number of candidates (default from settings)")
	cmd.Flags().StringVarP(&searchEndpoint, "endpoint", "e", "", "Endpoint URL (default from settings)")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if !cli.IsValidFormat(searchOutputFormat) {
		return fmt.Errorf("invalid output format %q (pick one of %s)",
			searchOutputFormat, strings.Join(cli.ValidFormats(), ", "))
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	endpoint := settings.Search.Endpoint
	if searchEndpoint != "" {
		endpoint = searchEndpoint
	}
	if endpoint == "" {
		return fmt.Errorf("no endpoint configured; set one with 'gifblock set search.endpoint <url>' or --endpoint")
	}

	limit := settings.Search.Limit
	if searchLimit > 0 {
		limit = searchLimit
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	client := search.NewClient(search.ClientOptions{
		Endpoint: endpoint,
		Limit:    limit,
		Headers:  settings.Search.Headers,
		Logger:   logger,
	})

	query := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	candidates, err := client.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if candidates == nil {
		return fmt.Errorf("query %q is too short (minimum %d characters)", query, search.MinQueryLength)
	}

	output := SearchResultOutput{
		Query:   query,
		Count:   len(candidates),
		Results: candidates,
	}

	if cli.OutputFormat(searchOutputFormat) == cli.FormatText {
		printSearchTable(output)
		return nil
	}
	return cli.OutputResults(os.Stdout, searchOutputFormat, output)
}

func printSearchTable(output SearchResultOutput) {
	if output.Count == 0 {
		fmt.Printf("No GIFs found for %q\n", output.Query)
		return
	}

	fmt.Printf("Found %d GIFs for %q\n\n", output.Count, output.Query)
	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ID", "TITLE", "SIZE", "URL")
	for _, candidate := range output.Results {
		size := ""
		if candidate.Width > 0 && candidate.Height > 0 {
			size = strconv.Itoa(candidate.Width) + "x" + strconv.Itoa(candidate.Height)
		}
		table.Row(candidate.ID, candidate.Title, size, candidate.FullURL)
	}
	table.Flush()
}
