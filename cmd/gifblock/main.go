package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gifblock/gifblock-cli/cmd/commands"
	"github.com/gifblock/gifblock-cli/pkg/files"
	"github.com/gifblock/gifblock-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gifblock",
	Short: "GIF search-and-insert block for terminal editors",
	Long:  `Gifblock is a GIF search-and-insert content block for bubbletea-based editors, plus a small demo editor to try it in. It searches through a user-supplied proxy endpoint and stores everything as plain yaml files.`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(files.GifblockDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No .gifblock directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'gifblock init' first to initialize a project.\n")
			os.Exit(1)
		}

		settings, err := files.ReadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read settings: %v\n", err)
			os.Exit(1)
		}

		// Diagnostics go to a file so they never tear the TUI.
		logger := logrus.New()
		if logFile, err := os.OpenFile(files.LogFilePath(settings), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer logFile.Close()
			logger.SetOutput(logFile)
		}
		if level, err := logrus.ParseLevel(settings.Log.Level); err == nil {
			logger.SetLevel(level)
		}

		app := tui.NewApp(settings, logger)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gifblock project",
	Long:  `Creates the .gifblock folder with a default settings file`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing gifblock project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Created .gifblock folder with default settings")
		fmt.Println("\nSet your proxy endpoint with:")
		fmt.Println("  gifblock set search.endpoint <url>")
		fmt.Println("\nThen run 'gifblock' to start the demo editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gifblock",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gifblock version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
