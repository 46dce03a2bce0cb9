package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/scry-cli/scry/pkg/analytics"
	cmdpkg "github.com/scry-cli/scry/pkg/cmd"
	"github.com/scry-cli/scry/pkg/config"
	"github.com/scry-cli/scry/pkg/fortune"
	"github.com/scry-cli/scry/pkg/fortune/content"
	"github.com/scry-cli/scry/pkg/log"
	"github.com/scry-cli/scry/pkg/utils"
)

// The current version of the CLI
var version = "dev" // Replaced with actual version in the production build process

// Flags / Modes / Options

// General Options
var category string  // fortune category to draw from
var noColor bool     // flag to disable ANSI color in the output
var noAnalytics bool // flag to disable usage analytics
// Logging and Debugging Options
var console bool // flag to enable logging to the console
var logFile bool // flag to enable logging to the log file
var debug bool   // flag to enable debug level logging
var silent bool  // flag to enable silent output (no user messages)

// validateFlags checks for mutually exclusive flag combinations
func validateFlags() error {
	if console && silent {
		return utils.ValidationError{Message: "cannot use --console and --silent together. These flags are mutually exclusive"}
	}
	if debug && !console && !logFile {
		return utils.ValidationError{Message: "--debug requires either --console or --log to be specified"}
	}
	return nil
}

// validateCategory checks that the requested category names a known fortune table
func validateCategory(name string) error {
	if fortune.ValidCategory(name) {
		return nil
	}
	return utils.ValidationError{
		Message: fmt.Sprintf("unknown category '%s'. Valid categories are: %s",
			name, strings.Join(categoryNames(), ", ")),
	}
}

func categoryNames(listing ...fortune.Category) []string {
	if len(listing) == 0 {
		listing = fortune.Categories
	}
	names := make([]string, len(listing))
	for i, c := range listing {
		names[i] = string(c)
	}
	return names
}

// createRootCommand creates the root command, which prints a fortune when
// invoked without a subcommand
func createRootCommand() *cobra.Command {
	examples := `
# Print a random fortune
scry

# Print a random fortune from a specific category
scry -c facts
scry -c valentines

# Always print a random art block
scry -c art

# Print a fortune without ANSI color
scry --no-color`

	longDesc := `Scry prints a short decorated fortune to your terminal, one line per invocation.

Most draws come from the regular fortune tables. Around Valentine's Day the
draw pool quietly grows, and about one draw in a hundred prints a block of
art instead. Use -c to draw from a specific category every time.`

	return &cobra.Command{
		Use:               "scry",
		Short:             "Scry prints a decorated fortune to your terminal",
		Long:              longDesc,
		Example:           examples,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags before any other setup
			if err := validateFlags(); err != nil {
				fmt.Println() // Add visual separation before error message for better CLI readability
				return err
			}

			// Layer file config under the CLI flags
			cfg, err := config.Load(&config.CLIOverrides{
				Category:    category,
				NoColor:     noColor,
				Console:     console,
				Log:         logFile,
				Debug:       debug,
				Silent:      silent,
				NoAnalytics: noAnalytics,
			})
			if err != nil {
				return err
			}

			console = cfg.IsConsoleEnabled()
			logFile = cfg.IsLogEnabled()
			debug = cfg.IsDebugEnabled()
			silent = cfg.IsSilentEnabled()
			noColor = !cfg.IsColorEnabled()
			category = cfg.GetCategory()

			// Configure logging based on the resolved settings
			if console || logFile {
				var logPath string
				if logFile {
					logPath = config.DebugLogPath()
				}
				if err := log.SetupLogger(console, logFile, debug, logPath); err != nil {
					return fmt.Errorf("failed to set up logger: %v", err)
				}

				slog.Info("=== Scry Starting ===")
				slog.Info("Version", "version", version)
				slog.Info("Command line", "args", strings.Join(os.Args, " "))
				slog.Info("=====================")
			} else {
				// No logging - set up discard logger
				if err := log.SetupLogger(false, false, false, ""); err != nil {
					return err
				}
			}

			// Set silent mode for user messages
			log.SetSilent(silent)

			if !cfg.IsAnalyticsEnabled() {
				analytics.Disable()
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFortune(cmd)
		},
	}
}

// runFortune performs one draw and writes one render to stdout
func runFortune(cmd *cobra.Command) error {
	if err := validateCategory(category); err != nil {
		fmt.Println() // Visual separation before error message
		return err
	}

	pack, err := content.Load()
	if err != nil {
		slog.Error("Failed to load fortune content", "error", err)
		return err
	}

	// Color only when stdout is a terminal and color hasn't been disabled
	colorOn := !noColor && term.IsTerminal(int(os.Stdout.Fd()))

	sel, err := fortune.NewSelector(fortune.Content{
		Fun:        pack.Fun,
		Facts:      pack.Facts,
		Valentines: pack.Valentines,
		Art:        content.ArtBlocks,
		Palette:    content.Palette(colorOn),
		Symbols:    pack.Symbols,
	})
	if err != nil {
		return err
	}

	slog.Info("Drawing fortune", "category", category, "color", colorOn)
	event := analytics.EventFortuneShown
	if fortune.Category(category) == fortune.CategoryArt {
		event = analytics.EventArtShown
	}
	analytics.TrackEvent(event, analytics.Properties{
		"category": category,
		"color":    colorOn,
	})

	return sel.Render(os.Stdout, fortune.Category(category))
}

var rootCmd *cobra.Command

// Main entry point for the CLI
func main() {
	// Parse critical flags early by manually checking os.Args
	// This is necessary because cobra's ParseFlags doesn't work correctly before subcommands are added
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-usage-analytics":
			noAnalytics = true
		case "--no-color":
			noColor = true
		case "--console":
			console = true
		case "--log":
			logFile = true
		case "--debug":
			debug = true
		case "--silent":
			silent = true
		}
	}

	// Set up logging early before creating commands
	if console || logFile {
		var logPath string
		if logFile {
			logPath = config.DebugLogPath()
		}
		_ = log.SetupLogger(console, logFile, debug, logPath)
	} else {
		// Set up discard logger to prevent default slog output
		_ = log.SetupLogger(false, false, false, "")
	}

	// NOW create the commands - after logging is configured
	rootCmd = createRootCommand()
	versionCmd := cmdpkg.CreateVersionCommand(version)

	// Set version for the automatic version flag
	rootCmd.Version = version

	// Override the default version template to match our version command output
	rootCmd.SetVersionTemplate("{{.Version}} (scry)")

	// Set our custom help command (for "scry help")
	helpCmd := cmdpkg.CreateHelpCommand(rootCmd)
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.AddCommand(versionCmd)

	// Global flags available on all commands
	rootCmd.PersistentFlags().BoolVar(&console, "console", false, "enable error/warn/info output to stdout")
	rootCmd.PersistentFlags().BoolVar(&logFile, "log", false, "write error/warn/info output to ./.scry/debug/debug.log")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level output (requires --console or --log)")
	rootCmd.PersistentFlags().BoolVar(&noAnalytics, "no-usage-analytics", false, "disable usage analytics")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "suppress all non-error output")

	// Root-only flags
	rootCmd.Flags().StringVarP(&category, "category", "c", "", "fortune category to draw from ("+strings.Join(categoryNames(), ", ")+")")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color in the output")

	// Initialize analytics with the full CLI command (unless disabled)
	if !noAnalytics {
		fullCommand := strings.Join(os.Args, " ")
		if err := analytics.Init(fullCommand, version); err != nil {
			// Log error but don't fail - analytics should not break the app
			slog.Warn("Failed to initialize analytics", "error", err)
		}
		defer func() { _ = analytics.Close() }() // Analytics errors shouldn't break the app
	} else {
		slog.Debug("Analytics disabled by --no-usage-analytics flag")
	}

	// Ensure proper cleanup and logging on exit
	defer func() {
		if r := recover(); r != nil {
			slog.Error("=== Scry PANIC ===", "panic", r)
			log.CloseLogger()
			panic(r) // Re-panic after logging
		}
		if console || logFile {
			slog.Info("=== Scry Exiting ===", "code", 0, "status", "normal termination")
		}
		log.CloseLogger()
	}()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		if console || logFile {
			slog.Error("=== Scry Exiting ===", "code", 1, "status", "error")
			slog.Error("Error", "error", err)
		}
		fmt.Fprintln(os.Stderr) // Visual separation makes error output more noticeable

		// Only show usage for actual command/flag errors from Cobra
		errMsg := err.Error()
		isCommandError := strings.Contains(errMsg, "unknown command") ||
			strings.Contains(errMsg, "unknown flag") ||
			strings.Contains(errMsg, "invalid argument") ||
			strings.Contains(errMsg, "required flag") ||
			strings.Contains(errMsg, "accepts") || // e.g., "accepts 1 arg(s), received 2"
			strings.Contains(errMsg, "no such flag") ||
			strings.Contains(errMsg, "flag needs an argument")

		if isCommandError {
			_ = rootCmd.Usage() // Ignore error; we're exiting anyway
			fmt.Println()       // Add visual separation after usage for better CLI readability
		}
		log.CloseLogger()
		os.Exit(1)
	}
}
