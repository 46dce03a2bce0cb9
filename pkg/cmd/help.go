package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scry-cli/scry/pkg/analytics"
	"github.com/scry-cli/scry/pkg/fortune/content"
)

// DisplayArtAndHelp prints a random art block followed by the command's help text.
// Exported because it's used by both the help command and the root command's flag
// error handler.
func DisplayArtAndHelp(cmd *cobra.Command) {
	fmt.Println() // Add visual separation before the art
	fmt.Println(content.RandomArt())
	_ = cmd.Help()
}

// CreateHelpCommand creates a custom help command that displays random art.
// rootCmd is needed to look up subcommands when the user types "scry help <command>".
func CreateHelpCommand(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:     "help [command]",
		Aliases: []string{"h"},
		Short:   "Help about any command",
		Run: func(cmd *cobra.Command, args []string) {
			// Track help command usage with context about why help was shown
			helpTopic := "general"
			helpReason := "requested"

			// If a subcommand is specified, determine if it's valid
			if len(args) > 0 {
				targetCmd, _, err := rootCmd.Find(args)
				if err != nil {
					helpReason = "unknown_command"
					fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
					DisplayArtAndHelp(rootCmd)
				} else {
					helpTopic = args[0]
					DisplayArtAndHelp(targetCmd)
				}
			} else {
				DisplayArtAndHelp(rootCmd)
			}

			analytics.TrackEvent(analytics.EventHelpCommand, analytics.Properties{
				"help_topic":  helpTopic,
				"help_reason": helpReason,
			})
		},
	}
}
