package commands

import (
	"fmt"

	"github.com/moasq/xcodeproj-modify/internal/arguments"
	"github.com/moasq/xcodeproj-modify/internal/logger"
	"github.com/moasq/xcodeproj-modify/internal/terminal"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "xcodeproj-modify <path-to-project> add-run-script-phase <target> <position> <name> <contents>",
	Short: "Add run script build phases to Xcode project targets",
	Long: `xcodeproj-modify inserts a Run Script build phase into every target with the
given name and rewrites the project file.

A run script phase with the same name is replaced. Position is a zero-based
index into the target's build phases after that replacement; -1 appends.
The script contents must be passed as a single argument.`,
	Example: `  xcodeproj-modify App.xcodeproj add-run-script-phase App -1 SwiftLint 'swiftlint lint'`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	// The grammar is positional and tokens such as -1 are values, not flags.
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			switch args[0] {
			case "-h", "--help":
				return cmd.Help()
			case "-v", "--version":
				fmt.Fprintln(cmd.OutOrStdout(), cmd.Version)
				return nil
			}
		}

		parsed, err := arguments.Parse(append([]string{cmd.Name()}, args...))
		if err != nil {
			return err
		}
		return newModifier().Run(cmd.Context(), parsed)
	},
}

// Execute runs the root command and returns the process exit code. Errors are
// printed to standard output.
func Execute() int {
	return execute(nil)
}

func execute(args []string) int {
	defer func() { closeLog() }()
	if args != nil {
		rootCmd.SetArgs(args)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting with error", "error", err)
		terminal.Error(err.Error())
		return 1
	}
	return 0
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(phasesCmd)
	rootCmd.AddCommand(mcpCmd)
}
