package commands

import (
	"github.com/moasq/xcodeproj-modify/internal/arguments"
	"github.com/moasq/xcodeproj-modify/internal/logger"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <path-to-project> <batch.yml>",
	Short: "Run a YAML batch of commands against a project",
	Long: `Run every command listed in a YAML batch file against the project, in order.
The first failing command stops the batch; projects written by earlier
commands stay written.

  commands:
    - command: add-run-script-phase
      target: App
      position: -1
      name: SwiftLint
      contents: swiftlint lint`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := arguments.LoadBatch(args[0], args[1])
		if err != nil {
			return err
		}
		logger.Info("loaded batch", "file", args[1], "commands", len(parsed.Commands))
		return newModifier().Run(cmd.Context(), parsed)
	},
}
