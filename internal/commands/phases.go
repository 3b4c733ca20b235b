package commands

import (
	"fmt"
	"strings"

	"github.com/moasq/xcodeproj-modify/internal/modify"
	"github.com/moasq/xcodeproj-modify/internal/terminal"
	"github.com/spf13/cobra"
)

var phasesCmd = &cobra.Command{
	Use:   "phases <path-to-project> [target]",
	Short: "List targets and their build phases",
	Long:  "Print every target (or only those with the given name) and its build phases in build order.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) == 2 {
			target = args[1]
		}

		targets, err := modify.ListBuildPhases(args[0], target)
		if err != nil {
			return err
		}

		for _, t := range targets {
			terminal.Header(fmt.Sprintf("%s (%s)", t.Name, strings.TrimPrefix(t.Kind, "PBX")))
			if len(t.Phases) == 0 {
				terminal.Info("No build phases")
				continue
			}
			for i, p := range t.Phases {
				terminal.Detail(fmt.Sprintf("%d", i), fmt.Sprintf("%s [%s]", p.Name, p.Kind))
			}
		}
		return nil
	},
}
