package commands

import (
	"github.com/moasq/xcodeproj-modify/internal/modifyserver"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run the MCP server (used by coding agents)",
	Long:   "Starts the xcodeproj-modify MCP server over stdio, exposing add_run_script_phase and list_build_phases as tools.",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return modifyserver.Run(cmd.Context(), Version)
	},
}
