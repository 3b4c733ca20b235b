package modifyserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run starts the xcodeproj-modify MCP server over stdio.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string) error {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "xcodeproj-modify",
			Version: version,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_run_script_phase",
		Description: "Add a Run Script build phase to every target with the given name in an .xcodeproj. An existing run script phase with the same name is replaced. Position is a zero-based index into the target's build phases; omit it or pass -1 to append. Example: add_run_script_phase(project: \"App.xcodeproj\", target: \"App\", name: \"SwiftLint\", contents: \"swiftlint lint\")",
	}, handleAddRunScriptPhase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_build_phases",
		Description: "List the targets of an .xcodeproj and their build phases in order, including run script bodies. Read-only.",
	}, handleListBuildPhases)

	return server.Run(ctx, &mcp.StdioTransport{})
}
