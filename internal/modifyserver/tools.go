package modifyserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/moasq/xcodeproj-modify/internal/arguments"
	"github.com/moasq/xcodeproj-modify/internal/modify"
)

type textOutput struct {
	Message string `json:"message"`
}

// messageLog collects executor progress for the tool result; stdout belongs
// to the MCP transport.
type messageLog struct {
	lines []string
}

func (l *messageLog) Info(msg string)    { l.lines = append(l.lines, msg) }
func (l *messageLog) Warning(msg string) { l.lines = append(l.lines, "warning: "+msg) }
func (l *messageLog) Success(msg string) { l.lines = append(l.lines, msg) }

func (l *messageLog) String() string {
	return strings.Join(l.lines, "\n")
}

// addRunScriptPhaseInput is the input for the add_run_script_phase tool.
type addRunScriptPhaseInput struct {
	Project  string `json:"project" jsonschema:"Path to the .xcodeproj bundle, absolute or relative to the working directory"`
	Target   string `json:"target" jsonschema:"Exact, case-sensitive target name"`
	Position *int   `json:"position,omitempty" jsonschema:"Zero-based index in the target's build phases; -1 or omitted appends"`
	Name     string `json:"name" jsonschema:"Build phase name, also used to replace an existing phase of the same name"`
	Contents string `json:"contents" jsonschema:"Shell script body"`
}

func handleAddRunScriptPhase(ctx context.Context, req *mcp.CallToolRequest, input addRunScriptPhaseInput) (*mcp.CallToolResult, textOutput, error) {
	projectPath, err := resolveProject(input.Project)
	if err != nil {
		return nil, textOutput{}, err
	}

	cmd := arguments.AddRunScriptPhase{
		Target:   input.Target,
		Position: -1,
		Name:     input.Name,
		Contents: input.Contents,
	}
	if input.Position != nil {
		cmd.Position = *input.Position
	}
	if err := cmd.Validate(); err != nil {
		return nil, textOutput{}, err
	}

	var log messageLog
	m := modify.New(modify.Options{Reporter: &log})
	args := &arguments.Arguments{ProjectPath: projectPath, Commands: []arguments.Command{cmd}}
	if err := m.Run(ctx, args); err != nil {
		return nil, textOutput{}, err
	}

	return nil, textOutput{Message: log.String()}, nil
}

// listBuildPhasesInput is the input for the list_build_phases tool.
type listBuildPhasesInput struct {
	Project string `json:"project" jsonschema:"Path to the .xcodeproj bundle, absolute or relative to the working directory"`
	Target  string `json:"target,omitempty" jsonschema:"Only list targets with this exact name"`
}

func handleListBuildPhases(ctx context.Context, req *mcp.CallToolRequest, input listBuildPhasesInput) (*mcp.CallToolResult, textOutput, error) {
	projectPath, err := resolveProject(input.Project)
	if err != nil {
		return nil, textOutput{}, err
	}

	targets, err := modify.ListBuildPhases(projectPath, input.Target)
	if err != nil {
		return nil, textOutput{}, err
	}

	var summary strings.Builder
	for _, t := range targets {
		fmt.Fprintf(&summary, "%s (%s)\n", t.Name, t.Kind)
		if len(t.Phases) == 0 {
			summary.WriteString("  (no build phases)\n")
		}
		for i, p := range t.Phases {
			fmt.Fprintf(&summary, "  %d. %s [%s]\n", i, p.Name, p.Kind)
			if p.Script != "" {
				for _, line := range strings.Split(strings.TrimRight(p.Script, "\n"), "\n") {
					fmt.Fprintf(&summary, "       | %s\n", line)
				}
			}
		}
	}

	return nil, textOutput{Message: summary.String()}, nil
}

func resolveProject(project string) (string, error) {
	if project == "" {
		return "", arguments.ErrMissingProjectPath
	}
	if filepath.IsAbs(project) {
		return project, nil
	}
	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(workDir, project), nil
}
