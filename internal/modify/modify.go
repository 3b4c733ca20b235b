// Package modify applies parsed commands to Xcode projects.
package modify

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/moasq/xcodeproj-modify/internal/arguments"
	"github.com/moasq/xcodeproj-modify/internal/logger"
	"github.com/moasq/xcodeproj-modify/internal/pbxproj"
	"github.com/moasq/xcodeproj-modify/internal/terminal"
)

// UnknownTargetError is returned when no target has the requested name.
type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("couldn't find target named %s", e.Name)
}

// InvalidPositionError is returned when an insertion index is past the end of
// a target's phase list.
type InvalidPositionError struct {
	Position int
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("unable to place build script at position %d", e.Position)
}

// Reporter receives human-readable progress.
type Reporter interface {
	Info(msg string)
	Warning(msg string)
	Success(msg string)
}

// Modifier runs commands against project files.
type Modifier struct {
	reporter Reporter
	logger   *slog.Logger
	output   pbxproj.OutputSettings
}

// Options holds optional configuration for a Modifier.
type Options struct {
	Reporter Reporter                // defaults to the terminal
	Logger   *slog.Logger            // defaults to logger.L()
	Output   *pbxproj.OutputSettings // defaults to pbxproj.DefaultOutputSettings()
}

// New creates a Modifier.
func New(opts ...Options) *Modifier {
	m := &Modifier{
		reporter: terminal.Console{},
		logger:   logger.L(),
		output:   pbxproj.DefaultOutputSettings(),
	}
	if len(opts) > 0 {
		o := opts[0]
		if o.Reporter != nil {
			m.reporter = o.Reporter
		}
		if o.Logger != nil {
			m.logger = o.Logger
		}
		if o.Output != nil {
			m.output = *o.Output
		}
	}
	return m
}

// Run applies each command in order. The first failure stops the run;
// projects already written by earlier commands are left as written.
func (m *Modifier) Run(ctx context.Context, args *arguments.Arguments) error {
	for i, cmd := range args.Commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.logger.Debug("running command", "index", i, "command", fmt.Sprintf("%T", cmd), "project", args.ProjectPath)
		if err := m.runCommand(args.ProjectPath, cmd); err != nil {
			m.logger.Error("command failed", "index", i, "error", err)
			return err
		}
	}
	return nil
}

func (m *Modifier) runCommand(projectPath string, cmd arguments.Command) error {
	switch c := cmd.(type) {
	case arguments.AddRunScriptPhase:
		return m.AddRunScriptPhase(projectPath, c)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

// AddRunScriptPhase inserts one shared run-script phase into every target
// named c.Target, replacing any run-script phase with the same name, and
// writes the project back. Nothing is written if any target fails.
func (m *Modifier) AddRunScriptPhase(projectPath string, c arguments.AddRunScriptPhase) error {
	project, err := pbxproj.Open(projectPath)
	if err != nil {
		return err
	}

	targets := project.Targets(c.Target)
	if len(targets) == 0 {
		return &UnknownTargetError{Name: c.Target}
	}

	phase := pbxproj.NewShellScriptBuildPhase(c.Name, c.Contents)
	var replaced []string
	var added, warnings []string
	for _, target := range targets {
		kept, removed := withoutScriptPhase(target.BuildPhases(), phase.Name)
		phases, err := insertPhase(kept, phase, c.Position)
		if err != nil {
			return err
		}
		target.SetBuildPhases(phases)
		replaced = append(replaced, removed...)

		m.logger.Info("added build phase", "target", target.ID, "name", c.Name, "replaced", len(removed))
		added = append(added, fmt.Sprintf("Added build phase %q to target %s", c.Name, target.Name))
		if len(removed) > 0 {
			warnings = append(warnings, fmt.Sprintf("Replaced existing run script phase %q in target %s", c.Name, target.Name))
		}
	}

	if err := project.Add(phase); err != nil {
		return err
	}
	for _, id := range replaced {
		if !project.Referenced(id) {
			m.logger.Debug("pruned build phase", "id", id)
			project.Remove(id)
		}
	}

	if err := project.Write(projectPath, true, m.output); err != nil {
		return err
	}
	m.logger.Info("wrote project", "path", project.Path())

	// Progress is only reported once the change is on disk.
	for _, msg := range warnings {
		m.reporter.Warning(msg)
	}
	for _, msg := range added {
		m.reporter.Info(msg)
	}
	m.reporter.Success("Successfully wrote " + project.Path())
	return nil
}

// withoutScriptPhase drops run-script phases called name, keeping everything
// else in order, and returns the IDs it dropped.
func withoutScriptPhase(phases []*pbxproj.BuildPhase, name string) ([]*pbxproj.BuildPhase, []string) {
	kept := make([]*pbxproj.BuildPhase, 0, len(phases)+1)
	var removed []string
	for _, p := range phases {
		if p.IsShellScriptNamed(name) {
			removed = append(removed, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	return kept, removed
}

// insertPhase appends when position is negative and otherwise inserts at
// position, which may equal len(phases) but not exceed it.
func insertPhase(phases []*pbxproj.BuildPhase, phase *pbxproj.BuildPhase, position int) ([]*pbxproj.BuildPhase, error) {
	if position < 0 {
		return append(phases, phase), nil
	}
	if position > len(phases) {
		return nil, &InvalidPositionError{Position: position}
	}
	return slices.Insert(phases, position, phase), nil
}
