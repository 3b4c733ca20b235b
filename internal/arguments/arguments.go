// Package arguments parses the xcodeproj-modify command grammar:
//
//	<program> <path-to-project> add-run-script-phase <target> <position> <name> <contents>
package arguments

import (
	"errors"
	"fmt"
	"strconv"
)

// CommandAddRunScriptPhase is the command name for AddRunScriptPhase.
const CommandAddRunScriptPhase = "add-run-script-phase"

var (
	ErrMissingProjectPath = errors.New("please give path to xcodeproj as first argument")
	ErrMissingCommand     = errors.New("please give a command (add-run-script-phase)")
	ErrMissingTarget      = errors.New("please specify a target as the first argument after add-run-script-phase")
	ErrMissingPosition    = errors.New("please specify the position the build script shall be injected at")
	ErrMissingName        = errors.New("please specify a build phase name")
	ErrMissingContents    = errors.New("please specify shell script contents as the last argument after add-run-script-phase")
)

// UnknownCommandError is returned for an unrecognized command name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// Command is one mutation to apply to a project.
type Command interface {
	command()
}

// AddRunScriptPhase inserts a run-script phase called Name into every target
// called Target. A negative Position appends.
type AddRunScriptPhase struct {
	Target   string
	Position int
	Name     string
	Contents string
}

func (AddRunScriptPhase) command() {}

// Validate checks the fields the grammar requires to be non-empty.
func (c AddRunScriptPhase) Validate() error {
	if c.Target == "" {
		return ErrMissingTarget
	}
	if c.Name == "" {
		return ErrMissingName
	}
	return nil
}

// Arguments is the parsed invocation.
type Arguments struct {
	ProjectPath string
	Commands    []Command
}

type tokens struct {
	items []string
}

func (t *tokens) next() (string, bool) {
	if len(t.items) == 0 {
		return "", false
	}
	tok := t.items[0]
	t.items = t.items[1:]
	return tok, true
}

// Parse builds Arguments from a full argv. argv[0] is the program name and is
// ignored, as are tokens after the command's last argument.
func Parse(argv []string) (*Arguments, error) {
	toks := &tokens{}
	if len(argv) > 1 {
		toks.items = argv[1:]
	}

	path, ok := toks.next()
	if !ok {
		return nil, ErrMissingProjectPath
	}
	name, ok := toks.next()
	if !ok {
		return nil, ErrMissingCommand
	}

	cmd, err := parseCommand(name, toks)
	if err != nil {
		return nil, err
	}
	return &Arguments{ProjectPath: path, Commands: []Command{cmd}}, nil
}

func parseCommand(name string, toks *tokens) (Command, error) {
	switch name {
	case CommandAddRunScriptPhase:
		target, ok := toks.next()
		if !ok {
			return nil, ErrMissingTarget
		}
		raw, ok := toks.next()
		if !ok {
			raw = "-1"
		}
		position, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrMissingPosition
		}
		phase, ok := toks.next()
		if !ok {
			return nil, ErrMissingName
		}
		contents, ok := toks.next()
		if !ok {
			return nil, ErrMissingContents
		}
		return AddRunScriptPhase{
			Target:   target,
			Position: position,
			Name:     phase,
			Contents: contents,
		}, nil
	default:
		return nil, &UnknownCommandError{Name: name}
	}
}
