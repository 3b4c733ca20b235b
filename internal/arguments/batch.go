package arguments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Batch is the YAML form of a command list.
type Batch struct {
	Commands []BatchEntry `yaml:"commands"`
}

// BatchEntry is one command of a batch file. Position defaults to -1.
type BatchEntry struct {
	Command  string  `yaml:"command"`
	Target   string  `yaml:"target"`
	Position *int    `yaml:"position,omitempty"`
	Name     string  `yaml:"name"`
	Contents *string `yaml:"contents,omitempty"`
}

// LoadBatch reads a YAML batch file and returns Arguments for projectPath.
func LoadBatch(projectPath, file string) (*Arguments, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatch(projectPath, data)
}

// ParseBatch decodes YAML batch contents.
func ParseBatch(projectPath string, data []byte) (*Arguments, error) {
	if projectPath == "" {
		return nil, ErrMissingProjectPath
	}

	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(batch.Commands) == 0 {
		return nil, ErrMissingCommand
	}

	args := &Arguments{ProjectPath: projectPath}
	for i, entry := range batch.Commands {
		cmd, err := entry.toCommand()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		args.Commands = append(args.Commands, cmd)
	}
	return args, nil
}

func (e BatchEntry) toCommand() (Command, error) {
	switch e.Command {
	case "":
		return nil, ErrMissingCommand
	case CommandAddRunScriptPhase:
		cmd := AddRunScriptPhase{
			Target:   e.Target,
			Position: -1,
			Name:     e.Name,
		}
		if e.Position != nil {
			cmd.Position = *e.Position
		}
		if err := cmd.Validate(); err != nil {
			return nil, err
		}
		if e.Contents == nil {
			return nil, ErrMissingContents
		}
		cmd.Contents = *e.Contents
		return cmd, nil
	default:
		return nil, &UnknownCommandError{Name: e.Command}
	}
}
