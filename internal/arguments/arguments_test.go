package arguments

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseErrors(t *testing.T) {
	const cmd = CommandAddRunScriptPhase
	tests := []struct {
		name string
		argv []string
		want error
	}{
		{"empty argv", nil, ErrMissingProjectPath},
		{"program only", []string{"prog"}, ErrMissingProjectPath},
		{"no command", []string{"prog", "/p/App.xcodeproj"}, ErrMissingCommand},
		{"no target", []string{"prog", "/p/App.xcodeproj", cmd}, ErrMissingTarget},
		{"non-numeric position", []string{"prog", "/p/App.xcodeproj", cmd, "App", "first", "Lint", "swiftlint"}, ErrMissingPosition},
		{"empty position", []string{"prog", "/p/App.xcodeproj", cmd, "App", "", "Lint", "swiftlint"}, ErrMissingPosition},
		{"no position or name", []string{"prog", "/p/App.xcodeproj", cmd, "App"}, ErrMissingName},
		{"no name", []string{"prog", "/p/App.xcodeproj", cmd, "App", "0"}, ErrMissingName},
		{"no contents", []string{"prog", "/p/App.xcodeproj", cmd, "App", "0", "Lint"}, ErrMissingContents},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.argv, err, tt.want)
			}
			if got != nil {
				t.Fatalf("Parse(%q) returned arguments alongside error: %+v", tt.argv, got)
			}
		})
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse([]string{"prog", "/p/App.xcodeproj", "remove-phase", "App"})
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCommandError, got %v", err)
	}
	if unknown.Name != "remove-phase" {
		t.Errorf("Name = %q, want remove-phase", unknown.Name)
	}
	if got, want := err.Error(), "unknown command: remove-phase"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseAddRunScriptPhase(t *testing.T) {
	got, err := Parse([]string{"prog", "/p/proj.xcodeproj", "add-run-script-phase", "MyTarget", "-1", "PhaseA", "echo hi"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := &Arguments{
		ProjectPath: "/p/proj.xcodeproj",
		Commands: []Command{
			AddRunScriptPhase{Target: "MyTarget", Position: -1, Name: "PhaseA", Contents: "echo hi"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKeepsTokensVerbatim(t *testing.T) {
	got, err := Parse([]string{"prog", "p", "add-run-script-phase", "App", "3", "Lint", "--strict \"$SRCROOT\"", "extra", "ignored"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []Command{AddRunScriptPhase{Target: "App", Position: 3, Name: "Lint", Contents: "--strict \"$SRCROOT\""}}
	if diff := cmp.Diff(want, got.Commands); diff != "" {
		t.Fatalf("Commands mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBatch(t *testing.T) {
	data := []byte(`commands:
  - command: add-run-script-phase
    target: App
    name: SwiftLint
    contents: |
      swiftlint lint
  - command: add-run-script-phase
    target: AppTests
    position: 0
    name: Prepare
    contents: ""
`)
	got, err := ParseBatch("/p/App.xcodeproj", data)
	if err != nil {
		t.Fatalf("ParseBatch() error: %v", err)
	}
	want := &Arguments{
		ProjectPath: "/p/App.xcodeproj",
		Commands: []Command{
			AddRunScriptPhase{Target: "App", Position: -1, Name: "SwiftLint", Contents: "swiftlint lint\n"},
			AddRunScriptPhase{Target: "AppTests", Position: 0, Name: "Prepare", Contents: ""},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseBatch() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBatchErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want error
	}{
		{"no project", "", "commands: []", ErrMissingProjectPath},
		{"no commands", "p", "commands: []", ErrMissingCommand},
		{"empty command", "p", "commands:\n  - target: App\n", ErrMissingCommand},
		{"no target", "p", "commands:\n  - command: add-run-script-phase\n    name: A\n    contents: x\n", ErrMissingTarget},
		{"no name", "p", "commands:\n  - command: add-run-script-phase\n    target: App\n    contents: x\n", ErrMissingName},
		{"no contents", "p", "commands:\n  - command: add-run-script-phase\n    target: App\n    name: A\n", ErrMissingContents},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBatch(tt.path, []byte(tt.data)); !errors.Is(err, tt.want) {
				t.Fatalf("ParseBatch() error = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := ParseBatch("p", []byte("commands:\n  - command: delete-target\n"))
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) || unknown.Name != "delete-target" {
		t.Fatalf("expected UnknownCommandError for delete-target, got %v", err)
	}
}

func TestLoadBatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "phases.yml")
	data := "commands:\n  - command: add-run-script-phase\n    target: App\n    position: 2\n    name: Gen\n    contents: make\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadBatch("App.xcodeproj", file)
	if err != nil {
		t.Fatalf("LoadBatch() error: %v", err)
	}
	want := []Command{AddRunScriptPhase{Target: "App", Position: 2, Name: "Gen", Contents: "make"}}
	if diff := cmp.Diff(want, got.Commands); diff != "" {
		t.Fatalf("Commands mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadBatch("App.xcodeproj", filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
