// Package pbxproj reads and writes Xcode project files (project.pbxproj).
//
// The file is an OpenStep property list holding a flat object table keyed by
// 24-digit hex IDs. Project keeps that table as decoded maps and exposes typed
// views (Target, BuildPhase) that read and write through to it, so objects the
// package does not model survive a load/write cycle untouched.
package pbxproj

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"howett.net/plist"
)

const (
	projectFileName = "project.pbxproj"
	fileHeader      = "// !$*UTF8*$!\n"
)

var (
	// ErrMalformedProject is returned when a project file cannot be decoded
	// or lacks the object table.
	ErrMalformedProject = errors.New("malformed project file")

	// ErrProjectExists is returned by Write when override is false and the
	// destination already exists.
	ErrProjectExists = errors.New("project file already exists")

	// ErrDuplicateObject is returned by Add when the ID is already taken by
	// another object.
	ErrDuplicateObject = errors.New("object ID already registered")
)

// Project is an in-memory project file.
type Project struct {
	path    string
	root    map[string]any
	objects map[string]any
}

// OutputSettings controls how Write serializes the project.
// Dictionary keys are always written sorted.
type OutputSettings struct {
	Indent string
}

// DefaultOutputSettings returns tab-indented output.
func DefaultOutputSettings() OutputSettings {
	return OutputSettings{Indent: "\t"}
}

// ProjectFile maps a .xcodeproj bundle path to its project.pbxproj file.
// Paths that already name a .pbxproj file are returned as is.
func ProjectFile(path string) string {
	if filepath.Ext(path) == ".pbxproj" {
		return path
	}
	return filepath.Join(path, projectFileName)
}

// Open loads the project at path (bundle directory or project.pbxproj file).
func Open(path string) (*Project, error) {
	file := ProjectFile(path)
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}

	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", file, err)
	}
	p.path = file
	return p, nil
}

// Decode parses project file contents.
func Decode(data []byte) (*Project, error) {
	var decoded any
	if _, err := plist.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProject, err)
	}

	root, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not a dictionary", ErrMalformedProject)
	}
	objects, ok := root["objects"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing objects table", ErrMalformedProject)
	}
	rootID, _ := root["rootObject"].(string)
	rootObj, ok := objects[rootID].(map[string]any)
	if !ok || rootObj["isa"] != "PBXProject" {
		return nil, fmt.Errorf("%w: rootObject %q is not a PBXProject", ErrMalformedProject, rootID)
	}

	return &Project{root: root, objects: objects}, nil
}

// Path returns the project.pbxproj file the project was opened from.
func (p *Project) Path() string {
	return p.path
}

// HasObject reports whether id is registered in the object table.
func (p *Project) HasObject(id string) bool {
	_, ok := p.objects[id]
	return ok
}

func (p *Project) object(id string) (map[string]any, bool) {
	obj, ok := p.objects[id].(map[string]any)
	return obj, ok
}

// Targets returns every target whose name equals name exactly.
func (p *Project) Targets(name string) []*Target {
	var matched []*Target
	for _, t := range p.AllTargets() {
		if t.Name == name {
			matched = append(matched, t)
		}
	}
	return matched
}

// AllTargets returns the project's targets in the order the project lists
// them, followed by any unlisted target objects in ID order.
func (p *Project) AllTargets() []*Target {
	seen := make(map[string]bool)
	var targets []*Target

	rootID, _ := p.root["rootObject"].(string)
	if rootObj, ok := p.object(rootID); ok {
		for _, id := range stringList(rootObj["targets"]) {
			if t := p.target(id); t != nil && !seen[id] {
				seen[id] = true
				targets = append(targets, t)
			}
		}
	}

	var rest []string
	for id := range p.objects {
		if !seen[id] && p.target(id) != nil {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		targets = append(targets, p.target(id))
	}
	return targets
}

func (p *Project) target(id string) *Target {
	obj, ok := p.object(id)
	if !ok {
		return nil
	}
	kind := TargetKind(stringValue(obj["isa"]))
	if !kind.valid() {
		return nil
	}
	return &Target{
		ID:      id,
		Name:    stringValue(obj["name"]),
		Kind:    kind,
		project: p,
		fields:  obj,
	}
}

// Add registers phase in the object table. Adding a phase that is already
// registered with this project is a no-op.
func (p *Project) Add(phase *BuildPhase) error {
	if _, exists := p.objects[phase.ID]; exists {
		if phase.project == p {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateObject, phase.ID)
	}
	p.objects[phase.ID] = phase.fields
	phase.project = p
	return nil
}

// Remove deletes id from the object table.
func (p *Project) Remove(id string) {
	delete(p.objects, id)
}

// Referenced reports whether any target lists id among its build phases.
func (p *Project) Referenced(id string) bool {
	for _, t := range p.AllTargets() {
		for _, ref := range stringList(t.fields["buildPhases"]) {
			if ref == id {
				return true
			}
		}
	}
	return false
}

// Encode serializes the project with sorted keys. Text is written as raw
// UTF-8 to match the file header.
func (p *Project) Encode(settings OutputSettings) ([]byte, error) {
	body, err := encodeValue(p.root, settings.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project: %w", err)
	}

	var b bytes.Buffer
	b.WriteString(fileHeader)
	b.Write(body)
	if !bytes.HasSuffix(body, []byte("\n")) {
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

// Write serializes the project to path (bundle directory or project.pbxproj
// file). The data goes to a temporary file that is renamed over the
// destination, so a failed write leaves any existing file untouched. A
// symlinked project file is replaced at its target.
func (p *Project) Write(path string, override bool, settings OutputSettings) error {
	file := ProjectFile(path)
	if resolved, err := filepath.EvalSymlinks(file); err == nil {
		file = resolved
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(file); err == nil {
		if !override {
			return fmt.Errorf("%w: %s", ErrProjectExists, file)
		}
		mode = info.Mode().Perm()
	}

	data, err := p.Encode(settings)
	if err != nil {
		return err
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".project.pbxproj-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		return fmt.Errorf("failed to replace project: %w", err)
	}
	return nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
