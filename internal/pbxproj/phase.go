package pbxproj

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// PhaseKind is the isa of a build phase object.
type PhaseKind string

const (
	KindShellScript PhaseKind = "PBXShellScriptBuildPhase"
	KindSources     PhaseKind = "PBXSourcesBuildPhase"
	KindFrameworks  PhaseKind = "PBXFrameworksBuildPhase"
	KindResources   PhaseKind = "PBXResourcesBuildPhase"
	KindHeaders     PhaseKind = "PBXHeadersBuildPhase"
	KindCopyFiles   PhaseKind = "PBXCopyFilesBuildPhase"
	KindRez         PhaseKind = "PBXRezBuildPhase"
)

// defaultNames are the labels Xcode shows for unnamed phases.
var defaultNames = map[PhaseKind]string{
	KindShellScript: "ShellScript",
	KindSources:     "Sources",
	KindFrameworks:  "Frameworks",
	KindResources:   "Resources",
	KindHeaders:     "Headers",
	KindCopyFiles:   "CopyFiles",
	KindRez:         "Rez",
}

// BuildPhase is one entry of a target's build phase list.
// Kind selects which fields are meaningful; Name is empty when the object
// carries no explicit name.
type BuildPhase struct {
	ID   string
	Kind PhaseKind
	Name string

	named   bool
	project *Project
	fields  map[string]any
}

func phaseFromObject(p *Project, id string, obj map[string]any) *BuildPhase {
	_, named := obj["name"].(string)
	return &BuildPhase{
		ID:      id,
		Kind:    PhaseKind(stringValue(obj["isa"])),
		Name:    stringValue(obj["name"]),
		named:   named,
		project: p,
		fields:  obj,
	}
}

// NewShellScriptBuildPhase builds an unregistered run-script phase with a
// fresh object ID.
func NewShellScriptBuildPhase(name, script string) *BuildPhase {
	fields := map[string]any{
		"isa":                                string(KindShellScript),
		"buildActionMask":                    "2147483647",
		"files":                              []any{},
		"inputFileListPaths":                 []any{},
		"inputPaths":                         []any{},
		"name":                               name,
		"outputFileListPaths":                []any{},
		"outputPaths":                        []any{},
		"runOnlyForDeploymentPostprocessing": "0",
		"shellPath":                          "/bin/sh",
		"shellScript":                        script,
	}
	return &BuildPhase{
		ID:     NewObjectID(),
		Kind:   KindShellScript,
		Name:   name,
		named:  true,
		fields: fields,
	}
}

// NewObjectID returns a random 24-digit uppercase hex object ID.
func NewObjectID() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:12]))
}

// IsShellScriptNamed reports whether the phase is a run-script phase called
// name. A phase without a name key never matches, not even the empty name.
func (b *BuildPhase) IsShellScriptNamed(name string) bool {
	return b.Kind == KindShellScript && b.named && b.Name == name
}

// ShellScript returns the script body of a run-script phase.
func (b *BuildPhase) ShellScript() string {
	if b.Kind != KindShellScript {
		return ""
	}
	return stringValue(b.fields["shellScript"])
}

// DisplayName is the explicit name, or the label Xcode shows for the kind.
func (b *BuildPhase) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	if name, ok := defaultNames[b.Kind]; ok {
		return name
	}
	return b.ID
}
