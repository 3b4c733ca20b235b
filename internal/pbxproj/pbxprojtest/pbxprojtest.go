// Package pbxprojtest provides a sample Xcode project for tests.
//
// The sample has four targets: App (Sources, Frameworks, Resources,
// "Embed Frameworks" copy-files, "SwiftLint" run script), AppTests (Sources,
// Frameworks), and two targets both named Scripts (an aggregate target with
// one unnamed run script and a legacy target with no phases).
package pbxprojtest

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"
)

//go:embed sample.pbxproj
var sample []byte

// IDs of objects in the sample project.
const (
	AppTarget        = "0A0000000000000000000100"
	AppSources       = "0A0000000000000000000101"
	AppFrameworks    = "0A0000000000000000000102"
	AppResources     = "0A0000000000000000000103"
	AppEmbed         = "0A0000000000000000000104"
	AppSwiftLint     = "0A0000000000000000000105"
	TestsTarget      = "0A0000000000000000000200"
	TestsSources     = "0A0000000000000000000201"
	TestsFrameworks  = "0A0000000000000000000202"
	ScriptsAggregate = "0A0000000000000000000300"
	ScriptsScript    = "0A0000000000000000000301"
	ScriptsLegacy    = "0A0000000000000000000400"
)

// Sample returns the raw sample project file.
func Sample() []byte {
	out := make([]byte, len(sample))
	copy(out, sample)
	return out
}

// NewProject writes the sample to <tmp>/Sample.xcodeproj/project.pbxproj and
// returns the bundle path.
func NewProject(t testing.TB) string {
	t.Helper()
	bundle := filepath.Join(t.TempDir(), "Sample.xcodeproj")
	if err := os.MkdirAll(bundle, 0o755); err != nil {
		t.Fatalf("failed to create bundle: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bundle, "project.pbxproj"), sample, 0o644); err != nil {
		t.Fatalf("failed to write sample project: %v", err)
	}
	return bundle
}

// ReadProject returns the current project.pbxproj bytes of a bundle.
func ReadProject(t testing.TB, bundle string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(bundle, "project.pbxproj"))
	if err != nil {
		t.Fatalf("failed to read project: %v", err)
	}
	return data
}
