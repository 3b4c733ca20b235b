package modify

import (
	"github.com/moasq/xcodeproj-modify/internal/pbxproj"
)

// TargetSummary describes one target's build phases.
type TargetSummary struct {
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Phases []PhaseSummary `json:"phases"`
}

// PhaseSummary describes one build phase.
type PhaseSummary struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Script string `json:"script,omitempty"`
}

// ListBuildPhases summarizes the targets of a project. An empty target name
// lists every target; otherwise an unmatched name is an UnknownTargetError.
func ListBuildPhases(projectPath, target string) ([]TargetSummary, error) {
	project, err := pbxproj.Open(projectPath)
	if err != nil {
		return nil, err
	}

	targets := project.AllTargets()
	if target != "" {
		targets = project.Targets(target)
		if len(targets) == 0 {
			return nil, &UnknownTargetError{Name: target}
		}
	}

	summaries := make([]TargetSummary, 0, len(targets))
	for _, t := range targets {
		s := TargetSummary{Name: t.Name, Kind: string(t.Kind)}
		for _, p := range t.BuildPhases() {
			s.Phases = append(s.Phases, PhaseSummary{
				ID:     p.ID,
				Kind:   string(p.Kind),
				Name:   p.DisplayName(),
				Script: p.ShellScript(),
			})
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
