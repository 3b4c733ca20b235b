package pbxproj

// TargetKind is the isa of a target object.
type TargetKind string

const (
	NativeTarget    TargetKind = "PBXNativeTarget"
	AggregateTarget TargetKind = "PBXAggregateTarget"
	LegacyTarget    TargetKind = "PBXLegacyTarget"
)

func (k TargetKind) valid() bool {
	switch k {
	case NativeTarget, AggregateTarget, LegacyTarget:
		return true
	}
	return false
}

// Target is a view over a target object in the project's object table.
type Target struct {
	ID   string
	Name string
	Kind TargetKind

	project *Project
	fields  map[string]any
}

// BuildPhases resolves the target's build phase references in order.
// A reference with no backing object is returned with an empty Kind so the
// list can be written back without losing it.
func (t *Target) BuildPhases() []*BuildPhase {
	ids := stringList(t.fields["buildPhases"])
	phases := make([]*BuildPhase, 0, len(ids))
	for _, id := range ids {
		obj, ok := t.project.object(id)
		if !ok {
			phases = append(phases, &BuildPhase{ID: id})
			continue
		}
		phases = append(phases, phaseFromObject(t.project, id, obj))
	}
	return phases
}

// SetBuildPhases replaces the target's build phase references.
// Phases not yet in the object table must be registered with Project.Add
// before the project is written.
func (t *Target) SetBuildPhases(phases []*BuildPhase) {
	ids := make([]any, len(phases))
	for i, phase := range phases {
		ids[i] = phase.ID
	}
	t.fields["buildPhases"] = ids
}
