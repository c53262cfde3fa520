package domain

// BuildState is the lifecycle state of a modification target, derived
// from the file's current content rather than stored, so an interrupted
// run can always re-derive where it left off.
type BuildState string

const (
	// StateClean indicates the file matches its pristine form, either
	// because no clone exists yet or because the content equals the clone.
	StateClean BuildState = "clean"
	// StateDirty indicates the file matches neither the pristine form nor
	// the recorded result of the modification.
	StateDirty BuildState = "dirty"
	// StateBuilt indicates the file matches the recorded result of the
	// modification.
	StateBuilt BuildState = "built"
)
