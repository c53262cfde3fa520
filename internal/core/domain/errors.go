package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateRuleTarget is returned when two rules name the same target node.
	ErrDuplicateRuleTarget = zerr.New("duplicate rule target")

	// ErrStaticNodeMissing is returned when a static node cannot be found at graph construction time.
	ErrStaticNodeMissing = zerr.New("static node missing")

	// ErrNoRuleForTarget is returned when a dynamic node has no rule producing it.
	ErrNoRuleForTarget = zerr.New("no rule for target")

	// ErrCycleDetected is returned when a cycle is detected in the dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested node is not part of the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrCloneExists is returned when a pristine clone is already registered for a file.
	ErrCloneExists = zerr.New("clone already registered")

	// ErrCommandFailed is returned when a rule's shell command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildExecutionFailed is returned when executing the build graph fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
