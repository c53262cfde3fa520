package rules

import (
	"context"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
)

var _ domain.Rule = (*ModifyRule)(nil)

// FileModifier applies an in-place transformation to the file at path.
type FileModifier func(ctx context.Context, path string) error

// ModifyRule applies a keyed in-place modification to an existing file.
// Unlike creation rules it cannot rely on timestamps: the state of the
// target is derived from file content on every decision, so an interrupted
// or externally disturbed run always re-derives where it left off.
type ModifyRule struct {
	node     domain.ModificationNode
	deps     []domain.Node
	modifier FileModifier
	hasher   ports.Hasher
	store    ports.StateStore
}

// NewModifyRule creates a rule applying modifier to the node's file.
func NewModifyRule(
	node domain.ModificationNode,
	deps []domain.Node,
	modifier FileModifier,
	hasher ports.Hasher,
	store ports.StateStore,
) *ModifyRule {
	return &ModifyRule{
		node:     node,
		deps:     deps,
		modifier: modifier,
		hasher:   hasher,
		store:    store,
	}
}

// Target returns the modification node the rule produces.
func (r *ModifyRule) Target() domain.DynamicNode { return r.node }

// DependsOn returns the nodes the modification depends on.
func (r *ModifyRule) DependsOn() []domain.Node { return r.deps }

// BuildState derives the current state of the modification from the file's
// content. The recorded hash matching the current content means BUILT; a
// file equal to its pristine clone, or one that was never cloned, is CLEAN;
// anything else is DIRTY.
func (r *ModifyRule) BuildState() (domain.BuildState, error) {
	if recorded, ok := r.store.BuiltHash(r.node.ID()); ok {
		current, err := r.hasher.HashFile(r.node.Path())
		if err != nil {
			return "", err
		}
		if current == recorded {
			return domain.StateBuilt, nil
		}
	}

	clone, ok := r.node.CloneLocation()
	if !ok {
		return domain.StateClean, nil
	}
	equal, err := r.hasher.FilesEqual(r.node.Path(), clone)
	if err != nil {
		return "", err
	}
	if equal {
		return domain.StateClean, nil
	}
	return domain.StateDirty, nil
}

// UpToDate reports whether the modification is already applied.
func (r *ModifyRule) UpToDate() (bool, error) {
	state, err := r.BuildState()
	if err != nil {
		return false, err
	}
	return state == domain.StateBuilt, nil
}

// Execute brings the modification to the BUILT state. A BUILT target is
// left untouched. A DIRTY target is restored to its pristine content first.
// From the clean state the pristine clone is registered if missing, the
// modifier runs, and the resulting content hash is recorded.
func (r *ModifyRule) Execute(ctx context.Context) error {
	state, err := r.BuildState()
	if err != nil {
		return err
	}

	switch state {
	case domain.StateBuilt:
		return nil
	case domain.StateDirty:
		if err := r.node.Clean(); err != nil {
			return err
		}
	case domain.StateClean:
	}

	if _, ok := r.node.CloneLocation(); !ok {
		if err := r.node.CreateClone(); err != nil {
			return err
		}
	}

	if err := r.modifier(ctx, r.node.Path()); err != nil {
		return err
	}

	hash, err := r.hasher.HashFile(r.node.Path())
	if err != nil {
		return err
	}
	return r.store.PutBuiltHash(r.node.ID(), hash)
}

// NewShellFileModifyRule creates a ModifyRule whose modifier runs a shell
// command. The command's exit status is intentionally ignored: whether the
// modification took effect is decided by the content hash alone.
func NewShellFileModifyRule(
	node domain.ModificationNode,
	deps []domain.Node,
	command string,
	executor ports.Executor,
	hasher ports.Hasher,
	store ports.StateStore,
	logger ports.Logger,
) *ModifyRule {
	modifier := func(ctx context.Context, path string) error {
		logger.Info(command)
		if err := executor.Execute(ctx, command, nil); err != nil {
			logger.Debug("modifier command exited non-zero: " + err.Error())
		}
		return nil
	}
	return NewModifyRule(node, deps, modifier, hasher, store)
}
