package release

import (
	"context"
	"fmt"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/remote"
)

// Operation names a Manager operation that hooks can attach to.
type Operation string

// Operations that fire hooks.
const (
	OpCreate        Operation = "create"
	OpLink          Operation = "link"
	OpActivate      Operation = "activate"
	OpClean         Operation = "clean"
	OpUpdateVersion Operation = "update_version"
	OpRollback      Operation = "rollback"
	OpDeploy        Operation = "deploy"
)

// Operations lists every hookable operation.
var Operations = []Operation{OpCreate, OpLink, OpActivate, OpClean, OpUpdateVersion, OpRollback, OpDeploy}

// Phase says whether a hook runs before or after its operation.
type Phase string

// Hook phases.
const (
	PhaseBefore Phase = "before"
	PhaseAfter  Phase = "after"
)

// ParseOperation returns the Operation named s.
func ParseOperation(s string) (Operation, bool) {
	for _, op := range Operations {
		if string(op) == s {
			return op, true
		}
	}
	return "", false
}

// ParsePhase returns the Phase named s.
func ParsePhase(s string) (Phase, bool) {
	switch Phase(s) {
	case PhaseBefore, PhaseAfter:
		return Phase(s), true
	}
	return "", false
}

// Event describes the operation a hook is fired for.
type Event struct {
	Operation Operation
	Phase     Phase
	Release   string
	Tag       string
}

// HookFunc is called around an operation. An error from a before hook aborts the operation.
type HookFunc func(ctx context.Context, ev Event) error

type hookKey struct {
	op    Operation
	phase Phase
}

// Hooks is a registry of HookFuncs keyed by operation and phase.
// The zero value is not usable; call NewHooks.
type Hooks struct {
	funcs map[hookKey][]HookFunc
}

// NewHooks returns an empty registry.
func NewHooks() *Hooks {
	return &Hooks{funcs: make(map[hookKey][]HookFunc)}
}

// On registers fn for op in phase. Hooks run in registration order.
func (h *Hooks) On(op Operation, phase Phase, fn HookFunc) {
	key := hookKey{op: op, phase: phase}
	h.funcs[key] = append(h.funcs[key], fn)
}

// fire runs the hooks registered for ev and stops at the first error.
func (h *Hooks) fire(ctx context.Context, ev Event) error {
	if h == nil {
		return nil
	}
	for _, fn := range h.funcs[hookKey{op: ev.Operation, phase: ev.Phase}] {
		if err := fn(ctx, ev); err != nil {
			return fmt.Errorf(messages.ReleaseHookFailedFmt, ev.Phase, ev.Operation, err)
		}
	}
	return nil
}

// CommandHook returns a HookFunc that runs command through ex from dir.
// The command sees ROLLOUT_OPERATION, ROLLOUT_PHASE, ROLLOUT_RELEASE and ROLLOUT_TAG.
func CommandHook(ex remote.Executor, dir string, command string) HookFunc {
	return func(ctx context.Context, ev Event) error {
		line := fmt.Sprintf("ROLLOUT_OPERATION=%s ROLLOUT_PHASE=%s ROLLOUT_RELEASE=%s ROLLOUT_TAG=%s sh -c %s",
			remote.Quote(string(ev.Operation)),
			remote.Quote(string(ev.Phase)),
			remote.Quote(ev.Release),
			remote.Quote(ev.Tag),
			remote.Quote(command))
		_, err := ex.Run(ctx, dir, line)
		return err
	}
}
