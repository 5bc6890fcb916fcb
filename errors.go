package g3d

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors describing geometric precondition violations.
// They are wrapped by [PreconditionError] and returned by the Try* variants.
var (
	// ErrZeroVector reports a zero-length vector where a direction is required.
	ErrZeroVector = errors.New("g3d: zero-length vector")

	// ErrNotUnit reports an axis that is not unit length.
	ErrNotUnit = errors.New("g3d: axis is not unit length")

	// ErrSingular reports a matrix or transform whose linear part has a zero determinant.
	ErrSingular = errors.New("g3d: singular matrix")

	// ErrNotRigid reports a transform whose linear part is not a rotation.
	ErrNotRigid = errors.New("g3d: transform is not rigid")
)

// PreconditionError is the panic value raised when debug checks are enabled
// and an operation receives input outside its documented domain.
type PreconditionError struct {
	// Op is the operation that rejected its input, e.g. "Mat3.Inverse".
	Op string
	// Err is one of the package sentinel errors.
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

var debugChecks atomic.Bool

// SetDebugChecks enables or disables precondition checking.
//
// With checks disabled (the default) geometric preconditions are not
// verified and invalid input propagates as NaN or Inf. With checks enabled,
// the first violation is logged at error level and the operation panics
// with a *PreconditionError.
//
// Index and length violations (Col(3), Vec3FromSlice with 4 elements) panic
// regardless of this setting.
func SetDebugChecks(enabled bool) {
	debugChecks.Store(enabled)
	Logger().Debug("g3d: debug checks toggled", "enabled", enabled)
}

// DebugChecks reports whether precondition checking is enabled.
func DebugChecks() bool {
	return debugChecks.Load()
}

// violate logs and panics with a PreconditionError.
func violate(op string, err error) {
	pe := &PreconditionError{Op: op, Err: err}
	Logger().Error("g3d: precondition violated", "op", op, "err", err)
	panic(pe)
}

// check panics through violate when debug checks are on and err is non-nil.
func check(op string, err error) {
	if err != nil && debugChecks.Load() {
		violate(op, err)
	}
}
