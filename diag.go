package outcome

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

var (
	sinkMu sync.RWMutex
	sink   = logr.Discard()
)

// SetLogger replaces the diagnostic sink that contract violations are
// reported to before panicking. The default sink discards all output.
func SetLogger(logger logr.Logger) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink = logger
}

func diagnostics() logr.Logger {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

// ContractViolationError is the panic payload raised when an Outcome is
// misused, for example by extracting from an unpopulated or already consumed
// slot. It marks a programming error; it is never used for domain failures.
type ContractViolationError struct {
	// Op names the misused operation, e.g. "Value".
	Op string
	// Reason describes the violated precondition, or carries the caller's
	// message for Expect/ExpectFailure.
	Reason string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("outcome: contract violation in %s: %s", e.Op, e.Reason)
}

func violate(op, reason string) {
	err := &ContractViolationError{Op: op, Reason: reason}
	diagnostics().Error(err, "outcome contract violation", "op", op)
	panic(err)
}
