package textbuf

import (
	"errors"
	"fmt"
)

// Sentinel errors for operation results (spec.md 7: IO errors are
// surfaced as results, never fatal).
var (
	ErrOffsetOutOfRange = errors.New("textbuf: offset out of range")
	ErrNothingToUndo    = errors.New("textbuf: nothing to undo")
	ErrNothingToRedo    = errors.New("textbuf: nothing to redo")
)

// panicOnProgrammerError reports a contract violation (spec.md 7:
// "Programmer errors ... in debug builds they abort with a
// diagnostic"). Go has no separate debug/release build mode, so this
// core always panics; callers that cannot guarantee the precondition
// must check it themselves before calling.
func panicOnProgrammerError(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
