package apperror

import (
	"fmt"
	"runtime"
	"strings"
)

// maxStackDepth bounds the number of frames captured per node; chains
// aggregate one snapshot per node, so deep captures add up fast.
const maxStackDepth = 16

// captureStack renders the call stack above the caller as tab-indented
// "at func (file:line)" lines. skip is the number of frames to drop above
// captureStack itself (0 reports the immediate caller first). Returns ""
// when no frames are available.
func captureStack(skip int) string {
	pcs := make([]uintptr, maxStackDepth)

	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()

		// Frames below the program entry point are noise.
		if strings.HasPrefix(frame.Function, "runtime.") {
			break
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "\tat %s (%s:%d)", frame.Function, frame.File, frame.Line)

		if !more {
			break
		}
	}

	return b.String()
}
