package log

import (
	"fmt"
	"runtime"
	"strings"
)

const maxStackDepth = 32

// callerStack returns the call stack above the logging method, skipping runtime frames
func callerStack(skip int) []string {
	var pcs [maxStackDepth]uintptr
	// skip runtime.Callers and callerStack itself
	n := runtime.Callers(skip+2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	result := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}
	return result
}
