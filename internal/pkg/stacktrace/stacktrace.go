package stacktrace

import (
	"runtime"
	"strconv"
	"strings"
)

const maxFrames = 32

// Internal returns "internal/<pkg>/<file>.go:<line>" entries for the calling
// goroutine's stack, skipping the given number of frames above the caller.
// Frames outside the module's internal tree (runtime, net/http, libraries)
// are omitted.
func Internal(skip int) []string {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	paths := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if idx := strings.Index(frame.File, "/internal/"); idx != -1 {
			paths = append(paths, frame.File[idx+1:]+":"+strconv.Itoa(frame.Line))
		}
		if !more {
			break
		}
	}

	return paths
}
