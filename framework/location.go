package framework

import (
	"path/filepath"
	"runtime"
	"strings"
)

const testifyPackagePrefix = "github.com/stretchr/testify/"

type location struct {
	file string
	line int
}

func (l location) isZero() bool {
	return l.file == ""
}

// callerLocation returns the source location of a caller on the current stack. A skip value of
// 0 means the function that called callerLocation; 1 means its caller, and so on. Frames that
// belong to testify are skipped, so that a failure raised through an assert or require function
// is attributed to the line in the test body that called it.
func callerLocation(skip int) location {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, testifyPackagePrefix) {
			return frameLocation(frame)
		}
		if !more {
			return location{}
		}
	}
}

// panicLocation finds the source location that raised the panic currently being recovered. It
// must be called from a deferred function. The zero location is returned if the panic site
// cannot be determined.
func panicLocation() location {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	sawPanic := false
	for {
		frame, more := frames.Next()
		if frame.Function == "runtime.gopanic" {
			sawPanic = true
		} else if sawPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return frameLocation(frame)
		}
		if !more {
			return location{}
		}
	}
}

func frameLocation(frame runtime.Frame) location {
	if frame.File == "" {
		return location{}
	}
	return location{file: filepath.Base(frame.File), line: frame.Line}
}
