package otel

import (
	"os"
	"sync/atomic"
)

// traceEnabled is read from VIDEOHUB_TRACE once at package init.
var traceEnabled atomic.Bool

func init() {
	traceEnabled.Store(os.Getenv("VIDEOHUB_TRACE") != "")
}

// TraceEnabled reports whether every program message should be traced.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// SetTraceEnabled overrides the VIDEOHUB_TRACE setting.
func SetTraceEnabled(v bool) {
	traceEnabled.Store(v)
}
