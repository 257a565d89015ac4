package rowan

import (
	"fmt"
	"os"
	"sync/atomic"
)

// debugStats holds per-session scheduling counters.
// Reset on every Start; logged per tick when debug mode is on.
type debugStats struct {
	launched  int
	completed int
	aborted   int
	clicks    int
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick
// scheduling stats are logged to stderr and disposed-object access in the
// reference scene panics with a descriptive message.
func (r *Runtime) SetDebugMode(enabled bool) {
	r.debug = enabled
	globalDebug.Store(enabled)
}

// globalDebug mirrors the most recently set Runtime debug flag so that scene
// object operations (which lack a Runtime pointer) can check it cheaply. The
// flag is atomic because tree ops may run on a Clock goroutine while the host
// toggles debug mode. Only valid with a single Runtime; multiple Runtimes with
// differing debug modes will reflect whichever called SetDebugMode last.
var globalDebug atomic.Bool

// debugLog prints scheduling stats to stderr. Called once per Update tick.
func (r *Runtime) debugLog() {
	_, _ = fmt.Fprintf(os.Stderr,
		"[rowan] live: %d | launched: %d | completed: %d | aborted: %d | clicks: %d\n",
		len(r.instances), r.stats.launched, r.stats.completed, r.stats.aborted, r.stats.clicks)
}

// debugCheckDisposed panics with a descriptive message when a disposed object
// is used in a tree operation. Only called when debug mode is on; in release
// mode callers skip this entirely.
func debugCheckDisposed(o *Object, op string) {
	if o.disposed {
		panic(fmt.Sprintf("rowan debug: %s on disposed object %q (ID was %s)", op, o.name, o.id))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(o *Object) {
	depth := 0
	for p := o; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: tree depth %d exceeds %d (object %q)\n",
			depth, debugMaxTreeDepth, o.name)
	}
}
