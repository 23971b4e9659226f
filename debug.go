package texelfw

import (
	"fmt"
	"os"
)

// debugMaxTreeDepth is the window-tree depth past which SetDebug(true)
// starts warning on stderr; deep trees are usually a sign of windows
// that should have been flattened or reused rather than nested.
const debugMaxTreeDepth = 32

// debugLog writes a single diagnostic line to stderr when debug is
// enabled.
func debugLog(debug bool, format string, args ...any) {
	if !debug {
		return
	}
	fmt.Fprintf(os.Stderr, "texelfw: "+format+"\n", args...)
}

// debugCheckTreeDepth warns once a window subtree nests past
// debugMaxTreeDepth levels.
func debugCheckTreeDepth(debug bool, depth int) {
	if debug && depth == debugMaxTreeDepth {
		debugLog(debug, "window tree depth exceeds %d; consider flattening", debugMaxTreeDepth)
	}
}
