package texelfw

import "testing"

func TestDebugCheckTreeDepthDoesNotPanic(t *testing.T) {
	debugCheckTreeDepth(false, debugMaxTreeDepth)
	debugCheckTreeDepth(true, debugMaxTreeDepth-1)
	debugCheckTreeDepth(true, debugMaxTreeDepth)
	debugCheckTreeDepth(true, debugMaxTreeDepth+1)
}

func TestDebugLogDisabledIsNoop(t *testing.T) {
	// Nothing to assert beyond "doesn't panic"; debugLog with
	// debug=false must not touch its arguments.
	debugLog(false, "value is %d", 1)
}
