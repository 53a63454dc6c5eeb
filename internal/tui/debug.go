package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Best-effort debug logging. Enabled by pointing PROJECTPAD_DEBUG_LOG at a
// file; silent otherwise. Meant for diagnosing drag behavior on terminals we
// don't have in front of us.
func debugLogf(format string, args ...any) {
	path := strings.TrimSpace(os.Getenv("PROJECTPAD_DEBUG_LOG"))
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().Format(time.RFC3339Nano)}, args...)...)
}
