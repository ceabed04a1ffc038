//go:build windows

package reader

import "os"

// Windows has no SIGTERM equivalent that a child process can catch
// cleanly, so the grace period is skipped and the process is killed
// directly.
func signalTerminate(p *os.Process) {
	_ = p.Kill()
}
