// Package terminal wraps a tcell screen behind a small cell-buffer interface.
//
// Features:
//   - Raw mode and alternate screen via tcell, restored by Fini
//   - Row-major Cell buffers flushed as complete frames
//   - Timed event polling: PollEvent waits on an event channel up to a deadline
//   - Emergency restoration for panic paths
//
// A single reader goroutine forwards tcell events into a buffered channel.
// Callers never touch tcell types directly, which keeps the rest of the
// program testable against a fake Terminal or a tcell simulation screen.
package terminal
