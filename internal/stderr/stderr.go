//go:build !windows

// Package stderr captures output from C audio libraries (ALSA in
// particular) that write directly to file descriptor 2, bypassing
// os.Stderr. Left alone those writes corrupt the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Lines receives stderr lines captured while the trap is active. The UI
// reads from this channel and shows the messages in its status line.
var Lines = make(chan string, 100)

var (
	origFd    int
	pipeRead  *os.File
	pipeWrite *os.File
	active    bool
)

// Start redirects fd 2 into a pipe and begins forwarding captured lines
// to Lines. Call it before the audio device is opened. Failure to set up
// the trap is not fatal: library noise just goes to the real stderr.
func Start() error {
	if active {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origFd, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origFd)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	active = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Lines <- line:
			default:
				// Channel full, drop rather than block the reader.
			}
		}
	}()

	return nil
}

// WriteOriginal writes to the pre-trap stderr. Used for fatal errors
// that must stay visible while the trap is active.
func WriteOriginal(msg string) {
	if active && origFd > 0 {
		_, _ = syscall.Write(origFd, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores fd 2 and closes Lines. Call on program exit.
func Stop() {
	if !active {
		return
	}

	_ = syscall.Dup2(origFd, int(os.Stderr.Fd()))
	_ = syscall.Close(origFd)

	pipeWrite.Close()
	pipeRead.Close()

	close(Lines)
	active = false
}
