//go:build !windows
// +build !windows

package vos

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// SignalName returns the conventional name of a signal, e.g. "SIGKILL".
func SignalName(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return sig.String()
}
