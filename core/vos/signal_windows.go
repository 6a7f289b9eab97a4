package vos

import "syscall"

// SignalName returns the description of a signal.
func SignalName(sig syscall.Signal) string {
	return sig.String()
}
