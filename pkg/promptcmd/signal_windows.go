//go:build windows

package promptcmd

// Ctrl-C on a Windows console is not routed through the interrupt
// controller; the process keeps its default behaviour.
const signalSupported = false
