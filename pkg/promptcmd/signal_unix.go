//go:build !windows

package promptcmd

const signalSupported = true
