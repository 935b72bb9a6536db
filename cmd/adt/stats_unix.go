package main

import (
	"golang.org/x/sys/unix"
)

// peakRSS returns the maximum resident set size of this process, in bytes.
func peakRSS() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	// Maxrss is reported in kilobytes on Linux.
	return uint64(ru.Maxrss) * 1024, nil
}
