package hostinfo

import (
	"errors"
)

var (
	ErrNoKernelVersion = errors.New("kernel version not available")
	ErrNoMemoryInfo    = errors.New("memory info not available")
)
