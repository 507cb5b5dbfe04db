package hostinfo

import "log/slog"

var logger = slog.Default()

func SetLogger(l *slog.Logger) {
	logger = l
}

// GraphicsDevice is a single detected display adapter.
type GraphicsDevice struct {
	Name string
}

// MemoryStatus holds memory usage in KiB.
type MemoryStatus struct {
	UsedKiB  uint64
	TotalKiB uint64
}

// Provider is the read-only set of host queries the fetch pipeline consumes.
// Queries without an error return fall back to a default value instead of failing.
type Provider interface {
	Username() string
	Hostname() string
	Distro() string
	Arch() string
	KernelVersion() (string, error)
	Uptime() (uint64, error)
	CPUBrand() string
	GraphicsDevices() []GraphicsDevice
	MemoryStatus() (MemoryStatus, error)
}
