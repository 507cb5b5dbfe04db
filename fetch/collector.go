package fetch

import (
	"fmt"
	"log/slog"

	"github.com/timson/pirinfetch/hostinfo"
)

const unknownKernel = "unknown"

var logger = slog.Default()

func SetLogger(l *slog.Logger) {
	logger = l
}

// Collect queries p once per fact and returns the info column in display order.
// Only an uptime failure is returned as an error; kernel and memory failures
// degrade to a sentinel or an inline message.
func Collect(p hostinfo.Provider) ([]Line, error) {
	title := TitleLine{User: p.Username(), Host: p.Hostname()}

	lines := []Line{
		title,
		SeparatorLine{Width: Len(title)},
		FactLine{Label: "os", Value: fmt.Sprintf("%s %s", p.Distro(), p.Arch())},
		FactLine{Label: "kernel", Value: kernelVersion(p)},
	}

	secs, err := p.Uptime()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUptime, err)
	}
	lines = append(lines,
		FactLine{Label: "uptime", Value: FormatUptime(secs)},
		FactLine{Label: "cpu", Value: p.CPUBrand()},
	)

	for _, gpu := range p.GraphicsDevices() {
		lines = append(lines, FactLine{Label: "gpu", Value: gpu.Name})
	}

	lines = append(lines, FactLine{Label: "memory", Value: memoryValue(p)})
	return lines, nil
}

// FormatUptime renders seconds as "{H}h {MM}m".
func FormatUptime(secs uint64) string {
	return fmt.Sprintf("%dh %02dm", secs/3600, (secs%3600)/60)
}

// FormatMemory renders used and total memory in MiB with two decimals.
func FormatMemory(m hostinfo.MemoryStatus) string {
	return fmt.Sprintf("%.2fMiB / %.2fMiB", float64(m.UsedKiB)/1024, float64(m.TotalKiB)/1024)
}

func kernelVersion(p hostinfo.Provider) string {
	version, err := p.KernelVersion()
	if err != nil {
		logger.Debug("kernel version unavailable", "error", err)
		return unknownKernel
	}
	return version
}

func memoryValue(p hostinfo.Provider) string {
	status, err := p.MemoryStatus()
	if err != nil {
		logger.Debug("memory status unavailable", "error", err)
		return err.Error()
	}
	return FormatMemory(status)
}
