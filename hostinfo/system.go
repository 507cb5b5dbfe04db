package hostinfo

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	unknown       = "unknown"
	osReleasePath = "/etc/os-release"
)

// System answers host queries from the running machine.
type System struct {
	osRelease string
}

func NewSystem() *System {
	return &System{osRelease: osReleasePath}
}

func (s *System) Username() string {
	u, err := user.Current()
	if err != nil {
		logger.Debug("username lookup failed", "error", err)
		return unknown
	}
	return u.Username
}

func (s *System) Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		logger.Debug("hostname lookup failed", "error", err)
		return unknown
	}
	return name
}

func (s *System) Distro() string {
	if name := osReleaseName(s.osRelease); name != "" {
		return name
	}
	platform, _, version, err := host.PlatformInformation()
	if err != nil {
		logger.Debug("platform lookup failed", "error", err)
	}
	return distroName(platform, version)
}

func (s *System) Arch() string {
	arch, err := host.KernelArch()
	if err != nil || arch == "" {
		logger.Debug("kernel arch lookup failed", "error", err)
		return runtime.GOARCH
	}
	return arch
}

func (s *System) KernelVersion() (string, error) {
	version, err := host.KernelVersion()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoKernelVersion, err)
	}
	if version == "" {
		return "", ErrNoKernelVersion
	}
	return version, nil
}

func (s *System) Uptime() (uint64, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, fmt.Errorf("failed to read uptime: %w", err)
	}
	return secs, nil
}

func (s *System) CPUBrand() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		logger.Debug("cpu lookup failed", "error", err)
		return unknown
	}
	return strings.TrimSpace(infos[0].ModelName)
}

func (s *System) GraphicsDevices() []GraphicsDevice {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		logger.Debug("gpu enumeration failed", "error", err)
		return nil
	}

	devices := make([]GraphicsDevice, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		var vendor, product string
		if card.DeviceInfo.Vendor != nil {
			vendor = card.DeviceInfo.Vendor.Name
		}
		if card.DeviceInfo.Product != nil {
			product = card.DeviceInfo.Product.Name
		}
		devices = append(devices, GraphicsDevice{Name: gpuName(vendor, product)})
	}
	return devices
}

func (s *System) MemoryStatus() (MemoryStatus, error) {
	vmem, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStatus{}, err
	}
	if vmem.Total == 0 {
		return MemoryStatus{}, ErrNoMemoryInfo
	}
	return MemoryStatus{UsedKiB: toKiB(vmem.Used), TotalKiB: toKiB(vmem.Total)}, nil
}

// osReleaseName returns PRETTY_NAME (or NAME) from an os-release file, or ""
// when the file is missing or carries neither key.
func osReleaseName(path string) string {
	if path == "" {
		return ""
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("os-release not readable", "path", path, "error", err)
		return ""
	}
	defer func() {
		_ = f.Close()
	}()

	var pretty, name string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		switch key {
		case "PRETTY_NAME":
			pretty = value
		case "NAME":
			name = value
		}
	}
	if pretty != "" {
		return pretty
	}
	return name
}

// distroName builds "Ubuntu 22.04" from gopsutil's lowercase platform id.
func distroName(platform, version string) string {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		platform = runtime.GOOS
	}
	name := cases.Title(language.English).String(platform)
	if version = strings.TrimSpace(version); version != "" {
		name += " " + version
	}
	return name
}

func gpuName(vendor, product string) string {
	vendor = strings.TrimSpace(vendor)
	product = strings.TrimSpace(product)
	switch {
	case product == "":
		if vendor == "" {
			return unknown
		}
		return vendor
	case vendor == "" || vendor == unknown || strings.HasPrefix(product, vendor):
		return product
	default:
		return vendor + " " + product
	}
}

func toKiB(bytes uint64) uint64 {
	return bytes / 1024
}
