package hostinfo

// Static is a Provider returning fixed values. Setting one of the error
// fields makes the corresponding query fail.
type Static struct {
	User      string
	Host      string
	OS        string
	Machine   string
	Kernel    string
	UptimeSec uint64
	CPU       string
	GPUs      []GraphicsDevice
	Memory    MemoryStatus

	KernelErr error
	UptimeErr error
	MemoryErr error

	Calls map[string]int
}

func (s *Static) called(name string) {
	if s.Calls == nil {
		s.Calls = make(map[string]int)
	}
	s.Calls[name]++
}

func (s *Static) Username() string {
	s.called("Username")
	return s.User
}

func (s *Static) Hostname() string {
	s.called("Hostname")
	return s.Host
}

func (s *Static) Distro() string {
	s.called("Distro")
	return s.OS
}

func (s *Static) Arch() string {
	s.called("Arch")
	return s.Machine
}

func (s *Static) CPUBrand() string {
	s.called("CPUBrand")
	return s.CPU
}

func (s *Static) KernelVersion() (string, error) {
	s.called("KernelVersion")
	if s.KernelErr != nil {
		return "", s.KernelErr
	}
	return s.Kernel, nil
}

func (s *Static) Uptime() (uint64, error) {
	s.called("Uptime")
	if s.UptimeErr != nil {
		return 0, s.UptimeErr
	}
	return s.UptimeSec, nil
}

func (s *Static) GraphicsDevices() []GraphicsDevice {
	s.called("GraphicsDevices")
	return s.GPUs
}

func (s *Static) MemoryStatus() (MemoryStatus, error) {
	s.called("MemoryStatus")
	if s.MemoryErr != nil {
		return MemoryStatus{}, s.MemoryErr
	}
	return s.Memory, nil
}
