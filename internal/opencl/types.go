package opencl

// DeviceType describes the class of an OpenCL device.
type DeviceType string

const (
	DeviceTypeGPU         DeviceType = "GPU"
	DeviceTypeCPU         DeviceType = "CPU"
	DeviceTypeAccelerator DeviceType = "Accelerator"
	DeviceTypeDefault     DeviceType = "Default"
	DeviceTypeUnknown     DeviceType = "Unknown"
)

// DeviceInfo captures metadata about an OpenCL device.
type DeviceInfo struct {
	Name            string     `json:"name"`
	Vendor          string     `json:"vendor"`
	Version         string     `json:"version"`
	DriverVersion   string     `json:"driverVersion"`
	Type            DeviceType `json:"type"`
	MaxComputeUnits uint32     `json:"maxComputeUnits"`
	GlobalMemBytes  uint64     `json:"globalMemBytes"`
}

// PlatformInfo captures metadata about an OpenCL platform and its devices.
type PlatformInfo struct {
	Name    string       `json:"name"`
	Vendor  string       `json:"vendor"`
	Version string       `json:"version"`
	Profile string       `json:"profile"`
	Devices []DeviceInfo `json:"devices"`
}

// Loader is the process-wide OpenCL ICD loader. The zero value is ready to use.
type Loader struct{}

// PlatformCount asks the loader how many platforms are registered.
func (Loader) PlatformCount() (uint32, error) {
	return PlatformCount()
}

// Platforms returns every platform with its devices.
func (Loader) Platforms() ([]PlatformInfo, error) {
	return EnumeratePlatforms()
}
