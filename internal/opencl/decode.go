package opencl

// cl_device_type bits.
const (
	deviceTypeDefault     = 1 << 0
	deviceTypeCPU         = 1 << 1
	deviceTypeGPU         = 1 << 2
	deviceTypeAccelerator = 1 << 3
)

func mapDeviceType(dt uint64) DeviceType {
	switch {
	case dt&deviceTypeGPU != 0:
		return DeviceTypeGPU
	case dt&deviceTypeCPU != 0:
		return DeviceTypeCPU
	case dt&deviceTypeAccelerator != 0:
		return DeviceTypeAccelerator
	case dt&deviceTypeDefault != 0:
		return DeviceTypeDefault
	default:
		return DeviceTypeUnknown
	}
}

// trimNull drops the terminating NUL of a string returned by clGet*Info.
func trimNull(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	if buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	return string(buf)
}
