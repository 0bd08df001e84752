//go:build !opencl

package opencl

// Built reports whether the binary links against the OpenCL runtime.
const Built = false

// PlatformCount behaves like a host without an ICD loader: no platform is ever found.
func PlatformCount() (uint32, error) {
	return 0, StatusPlatformNotFoundKHR.Err("clGetPlatformIDs")
}

// EnumeratePlatforms fails the same way PlatformCount does.
func EnumeratePlatforms() ([]PlatformInfo, error) {
	return nil, StatusPlatformNotFoundKHR.Err("clGetPlatformIDs")
}
