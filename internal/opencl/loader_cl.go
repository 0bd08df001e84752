//go:build opencl

package opencl

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=120 -DCL_USE_DEPRECATED_OPENCL_1_2_APIS
#cgo darwin LDFLAGS: -framework OpenCL
#cgo !darwin LDFLAGS: -lOpenCL

#if defined(__APPLE__) || defined(__MACH__)
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
*/
import "C"

import (
	"errors"
	"unsafe"
)

// Built reports whether the binary links against the OpenCL runtime.
const Built = true

// PlatformCount calls clGetPlatformIDs asking only for the number of platforms.
func PlatformCount() (uint32, error) {
	var count C.cl_uint
	status := Status(C.clGetPlatformIDs(0, nil, &count))
	if err := status.Err("clGetPlatformIDs"); err != nil {
		return 0, err
	}
	return uint32(count), nil
}

// EnumeratePlatforms returns discovered platforms with their devices.
func EnumeratePlatforms() ([]PlatformInfo, error) {
	var count C.cl_uint
	status := Status(C.clGetPlatformIDs(0, nil, &count))
	if err := status.Err("clGetPlatformIDs"); err != nil {
		return nil, err
	}
	if count == 0 {
		return []PlatformInfo{}, nil
	}

	platformIDs := make([]C.cl_platform_id, int(count))
	status = Status(C.clGetPlatformIDs(count, &platformIDs[0], nil))
	if err := status.Err("clGetPlatformIDs(list)"); err != nil {
		return nil, err
	}

	out := make([]PlatformInfo, 0, int(count))
	for _, pid := range platformIDs {
		info, err := buildPlatformInfo(pid)
		if err != nil {
			return nil, err
		}

		devices, err := enumerateDevices(pid)
		if err != nil && !errors.Is(err, ErrDeviceNotFound) {
			return nil, err
		}
		info.Devices = devices

		out = append(out, info)
	}

	return out, nil
}

func buildPlatformInfo(id C.cl_platform_id) (PlatformInfo, error) {
	name, err := getPlatformString(id, C.CL_PLATFORM_NAME)
	if err != nil {
		return PlatformInfo{}, err
	}
	vendor, err := getPlatformString(id, C.CL_PLATFORM_VENDOR)
	if err != nil {
		return PlatformInfo{}, err
	}
	version, err := getPlatformString(id, C.CL_PLATFORM_VERSION)
	if err != nil {
		return PlatformInfo{}, err
	}
	profile, err := getPlatformString(id, C.CL_PLATFORM_PROFILE)
	if err != nil {
		return PlatformInfo{}, err
	}

	return PlatformInfo{
		Name:    name,
		Vendor:  vendor,
		Version: version,
		Profile: profile,
		Devices: []DeviceInfo{},
	}, nil
}

func enumerateDevices(platform C.cl_platform_id) ([]DeviceInfo, error) {
	var count C.cl_uint
	status := Status(C.clGetDeviceIDs(platform, C.CL_DEVICE_TYPE_ALL, 0, nil, &count))
	if err := status.Err("clGetDeviceIDs"); err != nil {
		return []DeviceInfo{}, err
	}
	if count == 0 {
		return []DeviceInfo{}, ErrDeviceNotFound
	}

	deviceIDs := make([]C.cl_device_id, int(count))
	status = Status(C.clGetDeviceIDs(platform, C.CL_DEVICE_TYPE_ALL, count, &deviceIDs[0], nil))
	if err := status.Err("clGetDeviceIDs(list)"); err != nil {
		return nil, err
	}

	devices := make([]DeviceInfo, 0, int(count))
	for _, id := range deviceIDs {
		info, err := buildDeviceInfo(id)
		if err != nil {
			return nil, err
		}
		devices = append(devices, info)
	}

	return devices, nil
}

func buildDeviceInfo(id C.cl_device_id) (DeviceInfo, error) {
	name, err := getDeviceString(id, C.CL_DEVICE_NAME)
	if err != nil {
		return DeviceInfo{}, err
	}
	vendor, err := getDeviceString(id, C.CL_DEVICE_VENDOR)
	if err != nil {
		return DeviceInfo{}, err
	}
	version, err := getDeviceString(id, C.CL_DEVICE_VERSION)
	if err != nil {
		return DeviceInfo{}, err
	}
	driver, err := getDeviceString(id, C.CL_DRIVER_VERSION)
	if err != nil {
		return DeviceInfo{}, err
	}

	var rawType C.cl_device_type
	status := Status(C.clGetDeviceInfo(id, C.CL_DEVICE_TYPE, C.size_t(unsafe.Sizeof(rawType)), unsafe.Pointer(&rawType), nil))
	if err := status.Err("clGetDeviceInfo(type)"); err != nil {
		return DeviceInfo{}, err
	}

	var computeUnits C.cl_uint
	status = Status(C.clGetDeviceInfo(id, C.CL_DEVICE_MAX_COMPUTE_UNITS, C.size_t(unsafe.Sizeof(computeUnits)), unsafe.Pointer(&computeUnits), nil))
	if err := status.Err("clGetDeviceInfo(computeUnits)"); err != nil {
		return DeviceInfo{}, err
	}

	var globalMem C.cl_ulong
	status = Status(C.clGetDeviceInfo(id, C.CL_DEVICE_GLOBAL_MEM_SIZE, C.size_t(unsafe.Sizeof(globalMem)), unsafe.Pointer(&globalMem), nil))
	if err := status.Err("clGetDeviceInfo(globalMem)"); err != nil {
		return DeviceInfo{}, err
	}

	return DeviceInfo{
		Name:            name,
		Vendor:          vendor,
		Version:         version,
		DriverVersion:   driver,
		Type:            mapDeviceType(uint64(rawType)),
		MaxComputeUnits: uint32(computeUnits),
		GlobalMemBytes:  uint64(globalMem),
	}, nil
}

func getPlatformString(id C.cl_platform_id, param C.cl_platform_info) (string, error) {
	var size C.size_t
	status := Status(C.clGetPlatformInfo(id, param, 0, nil, &size))
	if err := status.Err("clGetPlatformInfo(size)"); err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = Status(C.clGetPlatformInfo(id, param, size, unsafe.Pointer(&buf[0]), nil))
	if err := status.Err("clGetPlatformInfo(value)"); err != nil {
		return "", err
	}

	return trimNull(buf), nil
}

func getDeviceString(id C.cl_device_id, param C.cl_device_info) (string, error) {
	var size C.size_t
	status := Status(C.clGetDeviceInfo(id, param, 0, nil, &size))
	if err := status.Err("clGetDeviceInfo(size)"); err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = Status(C.clGetDeviceInfo(id, param, size, unsafe.Pointer(&buf[0]), nil))
	if err := status.Err("clGetDeviceInfo(value)"); err != nil {
		return "", err
	}

	return trimNull(buf), nil
}
