package hostinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Info describes the machine the probe runs on. CPU OpenCL platforms
// (pocl, Intel CPU runtime) vectorize with whatever Features lists.
type Info struct {
	OS       string   `json:"os"`
	Arch     string   `json:"arch"`
	CPUs     int      `json:"cpus"`
	Features []string `json:"features"`
}

// Detect reports the current host.
func Detect() Info {
	return Info{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		Features: features(),
	}
}

func features() []string {
	flags := []struct {
		name string
		ok   bool
	}{
		{"sse4.2", cpu.X86.HasSSE42},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"neon", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
	}

	out := []string{}
	for _, f := range flags {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
