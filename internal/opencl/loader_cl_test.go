//go:build opencl

package opencl

import (
	"errors"
	"testing"
)

func TestPlatformCountMatchesEnumeration(t *testing.T) {
	count, err := PlatformCount()
	if errors.Is(err, ErrPlatformNotFound) {
		t.Skipf("OpenCL runtime unavailable: %v", err)
	}
	if err != nil {
		t.Fatalf("PlatformCount failed: %v", err)
	}

	platforms, err := EnumeratePlatforms()
	if err != nil {
		t.Fatalf("EnumeratePlatforms failed: %v", err)
	}
	if len(platforms) != int(count) {
		t.Fatalf("count mismatch: PlatformCount=%d EnumeratePlatforms=%d", count, len(platforms))
	}

	for _, p := range platforms {
		if p.Devices == nil {
			t.Errorf("platform %q has nil device list", p.Name)
		}
		for _, d := range p.Devices {
			if d.MaxComputeUnits == 0 {
				t.Errorf("device %q reports zero compute units", d.Name)
			}
		}
	}
}

func TestPlatformCountIsStable(t *testing.T) {
	first, err1 := PlatformCount()
	second, err2 := PlatformCount()

	if first != second {
		t.Fatalf("platform count changed between calls: %d then %d", first, second)
	}
	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("error changed between calls: %v then %v", err1, err2)
	}
}
