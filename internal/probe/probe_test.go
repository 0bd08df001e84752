package probe

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/cwbudde/clprobe/internal/opencl"
)

type fakeEnumerator struct {
	count uint32
	err   error
	calls int
}

func (f *fakeEnumerator) PlatformCount() (uint32, error) {
	f.calls++
	return f.count, f.err
}

var (
	successLine = regexp.MustCompile(`^\d+ platform\(s\) found\n$`)
	failureLine = regexp.MustCompile(`^clGetPlatformIDs\(-?\d+\)\n$`)
)

func runProbe(t *testing.T, e Enumerator) (Result, string) {
	t.Helper()

	result, err := Probe(e)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Report(&buf, result); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	return result, buf.String()
}

func TestProbeScenarios(t *testing.T) {
	tests := []struct {
		name    string
		enum    *fakeEnumerator
		want    string
		success bool
	}{
		{
			name: "no runtime",
			enum: &fakeEnumerator{err: opencl.StatusPlatformNotFoundKHR.Err("clGetPlatformIDs")},
			want: "clGetPlatformIDs(-1001)\n",
		},
		{
			name:    "zero platforms",
			enum:    &fakeEnumerator{count: 0},
			want:    "0 platform(s) found\n",
			success: true,
		},
		{
			name:    "two platforms",
			enum:    &fakeEnumerator{count: 2},
			want:    "2 platform(s) found\n",
			success: true,
		},
		{
			name: "driver fault",
			enum: &fakeEnumerator{err: opencl.StatusOutOfHostMemory.Err("clGetPlatformIDs")},
			want: "clGetPlatformIDs(-6)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, out := runProbe(t, tt.enum)

			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
			if result.OK() != tt.success {
				t.Errorf("OK() = %v, want %v", result.OK(), tt.success)
			}
			if tt.success && !successLine.MatchString(out) {
				t.Errorf("success output %q does not match %s", out, successLine)
			}
			if !tt.success && !failureLine.MatchString(out) {
				t.Errorf("failure output %q does not match %s", out, failureLine)
			}
			if n := strings.Count(out, "\n"); n != 1 {
				t.Errorf("expected exactly one line, got %d", n)
			}
			if tt.enum.calls != 1 {
				t.Errorf("expected a single enumeration call, got %d", tt.enum.calls)
			}
		})
	}
}

func TestProbeFailureKeepsOriginalCode(t *testing.T) {
	enum := &fakeEnumerator{err: opencl.Status(-4242).Err("clGetPlatformIDs")}

	result, err := Probe(enum)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if result.Failure == nil {
		t.Fatal("expected failure result")
	}
	if result.Failure.Code != -4242 {
		t.Errorf("expected code -4242, got %d", result.Failure.Code)
	}
	if result.String() != "clGetPlatformIDs(-4242)" {
		t.Errorf("unexpected line %q", result.String())
	}
}

func TestProbeIsDeterministic(t *testing.T) {
	enum := &fakeEnumerator{count: 3}

	_, first := runProbe(t, enum)
	_, second := runProbe(t, enum)

	if first != second {
		t.Fatalf("outputs differ between runs: %q vs %q", first, second)
	}
}

func TestProbeRejectsForeignErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Probe(&fakeEnumerator{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped foreign error, got %v", err)
	}
}

func TestProbeAgainstLoader(t *testing.T) {
	result, out := runProbe(t, opencl.Loader{})

	if result.OK() {
		if !successLine.MatchString(out) {
			t.Errorf("unexpected success output %q", out)
		}
		return
	}
	if !failureLine.MatchString(out) {
		t.Errorf("unexpected failure output %q", out)
	}
}
