// Package probe asks the OpenCL loader how many platforms it can see and
// renders the answer as a single diagnostic line.
package probe

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/clprobe/internal/opencl"
)

// Enumerator reports the number of compute platforms visible to the process.
// Failures must be returned as *opencl.StatusError.
type Enumerator interface {
	PlatformCount() (uint32, error)
}

// EnumerationFailure is a non-success status from the platform count call.
type EnumerationFailure struct {
	Code opencl.Status
}

func (e *EnumerationFailure) Error() string {
	return fmt.Sprintf("clGetPlatformIDs(%d)", int32(e.Code))
}

// Result is the outcome of one probe. Failure is nil on success.
type Result struct {
	Count   uint32
	Failure *EnumerationFailure
}

// OK reports whether enumeration succeeded.
func (r Result) OK() bool {
	return r.Failure == nil
}

// String renders the diagnostic line without the trailing newline.
func (r Result) String() string {
	if r.Failure != nil {
		return r.Failure.Error()
	}
	return fmt.Sprintf("%d platform(s) found", r.Count)
}

// Probe runs the enumeration once. A status failure becomes Result.Failure;
// the returned error is reserved for enumerators that break the contract.
func Probe(e Enumerator) (Result, error) {
	count, err := e.PlatformCount()
	if err == nil {
		return Result{Count: count}, nil
	}

	var se *opencl.StatusError
	if errors.As(err, &se) {
		return Result{Failure: &EnumerationFailure{Code: se.Code}}, nil
	}
	return Result{}, fmt.Errorf("platform enumeration: %w", err)
}

// Report writes the result as exactly one line.
func Report(w io.Writer, r Result) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}
