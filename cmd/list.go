package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/clprobe/internal/hostinfo"
	"github.com/cwbudde/clprobe/internal/opencl"
	"github.com/cwbudde/clprobe/internal/probe"
	"github.com/spf13/cobra"
)

// platformLister returns every platform with its devices.
type platformLister interface {
	Platforms() ([]opencl.PlatformInfo, error)
}

var (
	listFormat string

	lister platformLister = opencl.Loader{}
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List OpenCL platforms and their devices",
	Long: `Enumerates every OpenCL platform together with its devices and prints
them along with a short description of the host. Enumeration failures are
reported the same way as the bare command and do not change the exit status.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format: table, json")
	rootCmd.AddCommand(listCmd)
}

// listReport is the JSON shape of the list command.
type listReport struct {
	Host      hostinfo.Info         `json:"host"`
	Platforms []opencl.PlatformInfo `json:"platforms"`
	Status    int32                 `json:"status"`
	Error     string                `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	if listFormat != "table" && listFormat != "json" {
		return fmt.Errorf("unknown format: %s", listFormat)
	}

	report := listReport{
		Host:      hostinfo.Detect(),
		Platforms: []opencl.PlatformInfo{},
	}

	platforms, err := lister.Platforms()
	if err != nil {
		var se *opencl.StatusError
		if !errors.As(err, &se) {
			return fmt.Errorf("failed to enumerate platforms: %w", err)
		}
		logger.Info("Platform enumeration failed", "call", se.Call, "status", se.Code.String())
		failure := &probe.EnumerationFailure{Code: se.Code}
		report.Status = int32(se.Code)
		report.Error = failure.Error()
	} else {
		report.Platforms = platforms
	}

	out := cmd.OutOrStdout()
	if listFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeListTable(out, report)
}

func writeListTable(out io.Writer, report listReport) error {
	fmt.Fprintf(out, "Host: %s/%s, %d CPU(s)", report.Host.OS, report.Host.Arch, report.Host.CPUs)
	if len(report.Host.Features) > 0 {
		fmt.Fprintf(out, ", features: %v", report.Host.Features)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	if report.Error != "" {
		fmt.Fprintln(out, report.Error)
		return nil
	}

	fmt.Fprintln(out, probe.Result{Count: uint32(len(report.Platforms))}.String())
	if len(report.Platforms) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLATFORM\tDEVICE\tTYPE\tUNITS\tMEMORY\tVERSION")
	fmt.Fprintln(w, "--------\t------\t----\t-----\t------\t-------")

	for i, p := range report.Platforms {
		label := fmt.Sprintf("#%d %s", i, p.Name)
		if len(p.Devices) == 0 {
			fmt.Fprintf(w, "%s\t(no devices)\t\t\t\t%s\n", label, p.Version)
			continue
		}
		for _, d := range p.Devices {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				label,
				d.Name,
				d.Type,
				d.MaxComputeUnits,
				formatBytes(d.GlobalMemBytes),
				d.Version,
			)
		}
	}

	return w.Flush()
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
