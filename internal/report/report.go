// Package report renders a ScanSummary for the CLI, either as colored
// human-readable text or as indented JSON. It is a consumer of the engine's
// output and holds no scanning logic.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"portly/models"
)

// Options carries display-only context the summary itself does not hold.
type Options struct {
	Timeout    time.Duration
	Workers    int
	ResolvedIP string // shown when set and different from the target
}

// Text writes the human-readable report.
func Text(w io.Writer, sum *models.ScanSummary, opts Options) {
	fmt.Fprintf(w, "\nportly - scanning host: %s\n", sum.Target)
	if opts.ResolvedIP != "" && opts.ResolvedIP != sum.Target {
		fmt.Fprintf(w, "Resolved to: %s\n", opts.ResolvedIP)
	}
	fmt.Fprintf(w, "Ports: %s | Timeout: %s | Workers: %d\n\n",
		sum.PortsScanned, opts.Timeout, opts.Workers)

	if len(sum.Results) == 0 {
		fmt.Fprintln(w, "No open ports found.")
	}
	for _, res := range sum.Results {
		switch res.Status {
		case models.PortStatusOpen:
			fmt.Fprintf(w, "%s %d/tcp   %-8s %s\n",
				color.GreenString("[+]"), res.Port, res.Status, res.Service)
		default:
			fmt.Fprintf(w, "%s %d/tcp   %-8s %s\n",
				color.RedString("[!]"), res.Port, res.Status, res.Service)
		}
	}

	fmt.Fprintf(w, "\nScan complete in %.2f seconds.\n", sum.ScanSeconds)
	fmt.Fprintf(w, "Open ports: %d\n", sum.OpenPorts)
}

// JSON writes the summary as indented JSON.
func JSON(w io.Writer, sum *models.ScanSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}
