package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PortStatus classifies the outcome recorded for a single probed port.
type PortStatus string

const (
	PortStatusOpen   PortStatus = "open"
	PortStatusClosed PortStatus = "closed"
	PortStatusError  PortStatus = "error"
)

// ErrInvalidTarget is wrapped by all ScanTarget validation failures.
var ErrInvalidTarget = errors.New("invalid scan target")

// ScanTarget describes one scan invocation: the host to probe, the
// already-parsed port work set, and the per-probe resource bounds.
type ScanTarget struct {
	Host    string        // hostname or IP literal, unresolved
	Spec    string        // original port spec text, echoed in the summary
	Ports   []int         // sorted, deduplicated port sequence
	Timeout time.Duration // per-probe timeout
	Workers int           // concurrency bound
}

// Validate rejects a malformed target before any scanning begins. Host
// validation is shallow; resolution failures surface per port as error
// results, not here.
func (t ScanTarget) Validate() error {
	if strings.TrimSpace(t.Host) == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidTarget)
	}
	if strings.ContainsAny(t.Host, " \t\r\n") {
		return fmt.Errorf("%w: host %q contains whitespace", ErrInvalidTarget, t.Host)
	}
	if len(t.Ports) == 0 {
		return fmt.Errorf("%w: no ports to scan", ErrInvalidTarget)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidTarget)
	}
	if t.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidTarget)
	}
	return nil
}

// PortResult is the recorded outcome for one port. Service is set only for
// open ports (error entries carry a "-" placeholder); Reason holds a short
// diagnostic for error results and is not meant for display.
type PortResult struct {
	Port    int        `json:"port"`
	Status  PortStatus `json:"status"`
	Service string     `json:"service,omitempty"`
	Reason  string     `json:"reason,omitempty"`
}

// ScanSummary is the full outcome of a scan. Results lists open and error
// ports sorted ascending; closed ports are tallied but not listed.
type ScanSummary struct {
	Target       string       `json:"target"`
	PortsScanned string       `json:"ports_scanned"`
	Results      []PortResult `json:"results"`
	TotalPorts   int          `json:"total_ports"`
	OpenPorts    int          `json:"open_ports"`
	ClosedPorts  int          `json:"closed_ports"`
	ScanSeconds  float64      `json:"scan_time_seconds"`
}
