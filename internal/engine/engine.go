// Package engine orchestrates bounded-concurrency connect scans: a fixed
// pool of workers pulls ports from a claim-once queue, probes each exactly
// once, and the collected outcomes are folded into an ordered summary.
package engine

import (
	"sort"
	"sync"
	"time"

	"portly/internal/probe"
	"portly/internal/services"
	"portly/models"
)

// Engine runs scans. The zero value is ready to use.
//
// OnResult, when set, is invoked for every probed port, closed ports
// included, in completion order. It runs on the collecting goroutine, so
// implementations must not call back into the engine. Collaborators use it
// for progress display or verbose per-port output; the summary itself lists
// only open and error ports.
type Engine struct {
	OnResult func(models.PortResult)
}

// New returns a fresh engine.
func New() *Engine {
	return &Engine{}
}

// Scan probes every port in the target once and returns the aggregated
// summary. The only error path is target validation; once workers are
// dispatched a complete summary covering every requested port is always
// returned, and a single port's failure never aborts the scan.
func (e *Engine) Scan(target models.ScanTarget) (*models.ScanSummary, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	// No idle workers: the pool never exceeds the number of ports.
	workers := target.Workers
	if workers > len(target.Ports) {
		workers = len(target.Ports)
	}

	jobs := make(chan int, len(target.Ports))
	outcomes := make(chan models.PortResult, len(target.Ports))
	for _, port := range target.Ports {
		jobs <- port
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for port := range jobs {
				outcomes <- scanPort(target.Host, port, target.Timeout)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	summary := &models.ScanSummary{
		Target:       target.Host,
		PortsScanned: target.Spec,
		Results:      []models.PortResult{},
		TotalPorts:   len(target.Ports),
	}
	for res := range outcomes {
		if e.OnResult != nil {
			e.OnResult(res)
		}
		switch res.Status {
		case models.PortStatusOpen:
			summary.OpenPorts++
			summary.Results = append(summary.Results, res)
		case models.PortStatusError:
			summary.Results = append(summary.Results, res)
		default:
			summary.ClosedPorts++
		}
	}
	// The outcomes channel closes only after every worker has joined, so the
	// clock stops once all ports have a recorded outcome.
	summary.ScanSeconds = time.Since(start).Seconds()

	// Workers race freely; ordering is imposed here, not taken from
	// completion order.
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].Port < summary.Results[j].Port
	})
	return summary, nil
}

// scanPort runs one probe and translates its outcome into a PortResult,
// resolving the service label for open ports.
func scanPort(host string, port int, timeout time.Duration) models.PortResult {
	res := probe.TCP(host, port, timeout)
	switch res.Outcome {
	case probe.Open:
		return models.PortResult{
			Port:    port,
			Status:  models.PortStatusOpen,
			Service: services.Name(port),
		}
	case probe.Error:
		return models.PortResult{
			Port:    port,
			Status:  models.PortStatusError,
			Service: "-",
			Reason:  res.Reason,
		}
	default:
		return models.PortResult{
			Port:   port,
			Status: models.PortStatusClosed,
			Reason: res.Reason,
		}
	}
}
