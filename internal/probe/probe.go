// Package probe performs single TCP connect attempts and classifies their
// outcome. A probe is exactly one connection attempt, no retries, with no
// data sent or read.
package probe

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"
)

// Outcome is the three-way classification of a connect attempt. Timeouts and
// active refusals both map to Closed: a filtered port and a closed port are
// indistinguishable to a connect scan.
type Outcome int

const (
	Open Outcome = iota
	Closed
	Error
)

// Result carries the outcome of one probe. Reason holds a short diagnostic
// for Closed and Error outcomes.
type Result struct {
	Outcome Outcome
	Reason  string
}

// TCP attempts one TCP connection to host:port within timeout. A successful
// connection is closed immediately and reported Open. Timeouts and refusals
// are Closed; anything else (resolution failure, network unreachable, ...)
// is Error.
func TCP(host string, port int, timeout time.Duration) Result {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err == nil {
		conn.Close()
		return Result{Outcome: Open}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Result{Outcome: Closed, Reason: "timeout"}
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return Result{Outcome: Closed, Reason: "connection refused"}
	}
	return Result{Outcome: Error, Reason: reason(err)}
}

// reason strips the "dial tcp host:port:" prefix so callers get the short
// underlying cause.
func reason(err error) string {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return opErr.Err.Error()
	}
	return err.Error()
}
