package engine

import (
	"net"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portly/models"
)

func startListener(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "failed to start loopback listener")
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port
}

// freePorts returns n loopback ports that were just released, so connecting
// to them is refused.
func freePorts(t *testing.T, n int) []int {
	t.Helper()
	ports := make([]int, 0, n)
	listeners := make([]net.Listener, 0, n)
	for i := 0; i < n; i++ {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners = append(listeners, ln)
		ports = append(ports, ln.Addr().(*net.TCPAddr).Port)
	}
	for _, ln := range listeners {
		require.NoError(t, ln.Close())
	}
	sort.Ints(ports)
	return ports
}

func loopbackTarget(ports []int, workers int) models.ScanTarget {
	return models.ScanTarget{
		Host:    "127.0.0.1",
		Spec:    "test",
		Ports:   ports,
		Timeout: 500 * time.Millisecond,
		Workers: workers,
	}
}

func TestScan_RejectsInvalidTarget(t *testing.T) {
	eng := New()

	sum, err := eng.Scan(models.ScanTarget{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidTarget)
	assert.Nil(t, sum)

	sum, err = eng.Scan(models.ScanTarget{Host: "127.0.0.1", Ports: []int{80}, Timeout: time.Second})
	require.Error(t, err, "zero workers must be rejected")
	assert.Nil(t, sum)
}

func TestScan_OneOpenAmongClosed(t *testing.T) {
	open := startListener(t)
	closed := freePorts(t, 2)
	ports := append([]int{open}, closed...)
	sort.Ints(ports)

	sum, err := New().Scan(loopbackTarget(ports, 3))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", sum.Target)
	assert.Equal(t, "test", sum.PortsScanned)
	assert.Equal(t, 3, sum.TotalPorts)
	assert.Equal(t, 1, sum.OpenPorts)
	require.Len(t, sum.Results, 1)
	assert.Equal(t, open, sum.Results[0].Port)
	assert.Equal(t, models.PortStatusOpen, sum.Results[0].Status)
	assert.NotEmpty(t, sum.Results[0].Service)
	assert.Greater(t, sum.ScanSeconds, 0.0)
}

func TestScan_EveryPortAccountedFor(t *testing.T) {
	open := startListener(t)
	ports := append(freePorts(t, 9), open)
	sort.Ints(ports)

	sum, err := New().Scan(loopbackTarget(ports, 4))
	require.NoError(t, err)

	assert.Equal(t, sum.TotalPorts, len(sum.Results)+sum.ClosedPorts)
	openCount := 0
	for _, res := range sum.Results {
		if res.Status == models.PortStatusOpen {
			openCount++
		}
	}
	assert.Equal(t, sum.OpenPorts, openCount)
}

func TestScan_ZeroOpenIsNotAnError(t *testing.T) {
	ports := freePorts(t, 5)

	sum, err := New().Scan(loopbackTarget(ports, 5))
	require.NoError(t, err)

	assert.Empty(t, sum.Results)
	assert.Equal(t, 0, sum.OpenPorts)
	assert.Equal(t, 5, sum.ClosedPorts)
	assert.Equal(t, 5, sum.TotalPorts)
}

func TestScan_WorkerCountInvariance(t *testing.T) {
	openA := startListener(t)
	openB := startListener(t)
	ports := append([]int{openA, openB}, freePorts(t, 8)...)
	sort.Ints(ports)

	serial, err := New().Scan(loopbackTarget(ports, 1))
	require.NoError(t, err)
	parallel, err := New().Scan(loopbackTarget(ports, len(ports)))
	require.NoError(t, err)

	assert.Equal(t, serial.Results, parallel.Results)
	assert.Equal(t, serial.OpenPorts, parallel.OpenPorts)
	assert.Equal(t, serial.ClosedPorts, parallel.ClosedPorts)
}

func TestScan_ResultsSortedByPort(t *testing.T) {
	openA := startListener(t)
	openB := startListener(t)
	openC := startListener(t)
	ports := []int{openA, openB, openC}
	sort.Ints(ports)

	sum, err := New().Scan(loopbackTarget(ports, 3))
	require.NoError(t, err)

	require.Len(t, sum.Results, 3)
	assert.True(t, sort.SliceIsSorted(sum.Results, func(i, j int) bool {
		return sum.Results[i].Port < sum.Results[j].Port
	}))
}

func TestScan_WorkersClampedToPortCount(t *testing.T) {
	open := startListener(t)

	// Far more workers than ports must not change the outcome.
	sum, err := New().Scan(loopbackTarget([]int{open}, 500))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TotalPorts)
	assert.Equal(t, 1, sum.OpenPorts)
}

func TestScan_OnResultSeesEveryOutcome(t *testing.T) {
	open := startListener(t)
	ports := append([]int{open}, freePorts(t, 4)...)
	sort.Ints(ports)

	var observed []models.PortResult
	eng := New()
	eng.OnResult = func(res models.PortResult) {
		observed = append(observed, res)
	}

	sum, err := eng.Scan(loopbackTarget(ports, 2))
	require.NoError(t, err)

	// Closed outcomes are not in the summary but must reach the callback.
	assert.Len(t, observed, sum.TotalPorts)
	seen := make(map[int]int)
	for _, res := range observed {
		seen[res.Port]++
	}
	for _, port := range ports {
		assert.Equal(t, 1, seen[port], "port %d must be probed exactly once", port)
	}
}

func TestScan_UnresolvableHostYieldsErrorResults(t *testing.T) {
	target := models.ScanTarget{
		Host:    "portly-does-not-exist.invalid",
		Spec:    "80,443",
		Ports:   []int{80, 443},
		Timeout: 500 * time.Millisecond,
		Workers: 2,
	}

	sum, err := New().Scan(target)
	require.NoError(t, err, "resolution failures are per-port results, not scan errors")

	require.Len(t, sum.Results, 2)
	for _, res := range sum.Results {
		assert.Equal(t, models.PortStatusError, res.Status)
		assert.Equal(t, "-", res.Service)
		assert.NotEmpty(t, res.Reason)
	}
	assert.Equal(t, 0, sum.OpenPorts)
}
