package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/projectdiscovery/goflags"
	"github.com/schollz/progressbar/v3"

	"portly/internal/engine"
	"portly/internal/portspec"
	"portly/internal/report"
	"portly/models"
)

type options struct {
	host      string
	ports     string
	timeoutMs int
	workers   int
	jsonOut   bool
	verbose   bool
}

func main() {
	opts := parseOptions()

	ports, err := portspec.Parse(opts.ports)
	if err != nil {
		fatalf("%v", err)
	}

	target := models.ScanTarget{
		Host:    opts.host,
		Spec:    opts.ports,
		Ports:   ports,
		Timeout: time.Duration(opts.timeoutMs) * time.Millisecond,
		Workers: opts.workers,
	}

	eng := engine.New()
	var bar *progressbar.ProgressBar
	if opts.verbose && !opts.jsonOut {
		color.Cyan("Starting scan of %d ports on %s", len(ports), opts.host)
		bar = progressbar.NewOptions(len(ports),
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		eng.OnResult = func(models.PortResult) {
			_ = bar.Add(1)
		}
	}

	sum, err := eng.Scan(target)
	if err != nil {
		fatalf("%v", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if opts.jsonOut {
		if err := report.JSON(os.Stdout, sum); err != nil {
			fatalf("writing JSON output: %v", err)
		}
		return
	}

	ropts := report.Options{Timeout: target.Timeout, Workers: opts.workers}
	if opts.verbose {
		if addrs, err := net.LookupHost(opts.host); err == nil && len(addrs) > 0 {
			ropts.ResolvedIP = addrs[0]
		}
	}
	report.Text(os.Stdout, sum, ropts)
}

func parseOptions() *options {
	opts := &options{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`portly - a lightweight concurrent TCP connect scanner.

Only scan hosts you own or have explicit permission to test.`)
	flagSet.StringVarP(&opts.host, "host", "t", "", "target hostname or IP address to scan")
	flagSet.StringVarP(&opts.ports, "ports", "p", "1-1024", "port spec: single (80), list (22,80,443) or range (1-1024)")
	flagSet.IntVar(&opts.timeoutMs, "timeout", 500, "per-probe timeout in milliseconds")
	flagSet.IntVarP(&opts.workers, "workers", "w", 100, "maximum number of concurrent workers")
	flagSet.BoolVarP(&opts.jsonOut, "json", "j", false, "output results as JSON")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output with a progress bar")

	if err := flagSet.Parse(); err != nil {
		fatalf("%v", err)
	}
	if opts.host == "" {
		fatalf("target host is required (-host)")
	}
	return opts
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
