// Package portspec turns a textual port specification into a concrete,
// sorted, deduplicated port work set.
package portspec

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const maxPort = 65535

// ErrInvalid is wrapped by every parse failure.
var ErrInvalid = errors.New("invalid port spec")

// Parse parses a port specification and returns the described ports sorted
// ascending with duplicates removed. Supported forms:
//   - single: "22"
//   - list: "22,80,443"
//   - range: "1-1024" (inclusive)
//   - mixed: "22,80,8000-8100"
//
// Empty specs, empty tokens between commas, non-numeric tokens, values
// outside 1-65535 and reversed ranges are rejected.
func Parse(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("%w: empty spec", ErrInvalid)
	}

	seen := make(map[int]struct{})
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("%w: empty token", ErrInvalid)
		}
		if strings.Contains(token, "-") {
			bounds := strings.SplitN(token, "-", 2)
			start, err := parsePort(bounds[0])
			if err != nil {
				return nil, err
			}
			end, err := parsePort(bounds[1])
			if err != nil {
				return nil, err
			}
			if start > end {
				return nil, fmt.Errorf("%w: range start %d greater than end %d", ErrInvalid, start, end)
			}
			for p := start; p <= end; p++ {
				seen[p] = struct{}{}
			}
		} else {
			p, err := parsePort(token)
			if err != nil {
				return nil, err
			}
			seen[p] = struct{}{}
		}
	}

	ports := make([]int, 0, len(seen))
	for p := range seen {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports, nil
}

func parsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a port number", ErrInvalid, s)
	}
	if p < 1 || p > maxPort {
		return 0, fmt.Errorf("%w: port %d out of range 1-%d", ErrInvalid, p, maxPort)
	}
	return p, nil
}
