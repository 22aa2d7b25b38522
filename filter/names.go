package filter

import (
	"strings"

	"github.com/challey74/netinv/host"
)

// Convenience predicates over host names. These cover the common
// name-based narrowing commands without building registry criteria.

// NameContains keeps hosts whose name contains any of the given substrings.
// Substrings are trimmed of surrounding whitespace; empty substrings are
// ignored.
func NameContains(hosts []*host.Record, substrs []string) []*host.Record {
	needles := make([]string, 0, len(substrs))
	for _, s := range substrs {
		if s = strings.TrimSpace(s); s != "" {
			needles = append(needles, s)
		}
	}

	out := make([]*host.Record, 0, len(hosts))
	for _, rec := range hosts {
		for _, needle := range needles {
			if strings.Contains(rec.Name, needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// KeepNamed keeps hosts whose normalized short name is in the given set.
// Names are compared lowercased with any domain suffix removed, so a filter
// file listing "sw01" matches "SW01.corp.example.com".
func KeepNamed(hosts []*host.Record, names []string) []*host.Record {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		short, _, _ := strings.Cut(n, ".")
		wanted[short] = struct{}{}
	}

	out := make([]*host.Record, 0, len(hosts))
	for _, rec := range hosts {
		if _, ok := wanted[rec.Normalize()]; ok {
			out = append(out, rec)
		}
	}
	return out
}
