package inventory

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/challey74/netinv/host"
)

// Pre-run inventory hygiene. These run once after loading, before any
// filtering or task execution, and log every host they drop.

// DomainPattern builds the pattern a conforming host name must match:
// anything ending in ".<domain>", optionally followed by a ":n" stack
// position suffix.
func DomainPattern(domain string) string {
	escaped := strings.ReplaceAll(domain, ".", `\.`)
	return fmt.Sprintf(`^.*\.%s(?::\d+)?$`, escaped)
}

// FilterConforming drops hosts whose name does not end with the given
// domain. An empty domain disables the check and returns the input
// unchanged. A nil logger falls back to slog.Default().
func FilterConforming(recs []*host.Record, domain string, logger *slog.Logger) []*host.Record {
	if domain == "" {
		return recs
	}
	if logger == nil {
		logger = slog.Default()
	}

	re := regexp.MustCompile(DomainPattern(domain))
	out := make([]*host.Record, 0, len(recs))
	for _, rec := range recs {
		if !re.MatchString(rec.Name) {
			logger.Warn("removing host with non-conforming name",
				"host", rec.Name,
				"domain", domain)
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ElectStackMasters resolves stack-member records down to their masters.
// A host whose name carries a ":n" position suffix must have virtual
// chassis data with an elected master; members that are not the master are
// dropped, and the master keeps its inventory name but has the position
// suffix stripped from the hostname it connects to. Stacks missing chassis
// or master data are dropped entirely, since automation cannot safely pick
// a member to talk to.
func ElectStackMasters(recs []*host.Record, logger *slog.Logger) []*host.Record {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]*host.Record, 0, len(recs))
	for _, rec := range recs {
		if !strings.Contains(rec.Name, ":") {
			out = append(out, rec)
			continue
		}

		if rec.GetMap("virtual_chassis") == nil {
			logger.Error("stack member has no virtual chassis assigned, removing",
				"host", rec.Name)
			continue
		}
		masterID := rec.GetInt("virtual_chassis.master.id", 0)
		if masterID == 0 {
			logger.Error("stack has no master assigned, removing",
				"host", rec.Name)
			continue
		}
		if rec.GetInt("id", 0) != masterID {
			logger.Info("stack member is not the master, removing",
				"host", rec.Name)
			continue
		}

		short, _, _ := strings.Cut(rec.Hostname, ":")
		rec.Hostname = short
		logger.Info("stack master elected", "host", rec.Name, "hostname", rec.Hostname)
		out = append(out, rec)
	}
	return out
}
