package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/challey74/netinv"
	"github.com/challey74/netinv/host"
	"github.com/challey74/netinv/registry"
)

// hostEntry is the YAML shape of one host in an inventory file.
type hostEntry struct {
	Hostname string         `yaml:"hostname"`
	Port     int            `yaml:"port,omitempty"`
	Platform string         `yaml:"platform,omitempty"`
	Data     map[string]any `yaml:"data,omitempty"`
}

// Load reads and parses a hosts file from the given path. The file maps
// inventory names to host entries:
//
//	sw01.corp.example.com:
//	  hostname: 10.0.0.11
//	  platform: cisco_ios
//	  data:
//	    site:
//	      id: 4
//	      slug: hq
//
// YAML mappings carry no order, so the returned records are sorted by name
// to keep loads deterministic.
func Load(path string) ([]*host.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, netinv.NewConfigError("inventory.Load",
			fmt.Errorf("read hosts file: %w", err))
	}

	var entries map[string]hostEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, netinv.NewConfigError("inventory.Load",
			fmt.Errorf("parse hosts file %s: %w", path, err))
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	recs := make([]*host.Record, 0, len(entries))
	for _, name := range names {
		entry := entries[name]
		hostname := entry.Hostname
		if hostname == "" {
			hostname = name
		}
		recs = append(recs, &host.Record{
			Name:     name,
			Hostname: hostname,
			Port:     entry.Port,
			Platform: entry.Platform,
			Data:     entry.Data,
		})
	}
	return recs, nil
}

// LoadDir loads every .yaml and .yml hosts file in a directory, in
// lexical filename order.
func LoadDir(dir string) ([]*host.Record, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, netinv.NewConfigError("inventory.LoadDir",
			fmt.Errorf("read inventory dir: %w", err))
	}

	var recs []*host.Record
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		switch filepath.Ext(de.Name()) {
		case ".yaml", ".yml":
		default:
			continue
		}
		loaded, err := Load(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, err
		}
		recs = append(recs, loaded...)
	}
	return recs, nil
}

// Validate checks every loaded record against the schema registry. Each
// attribute whose dotted path resolves to a known spec must pass that
// spec's validation; attributes the registry does not name are allowed,
// since upstream payloads carry more than the schema describes. One error
// is returned per offending host attribute.
func Validate(recs []*host.Record, reg *registry.Registry) []error {
	var errs []error
	for _, rec := range recs {
		for _, f := range reg.Flatten() {
			value, ok := rec.Lookup(f.Path)
			if !ok {
				continue
			}
			if err := f.Spec.Validate(value); err != nil {
				errs = append(errs, netinv.NewValidationError("inventory.Validate", err).
					WithContext(map[string]any{"host": rec.Name, "field": f.Path}))
			}
		}
	}
	return errs
}
