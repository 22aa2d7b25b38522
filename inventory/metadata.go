package inventory

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/challey74/netinv"
)

// Metadata describes one saved inventory: who it is, when it was captured,
// and how many hosts it held. It is stored as a YAML sidecar next to the
// hosts file so saved inventories can be listed without parsing hosts.
type Metadata struct {
	// ID uniquely identifies this saved inventory.
	ID string `yaml:"id"`

	// Name is the operator-chosen save name.
	Name string `yaml:"name"`

	// CreatedAt is when the inventory was captured.
	CreatedAt time.Time `yaml:"created_at"`

	// Hosts is the record count at capture time.
	Hosts int `yaml:"hosts"`
}

// NewMetadata creates metadata for a freshly captured inventory.
func NewMetadata(name string, hostCount int) Metadata {
	return Metadata{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Hosts:     hostCount,
	}
}

// SaveMetadata writes the metadata sidecar to path.
func SaveMetadata(md Metadata, path string) error {
	data, err := yaml.Marshal(md)
	if err != nil {
		return netinv.NewConfigError("inventory.SaveMetadata",
			fmt.Errorf("marshal metadata: %w", err))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return netinv.NewConfigError("inventory.SaveMetadata",
			fmt.Errorf("write metadata: %w", err))
	}
	return nil
}

// LoadMetadata reads a metadata sidecar from path.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, netinv.NewConfigError("inventory.LoadMetadata",
			fmt.Errorf("read metadata: %w", err))
	}

	var md Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return Metadata{}, netinv.NewConfigError("inventory.LoadMetadata",
			fmt.Errorf("parse metadata %s: %w", path, err))
	}
	return md, nil
}
