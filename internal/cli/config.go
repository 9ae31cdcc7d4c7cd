package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/devscalar/internal/devmem"
)

// Config selects the process-wide device memory resource.
type Config struct {
	// Resource names the memory resource: "standard" (plain arrow
	// allocator) or "tracking" (ledger of live allocations).
	Resource string `yaml:"resource"`
}

// ValidResources defines the allowed resource names.
var ValidResources = []string{"standard", "tracking"}

// LoadConfig reads and validates a yaml config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Resource == "" {
		cfg.Resource = "standard"
	}
	if !isValidResource(cfg.Resource) {
		return nil, fmt.Errorf("invalid resource %q: must be one of %v", cfg.Resource, ValidResources)
	}
	return cfg, nil
}

func isValidResource(name string) bool {
	for _, r := range ValidResources {
		if r == name {
			return true
		}
	}
	return false
}

// applyConfig installs the configured resource as the process default.
func applyConfig(cfg *Config) {
	switch cfg.Resource {
	case "tracking":
		devmem.SetCurrent(devmem.NewTrackingResource(devmem.NewStandardResource(nil)))
	default:
		devmem.SetCurrent(devmem.NewStandardResource(nil))
	}
}
