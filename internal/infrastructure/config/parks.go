package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParksConfig holds the parks managed from one project directory.
type ParksConfig struct {
	Parks map[string]ParkEntry `yaml:"parks,omitempty"`
}

// ParkEntry holds configuration for a specific park.
type ParkEntry struct {
	Dir         string `yaml:"dir"`
	Description string `yaml:"description,omitempty"`
}

// LoadParks loads park configuration from the .thanepark directory.
func LoadParks(basePath string) (*ParksConfig, error) {
	data, err := os.ReadFile(ParksFilePath(basePath))
	if os.IsNotExist(err) {
		return &ParksConfig{
			Parks: make(map[string]ParkEntry),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading parks file: %w", err)
	}

	var cfg ParksConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing parks file: %w", err)
	}

	if cfg.Parks == nil {
		cfg.Parks = make(map[string]ParkEntry)
	}

	return &cfg, nil
}

// Save writes the parks configuration to the parks file.
func (p *ParksConfig) Save(basePath string) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling parks config: %w", err)
	}

	if err := os.WriteFile(ParksFilePath(basePath), data, 0600); err != nil {
		return fmt.Errorf("writing parks file: %w", err)
	}

	return nil
}

// Add registers a park.
func (p *ParksConfig) Add(name string, entry ParkEntry) {
	if p.Parks == nil {
		p.Parks = make(map[string]ParkEntry)
	}
	p.Parks[name] = entry
}

// Remove unregisters a park.
func (p *ParksConfig) Remove(name string) {
	if p.Parks != nil {
		delete(p.Parks, name)
	}
}

// Get returns the configuration for a specific park.
func (p *ParksConfig) Get(name string) (*ParkEntry, error) {
	if len(p.Parks) == 0 {
		return nil, errors.New("no parks configured")
	}

	entry, ok := p.Parks[name]
	if !ok {
		names := p.Names()
		if len(names) > 5 {
			names = append(names[:5], "...")
		}
		return nil, fmt.Errorf("park %q not found (available: %s)", name, strings.Join(names, ", "))
	}

	return &entry, nil
}

// Names returns the registered park names in sorted order.
func (p *ParksConfig) Names() []string {
	names := make([]string, 0, len(p.Parks))
	for k := range p.Parks {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Has checks if a park is registered.
func (p *ParksConfig) Has(name string) bool {
	_, ok := p.Parks[name]
	return ok
}

// ParksExists checks if a parks file exists in the given path.
func ParksExists(basePath string) bool {
	_, err := os.Stat(filepath.Join(basePath, DefaultConfigDir, DefaultParksFile))
	return err == nil
}
