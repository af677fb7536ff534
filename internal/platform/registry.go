// Package platform holds the catalog of social-media destinations the content
// strategist can target. Definitions live in an embedded YAML file so prompt
// guidance can evolve without code changes.
package platform

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/platforms.yaml
var configFiles embed.FS

// Definition describes one platform and the per-field guidance fed to the
// generation prompt.
type Definition struct {
	Key         string   `yaml:"key" json:"key"`
	DisplayName string   `yaml:"display_name" json:"displayName"`
	Default     bool     `yaml:"default" json:"default"`
	Guidance    []string `yaml:"guidance" json:"-"`
}

type registryFile struct {
	Platforms []Definition `yaml:"platforms"`
}

// Registry manages the platform catalog loaded from the embedded YAML file.
type Registry struct {
	platforms []Definition
	byKey     map[string]*Definition
	mu        sync.RWMutex
}

// NewRegistry loads the embedded platform definitions.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/platforms.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read platform config: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal platform config: %w", err)
	}
	if len(file.Platforms) == 0 {
		return nil, fmt.Errorf("platform config defines no platforms")
	}

	r := &Registry{
		platforms: file.Platforms,
		byKey:     make(map[string]*Definition, len(file.Platforms)),
	}
	for i := range r.platforms {
		r.byKey[r.platforms[i].Key] = &r.platforms[i]
	}

	return r, nil
}

// Get returns the definition for a platform key.
func (r *Registry) Get(key string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("unknown platform: %s", key)
	}
	return def, nil
}

// List returns all platform definitions in catalog order.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, len(r.platforms))
	copy(out, r.platforms)
	return out
}

// Defaults returns the platforms recommended when a prompt names none.
func (r *Registry) Defaults() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Definition
	for _, p := range r.platforms {
		if p.Default {
			out = append(out, p)
		}
	}
	return out
}
