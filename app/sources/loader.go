package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type sourceSpec struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	URL      string `yaml:"url"`
	Enabled  *bool  `yaml:"enabled"`
}

type registryFile struct {
	Sources []sourceSpec `yaml:"sources"`
}

// Load reads a registry file and replaces the built-in registry with its
// contents. Declaration order in the file becomes registry order.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s defines no sources", path)
	}

	srcs := make([]Source, 0, len(file.Sources))
	for i, spec := range file.Sources {
		source, err := buildSource(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid source at index %d: %w", i, err)
		}
		srcs = append(srcs, source)
	}
	registry := New(srcs)

	if err := validate(registry); err != nil {
		return nil, fmt.Errorf("invalid sources file %s: %w", path, err)
	}

	return registry, nil
}

func buildSource(spec sourceSpec) (Source, error) {
	if spec.Name == "" {
		return Source{}, fmt.Errorf("source name is required")
	}
	if spec.URL == "" {
		return Source{}, fmt.Errorf("source URL is required")
	}
	if spec.Category == "" {
		return Source{}, fmt.Errorf("source category is required")
	}

	validCategories := map[Category]bool{
		CategoryNews:        true,
		CategoryPodcast:     true,
		CategoryPublication: true,
	}

	category := Category(spec.Category)
	if !validCategories[category] {
		return Source{}, fmt.Errorf("unknown category: %s", spec.Category)
	}

	// Sources are enabled unless the file says otherwise
	enabled := spec.Enabled == nil || *spec.Enabled

	return Source{
		Name:     spec.Name,
		Category: category,
		URL:      spec.URL,
		Enabled:  enabled,
	}, nil
}

func validate(registry *Registry) error {
	seen := make(map[string]bool, len(registry.sources))
	for _, source := range registry.sources {
		if seen[source.Name] {
			return fmt.Errorf("duplicate source name: %s", source.Name)
		}
		seen[source.Name] = true
	}
	return nil
}
