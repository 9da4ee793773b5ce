// Package config holds toolchain constants and the optional per-project
// configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Project is the lina.yaml file layout. All fields are optional.
type Project struct {
	// Entry is the default source file for `lina run` / `lina build`
	// when no file argument is given.
	Entry string `yaml:"entry"`

	// Color controls diagnostic coloring: "auto" (default), "always"
	// or "never".
	Color string `yaml:"color"`

	// Cache toggles the build cache (default true).
	Cache *bool `yaml:"cache"`

	// CachePath overrides the build cache location.
	CachePath string `yaml:"cache_path"`
}

// LoadProject reads lina.yaml from dir. A missing file yields the zero
// Project and no error; a malformed file is an error.
func LoadProject(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Project{}, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", ProjectFileName, err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", ProjectFileName, err)
	}
	return &p, nil
}

// CacheEnabled reports whether the build cache should be used.
func (p *Project) CacheEnabled() bool {
	return p.Cache == nil || *p.Cache
}

// ResolveCachePath returns the configured cache path, falling back to
// the user cache directory.
func (p *Project) ResolveCachePath() (string, error) {
	if p.CachePath != "" {
		return p.CachePath, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving cache dir: %w", err)
	}
	return filepath.Join(base, filepath.FromSlash(DefaultCacheFile)), nil
}
