package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ProjectFileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %s", ProjectFileName, err)
	}
	return dir
}

func TestLoadProject(t *testing.T) {
	dir := writeProject(t, `
entry: programa.lina
color: never
cache: false
cache_path: /tmp/lina-cache.db
`)

	p, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if p.Entry != "programa.lina" {
		t.Errorf("entry = %q", p.Entry)
	}
	if p.Color != "never" {
		t.Errorf("color = %q", p.Color)
	}
	if p.CacheEnabled() {
		t.Errorf("cache should be disabled")
	}
	if p.CachePath != "/tmp/lina-cache.db" {
		t.Errorf("cache_path = %q", p.CachePath)
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	p, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("missing file must not error: %s", err)
	}
	if p.Entry != "" || p.CachePath != "" {
		t.Errorf("missing file should yield the zero project: %#v", p)
	}
	if !p.CacheEnabled() {
		t.Errorf("cache defaults to enabled")
	}
}

func TestLoadProjectMalformed(t *testing.T) {
	dir := writeProject(t, "entry: [broken")
	if _, err := LoadProject(dir); err == nil {
		t.Errorf("malformed yaml must error")
	}
}

func TestResolveCachePath(t *testing.T) {
	p := &Project{CachePath: "/var/tmp/custom.db"}
	got, err := p.ResolveCachePath()
	if err != nil {
		t.Fatalf("resolve: %s", err)
	}
	if got != "/var/tmp/custom.db" {
		t.Errorf("path = %q, want the override", got)
	}

	got, err = (&Project{}).ResolveCachePath()
	if err != nil {
		t.Skipf("no user cache dir in this environment: %s", err)
	}
	if !strings.HasSuffix(got, filepath.FromSlash(DefaultCacheFile)) {
		t.Errorf("default path = %q, want suffix %q", got, DefaultCacheFile)
	}
}
