package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// IsJSON reports whether path names a JSON file.
func IsJSON(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

// Load decodes the file at path into dst. Fields absent from the file keep
// the values dst already holds, so callers can pre-fill defaults.
func Load(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if IsJSON(path) {
		err = json.Unmarshal(data, dst)
	} else {
		err = yaml.Unmarshal(data, dst)
	}
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

// Save encodes v to path as JSON or YAML, replacing any existing file.
func Save(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if IsJSON(path) {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// SearchPaths lists the candidate locations for filename in lookup order.
// The home directory is skipped when it cannot be determined.
func SearchPaths(filename string) []string {
	paths := make([]string, 0, 3)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, filename))
	}
	paths = append(paths, filepath.Join(".", filename), filename)
	return paths
}

// Find returns the first search-path candidate that is a regular file.
func Find(filename string) (string, error) {
	paths := SearchPaths(filename)
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, strings.Join(paths, ", "))
}

// LoadFromSearchPath finds filename on the search path and decodes it into
// dst. It returns the path that was loaded.
func LoadFromSearchPath(filename string, dst any) (string, error) {
	path, err := Find(filename)
	if err != nil {
		return "", err
	}
	if err = Load(path, dst); err != nil {
		return "", err
	}
	return path, nil
}
