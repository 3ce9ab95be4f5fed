package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// configFileNames are the file names probed by FindConfigFile, in order.
var configFileNames = []string{
	"prestic.toml",
	"prestic.yaml",
	"prestic.yml",
}

// Load reads and decodes a configuration file into a Store. The format is
// chosen by file extension (.toml, .yaml, .yml). Any .env or .env.local
// file next to the configuration is loaded first so that ${VAR} references
// in string values can be expanded.
func Load(path string) (*Store, error) {
	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	raw, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return NewStore(raw), nil
}

// decode parses raw bytes into a RawConfig. Top-level keys that are not
// tables (stray scalars at the document root) are skipped rather than
// rejected.
func decode(data []byte, ext string) (RawConfig, error) {
	var document map[string]any

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &document); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &document); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", ext)
	}

	raw := make(RawConfig, len(document))
	for name, value := range document {
		section, ok := value.(map[string]any)
		if !ok {
			continue
		}
		raw[name] = expandSection(section)
	}
	return raw, nil
}

// expandSection applies environment variable expansion to string values,
// including strings inside lists.
func expandSection(section map[string]any) map[string]any {
	expanded := make(map[string]any, len(section))
	for key, value := range section {
		switch v := value.(type) {
		case string:
			expanded[key] = os.ExpandEnv(v)
		case []any:
			items := make([]any, len(v))
			for i, item := range v {
				if s, ok := item.(string); ok {
					items[i] = os.ExpandEnv(s)
				} else {
					items[i] = item
				}
			}
			expanded[key] = items
		default:
			expanded[key] = value
		}
	}
	return expanded
}

// loadEnvFiles loads .env and .env.local from dir when present. Failures
// are warnings, not errors.
func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(dir, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envFile, err)
		}
	}
}

// FindConfigFile walks up from the current directory looking for a
// configuration file with one of the recognized names.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in this directory or any parent", configFileNames[0])
		}
		dir = parent
	}
}
