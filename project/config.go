package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest file names recognized inside a project directory.
const (
	manifestYAML = "project.yaml"
	manifestYML  = "project.yml"
)

// DefaultAssetRoot is the asset directory used when the manifest does not
// name one.
const DefaultAssetRoot = "Assets"

// ErrNoManifest is returned when a directory holds no project manifest.
var ErrNoManifest = errors.New("project: no project.yaml or project.yml found")

// Config represents a project.yaml manifest. It names the documents a scan
// can enumerate: the scene currently being worked on, the build list of
// scenes, and the asset tree.
type Config struct {
	// Name is the human-readable project name.
	Name string `yaml:"name"`

	// CurrentScene is the manifest-relative path of the scene document a
	// plain scan targets. Optional.
	CurrentScene string `yaml:"current_scene,omitempty"`

	// Scenes is the ordered build list. Disabled entries are kept in the
	// manifest but skipped by the enabled-scenes enumerator.
	Scenes []SceneEntry `yaml:"scenes,omitempty"`

	// AssetRoot is the directory holding asset documents, relative to the
	// manifest. Defaults to DefaultAssetRoot.
	AssetRoot string `yaml:"asset_root,omitempty"`
}

// SceneEntry is one line of the manifest's scene build list.
type SceneEntry struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// Load reads and parses a project manifest from the given path.
// If the path is a directory, it looks for project.yaml or project.yml in
// that directory.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	var configPath string
	if info.IsDir() {
		yamlPath := filepath.Join(path, manifestYAML)
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, manifestYML)
			if _, err := os.Stat(ymlPath); err == nil {
				configPath = ymlPath
			} else {
				return nil, fmt.Errorf("%w in %s", ErrNoManifest, path)
			}
		}
	} else {
		configPath = path
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &config, nil
}

// Find searches for a project manifest starting from the given directory
// and walking up to parent directories until found or the filesystem root
// is reached. It returns the directory containing the manifest.
func Find(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		yamlPath := filepath.Join(absDir, manifestYAML)
		if _, err := os.Stat(yamlPath); err == nil {
			return absDir, nil
		}
		ymlPath := filepath.Join(absDir, manifestYML)
		if _, err := os.Stat(ymlPath); err == nil {
			return absDir, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", fmt.Errorf("%w in %s or parent directories", ErrNoManifest, dir)
		}
		absDir = parent
	}
}

// EnabledScenes returns the paths of the build-list entries marked enabled,
// in manifest order.
func (c *Config) EnabledScenes() []string {
	var paths []string
	for _, entry := range c.Scenes {
		if entry.Enabled {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}
