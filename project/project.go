package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lanternworks/refscan/scene"
)

// Project is an opened content project: the parsed manifest plus the asset
// catalog built from its asset root. Both are frozen at Open time.
type Project struct {
	root    string
	config  *Config
	catalog *Catalog
}

// Open loads the manifest at path (a manifest file or a directory holding
// one) and builds the asset catalog.
//
// An asset root named by the manifest must exist. When the manifest names
// none, the default root is used if present and the catalog is empty
// otherwise.
func Open(path string) (*Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	root := path
	if !info.IsDir() {
		root = filepath.Dir(path)
	}

	config, err := Load(path)
	if err != nil {
		return nil, err
	}

	assetRoot := config.AssetRoot
	defaulted := assetRoot == ""
	if defaulted {
		assetRoot = DefaultAssetRoot
	}
	assetDir := filepath.Join(root, filepath.FromSlash(assetRoot))

	var catalog *Catalog
	if _, err := os.Stat(assetDir); err != nil {
		if !defaulted || !os.IsNotExist(err) {
			return nil, fmt.Errorf("asset root %s: %w", assetRoot, err)
		}
		catalog = &Catalog{root: assetDir, byGUID: map[uuid.UUID]*Asset{}}
	} else {
		catalog, err = BuildCatalog(assetDir)
		if err != nil {
			return nil, err
		}
	}

	return &Project{root: root, config: config, catalog: catalog}, nil
}

// Root returns the directory holding the manifest.
func (p *Project) Root() string {
	return p.root
}

// Config returns the parsed manifest.
func (p *Project) Config() *Config {
	return p.config
}

// Catalog returns the asset catalog.
func (p *Project) Catalog() *Catalog {
	return p.catalog
}

// LoadScene decodes one scene document against the project's catalog. A
// relative path is taken relative to the project root.
func (p *Project) LoadScene(path string) (*scene.Scene, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.root, filepath.FromSlash(path))
	}
	return DecodeScene(path, p.catalog)
}

// LoadAssets decodes every prefab document in the catalog into one shared
// scene named after the asset context. Each prefab's top-level objects
// become roots of the shared scene, prefabs in lexical path order. Object
// ids stay local to their own document; prefabs reference each other
// through guids only.
func (p *Project) LoadAssets() (*scene.Scene, error) {
	sc := scene.NewScene(AssetContextLabel)
	for _, asset := range p.catalog.ByKind(AssetPrefab) {
		path := filepath.Join(p.catalog.Root(), filepath.FromSlash(asset.Path))

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read prefab %s: %w", asset.Path, err)
		}
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse prefab %s: %w", asset.Path, err)
		}
		if err := decodeInto(sc, &doc, p.catalog); err != nil {
			return nil, fmt.Errorf("decode prefab %s: %w", asset.Path, err)
		}
	}
	return sc, nil
}
