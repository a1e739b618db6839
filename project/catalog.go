package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// AssetKind classifies a catalogued asset document.
type AssetKind string

const (
	// AssetScript is a behavior definition. Script assets resolve part
	// type names in scene and prefab documents.
	AssetScript AssetKind = "script"

	// AssetPrefab is a reusable object tree.
	AssetPrefab AssetKind = "prefab"

	// AssetScene is a scene document stored under the asset root.
	AssetScene AssetKind = "scene"

	// AssetMaterial is a material definition.
	AssetMaterial AssetKind = "material"

	// AssetTexture is a texture descriptor.
	AssetTexture AssetKind = "texture"

	// AssetGeneric is any other catalogued document.
	AssetGeneric AssetKind = "asset"
)

// IsValid returns true if the asset kind is valid.
func (k AssetKind) IsValid() bool {
	switch k {
	case AssetScript, AssetPrefab, AssetScene, AssetMaterial, AssetTexture, AssetGeneric:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k AssetKind) String() string {
	return string(k)
}

// ParseAssetKind parses a string into an AssetKind value.
// Unknown strings map to AssetGeneric; only the empty string is an error.
func ParseAssetKind(s string) (AssetKind, error) {
	if s == "" {
		return "", fmt.Errorf("empty asset kind")
	}
	kind := AssetKind(s)
	if !kind.IsValid() {
		return AssetGeneric, nil
	}
	return kind, nil
}

// AllAssetKinds returns all valid asset kinds.
func AllAssetKinds() []AssetKind {
	return []AssetKind{
		AssetScript,
		AssetPrefab,
		AssetScene,
		AssetMaterial,
		AssetTexture,
		AssetGeneric,
	}
}

// ErrDuplicateGUID is returned when two asset documents carry the same guid.
var ErrDuplicateGUID = errors.New("project: duplicate asset guid")

// Asset is one catalogued document under the asset root.
type Asset struct {
	// GUID identifies the asset across documents.
	GUID uuid.UUID

	// Path is the document path relative to the catalog root, in slash form.
	Path string

	// Kind classifies the document.
	Kind AssetKind

	// Name is the asset's display name. Defaults to the file base name
	// with extensions stripped.
	Name string
}

// Catalog indexes the asset documents of a project by guid. A catalog is
// built once per scan; reference resolvability is frozen against it.
type Catalog struct {
	root   string
	byGUID map[uuid.UUID]*Asset
	assets []*Asset
}

// BuildCatalog walks the directory tree under root and indexes every YAML
// document that declares a guid header. Files that are not YAML mappings,
// or carry no guid, are not assets and are skipped. A syntactically invalid
// guid and a guid declared twice are both errors.
func BuildCatalog(root string) (*Catalog, error) {
	cat := &Catalog{
		root:   root,
		byGUID: make(map[uuid.UUID]*Asset),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		asset, ok, err := readAssetHeader(path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if prev, exists := cat.byGUID[asset.GUID]; exists {
			return fmt.Errorf("%w: %s shared by %s and %s",
				ErrDuplicateGUID, asset.GUID, prev.Path, asset.Path)
		}
		cat.byGUID[asset.GUID] = asset
		cat.assets = append(cat.assets, asset)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	sort.Slice(cat.assets, func(i, j int) bool {
		return cat.assets[i].Path < cat.assets[j].Path
	})
	return cat, nil
}

// readAssetHeader decodes just the identifying header of a document.
// ok is false when the file is not an asset document.
func readAssetHeader(path, rel string) (*Asset, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", rel, err)
	}

	var header struct {
		GUID string `yaml:"guid"`
		Kind string `yaml:"kind"`
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, false, nil
	}
	if header.GUID == "" {
		return nil, false, nil
	}

	guid, err := uuid.Parse(header.GUID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: invalid guid %q: %w", rel, header.GUID, err)
	}

	kind := AssetGeneric
	if header.Kind != "" {
		kind, _ = ParseAssetKind(header.Kind)
	}

	name := header.Name
	if name == "" {
		name = baseName(rel)
	}

	return &Asset{GUID: guid, Path: rel, Kind: kind, Name: name}, true, nil
}

// baseName strips the directory and all extensions from a slash path, so
// "Scripts/FollowCamera.script.yaml" becomes "FollowCamera".
func baseName(rel string) string {
	name := rel
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}

// Root returns the directory the catalog was built from.
func (c *Catalog) Root() string {
	if c == nil {
		return ""
	}
	return c.root
}

// Len returns the number of catalogued assets.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.assets)
}

// Lookup returns the asset with the given guid. A nil catalog resolves
// nothing.
func (c *Catalog) Lookup(guid uuid.UUID) (*Asset, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.byGUID[guid]
	return a, ok
}

// Assets returns all catalogued assets in lexical path order.
func (c *Catalog) Assets() []*Asset {
	if c == nil {
		return nil
	}
	out := make([]*Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// ByKind returns the catalogued assets of one kind, in lexical path order.
func (c *Catalog) ByKind(kind AssetKind) []*Asset {
	if c == nil {
		return nil
	}
	var out []*Asset
	for _, a := range c.assets {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}
