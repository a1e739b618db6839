package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lanternworks/refscan/scene"
)

// ErrBadDocument is returned when a scene or prefab document is
// structurally invalid.
var ErrBadDocument = errors.New("project: malformed document")

// document mirrors the YAML layout of scene and prefab files. The header
// fields double as the asset catalog header.
type document struct {
	GUID    string        `yaml:"guid,omitempty"`
	Kind    string        `yaml:"kind,omitempty"`
	Name    string        `yaml:"name,omitempty"`
	Objects []objectEntry `yaml:"objects"`
}

type objectEntry struct {
	ID       int64       `yaml:"id"`
	Name     string      `yaml:"name"`
	Active   *bool       `yaml:"active"`
	Children []int64     `yaml:"children"`
	Parts    []partEntry `yaml:"parts"`
}

type partEntry struct {
	Type       string          `yaml:"type"`
	Script     string          `yaml:"script"`
	Properties []propertyEntry `yaml:"properties"`
}

type propertyEntry struct {
	Name string    `yaml:"name"`
	Kind string    `yaml:"kind"`
	Ref  *refEntry `yaml:"ref"`
}

type refEntry struct {
	ID     int64  `yaml:"id"`
	GUID   string `yaml:"guid"`
	Marker string `yaml:"marker"`
}

// DecodeScene reads one scene or prefab document and builds its object
// tree. Reference resolution is frozen here: a local id resolves iff it is
// declared in this document's object table, a guid resolves iff the catalog
// holds it. A nil catalog resolves no guids.
func DecodeScene(path string, cat *Catalog) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	name := doc.Name
	if name == "" {
		name = baseName(filepath.ToSlash(path))
	}

	sc := scene.NewScene(name)
	if err := decodeInto(sc, &doc, cat); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return sc, nil
}

// decodeInto appends the document's object trees to sc. Top-level objects,
// the ones no other object lists as a child, become roots in declaration
// order.
func decodeInto(sc *scene.Scene, doc *document, cat *Catalog) error {
	declared := make(map[int64]bool, len(doc.Objects))
	for _, obj := range doc.Objects {
		if obj.ID <= 0 {
			return fmt.Errorf("%w: object id must be positive, got %d", ErrBadDocument, obj.ID)
		}
		if declared[obj.ID] {
			return fmt.Errorf("%w: object id %d declared twice", ErrBadDocument, obj.ID)
		}
		declared[obj.ID] = true
	}

	byID := make(map[int64]*objectEntry, len(doc.Objects))
	parented := make(map[int64]int64, len(doc.Objects))
	for i := range doc.Objects {
		obj := &doc.Objects[i]
		byID[obj.ID] = obj
		for _, child := range obj.Children {
			if !declared[child] {
				return fmt.Errorf("%w: object %d lists unknown child %d", ErrBadDocument, obj.ID, child)
			}
			if parent, ok := parented[child]; ok {
				return fmt.Errorf("%w: object %d claimed by parents %d and %d", ErrBadDocument, child, parent, obj.ID)
			}
			parented[child] = obj.ID
		}
	}

	inserted := 0
	for _, obj := range doc.Objects {
		if _, hasParent := parented[obj.ID]; hasParent {
			continue
		}
		n, err := insertObject(sc, scene.NoNode, byID[obj.ID], byID, declared, cat)
		if err != nil {
			return err
		}
		inserted += n
	}

	if inserted != len(doc.Objects) {
		return fmt.Errorf("%w: %d objects unreachable from any root", ErrBadDocument, len(doc.Objects)-inserted)
	}
	return nil
}

// insertObject adds one object and its subtree to the arena, returning how
// many objects it inserted.
func insertObject(sc *scene.Scene, parent scene.NodeID, obj *objectEntry, byID map[int64]*objectEntry, declared map[int64]bool, cat *Catalog) (int, error) {
	id := sc.AddNode(parent, obj.Name)
	if obj.Active != nil {
		sc.Node(id).Active = *obj.Active
	}

	parts := make([]scene.Part, 0, len(obj.Parts))
	for _, entry := range obj.Parts {
		part, err := buildPart(entry, declared, cat)
		if err != nil {
			return 0, fmt.Errorf("object %d: %w", obj.ID, err)
		}
		parts = append(parts, part)
	}
	sc.Attach(id, parts...)

	count := 1
	for _, child := range obj.Children {
		n, err := insertObject(sc, id, byID[child], byID, declared, cat)
		if err != nil {
			return 0, err
		}
		count += n
	}
	return count, nil
}

// buildPart resolves one part entry. A part is named either by a literal
// type or by the guid of a script asset; a script guid that is absent from
// the catalog, or names a non-script asset, leaves the part unresolvable.
func buildPart(entry partEntry, declared map[int64]bool, cat *Catalog) (scene.Part, error) {
	props := make([]scene.Property, 0, len(entry.Properties))
	for _, p := range entry.Properties {
		prop, err := buildProperty(p, declared, cat)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}

	if entry.Script != "" {
		guid, err := uuid.Parse(entry.Script)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid script guid %q: %v", ErrBadDocument, entry.Script, err)
		}
		asset, ok := cat.Lookup(guid)
		if !ok || asset.Kind != AssetScript {
			return scene.NewUnresolvableStaticPart(entry.Type, props...), nil
		}
		return scene.NewStaticPart(asset.Name, props...), nil
	}

	if entry.Type == "" {
		return scene.NewUnresolvableStaticPart("", props...), nil
	}
	return scene.NewStaticPart(entry.Type, props...), nil
}

// buildProperty resolves one property entry. When both a local id and a
// guid are recorded, the local id decides resolution.
func buildProperty(p propertyEntry, declared map[int64]bool, cat *Catalog) (scene.Property, error) {
	kind := scene.PropertyKind(p.Kind)
	if p.Kind == "" {
		if p.Ref != nil {
			kind = scene.KindObjectRef
		} else {
			kind = scene.KindString
		}
	}

	if kind != scene.KindObjectRef {
		return scene.NewStaticProperty(p.Name, kind), nil
	}

	var ref scene.Ref
	resolved := false
	marker := ""
	if p.Ref != nil {
		ref.ID = p.Ref.ID
		if p.Ref.GUID != "" {
			guid, err := uuid.Parse(p.Ref.GUID)
			if err != nil {
				return nil, fmt.Errorf("%w: property %q: invalid guid %q: %v", ErrBadDocument, p.Name, p.Ref.GUID, err)
			}
			ref.GUID = guid
		}
		marker = p.Ref.Marker

		switch {
		case ref.ID != 0:
			resolved = declared[ref.ID]
		case ref.GUID != uuid.Nil:
			_, resolved = cat.Lookup(ref.GUID)
		}
	}

	prop := scene.NewStaticRef(p.Name, ref, resolved)
	if marker != "" {
		prop = prop.WithMarker(marker)
	}
	return prop, nil
}
