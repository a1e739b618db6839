package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternworks/refscan/scene"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Level01.scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// openProps opens a part's property set and arranges for it to close.
func openProps(t *testing.T, part scene.Part) scene.PropertySet {
	t.Helper()
	props, err := part.OpenProperties()
	require.NoError(t, err)
	t.Cleanup(func() { _ = props.Close() })
	return props
}

func refAt(t *testing.T, props scene.PropertySet, i int) scene.RefProperty {
	t.Helper()
	ref, ok := props.At(i).(scene.RefProperty)
	require.True(t, ok, "property %d should be a reference", i)
	return ref
}

func TestDecodeScene_Tree(t *testing.T) {
	path := writeDoc(t, `kind: scene
name: Level01
objects:
  - id: 1
    name: Root
    children: [2, 3]
  - id: 2
    name: Camera
  - id: 3
    name: Rig
    active: false
    children: [4]
  - id: 4
    name: LeftArm
`)

	sc, err := DecodeScene(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "Level01", sc.Name())
	assert.Equal(t, 4, sc.Len())
	require.Len(t, sc.Roots(), 1)

	root := sc.Roots()[0]
	assert.Equal(t, "Root", sc.Node(root).Name)
	require.Len(t, sc.Node(root).Children, 2)

	camera := sc.Node(root).Children[0]
	rig := sc.Node(root).Children[1]
	assert.Equal(t, "Camera", sc.Node(camera).Name, "children keep declaration order")
	assert.Equal(t, "Rig", sc.Node(rig).Name)
	assert.True(t, sc.Node(camera).Active, "active defaults to true")
	assert.False(t, sc.Node(rig).Active)

	require.Len(t, sc.Node(rig).Children, 1)
	arm := sc.Node(rig).Children[0]
	assert.Equal(t, "Root/Rig/LeftArm", scene.FullPath(sc, arm))
}

func TestDecodeScene_NameFallsBackToFile(t *testing.T) {
	path := writeDoc(t, "objects:\n  - id: 1\n    name: Root\n")

	sc, err := DecodeScene(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Level01", sc.Name())
}

func TestDecodeScene_EmptyDocument(t *testing.T) {
	path := writeDoc(t, "kind: scene\nname: Empty\n")

	sc, err := DecodeScene(path, nil)
	require.NoError(t, err)
	assert.Zero(t, sc.Len())
	assert.Empty(t, sc.Roots())
}

func TestDecodeScene_ReferenceResolution(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "FollowCamera.script.yaml", "guid: " + scriptGUID + "\nkind: script\n")
	cat, err := BuildCatalog(root)
	require.NoError(t, err)

	path := writeDoc(t, `objects:
  - id: 1
    name: Camera
    parts:
      - type: FollowCamera
        properties:
          - name: m_Target
            kind: ref
            ref: {id: 902}
          - name: m_Rig
            kind: ref
            ref: {id: 2}
          - name: m_Script
            kind: ref
            ref: {guid: ` + scriptGUID + `}
          - name: m_Skin
            kind: ref
            ref: {guid: 99999999-9999-4999-8999-999999999999}
          - name: m_Ghost
            kind: ref
            ref: {marker: "Missing (GameObject)"}
          - name: m_Optional
            kind: ref
    children: [2]
  - id: 2
    name: Rig
`)

	sc, err := DecodeScene(path, cat)
	require.NoError(t, err)

	camera := sc.Roots()[0]
	require.Len(t, sc.Node(camera).Parts, 1)
	props := openProps(t, sc.Node(camera).Parts[0])
	require.Equal(t, 6, props.Len())

	dangling := refAt(t, props, 0)
	assert.False(t, dangling.Resolved(), "undeclared local ids do not resolve")
	assert.Equal(t, int64(902), dangling.Ref().ID)

	local := refAt(t, props, 1)
	assert.True(t, local.Resolved(), "declared local ids resolve")

	asset := refAt(t, props, 2)
	assert.True(t, asset.Resolved(), "catalogued guids resolve")

	missingAsset := refAt(t, props, 3)
	assert.False(t, missingAsset.Resolved())
	assert.False(t, missingAsset.Ref().IsZero())

	ghost := refAt(t, props, 4)
	assert.False(t, ghost.Resolved())
	assert.True(t, ghost.Ref().IsZero())
	marker, ok := ghost.(scene.RawMarkerProbe).RawMarker()
	require.True(t, ok)
	assert.Equal(t, "Missing (GameObject)", marker)

	null := refAt(t, props, 5)
	assert.False(t, null.Resolved())
	assert.True(t, null.Ref().IsZero())
}

func TestDecodeScene_NilCatalogResolvesNoGUIDs(t *testing.T) {
	path := writeDoc(t, `objects:
  - id: 1
    name: Camera
    parts:
      - type: Loader
        properties:
          - name: m_Asset
            kind: ref
            ref: {guid: ` + scriptGUID + `}
`)

	sc, err := DecodeScene(path, nil)
	require.NoError(t, err)

	props := openProps(t, sc.Node(sc.Roots()[0]).Parts[0])
	assert.False(t, refAt(t, props, 0).Resolved())
}

func TestDecodeScene_PropertyKindDefaults(t *testing.T) {
	path := writeDoc(t, `objects:
  - id: 1
    name: Root
    parts:
      - type: Stats
        properties:
          - name: m_Title
          - name: m_Target
            ref: {id: 1}
          - name: m_Custom
            kind: curve
`)

	sc, err := DecodeScene(path, nil)
	require.NoError(t, err)

	props := openProps(t, sc.Node(sc.Roots()[0]).Parts[0])
	assert.Equal(t, scene.KindString, props.At(0).Kind(), "valueless entries default to string")
	assert.Equal(t, scene.KindObjectRef, props.At(1).Kind(), "a ref block implies the ref kind")
	assert.Equal(t, scene.PropertyKind("curve"), props.At(2).Kind(), "unknown kinds pass through")
}

func TestDecodeScene_ScriptParts(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "FollowCamera.script.yaml", "guid: " + scriptGUID + "\nkind: script\n")
	writeAsset(t, root, "ground.yaml", "guid: " + textureGUID + "\nkind: texture\n")
	cat, err := BuildCatalog(root)
	require.NoError(t, err)

	path := writeDoc(t, `objects:
  - id: 1
    name: Root
    parts:
      - script: ` + scriptGUID + `
      - script: 99999999-9999-4999-8999-999999999999
        type: GoneBehaviour
      - script: ` + textureGUID + `
      - {}
`)

	sc, err := DecodeScene(path, cat)
	require.NoError(t, err)

	parts := sc.Node(sc.Roots()[0]).Parts
	require.Len(t, parts, 4)

	name, ok := parts[0].Type()
	assert.True(t, ok)
	assert.Equal(t, "FollowCamera", name, "script parts take the asset's name")

	name, ok = parts[1].Type()
	assert.False(t, ok, "a guid absent from the catalog leaves the part unresolvable")
	assert.Equal(t, "GoneBehaviour", name, "the declared name is kept for reporting")

	_, ok = parts[2].Type()
	assert.False(t, ok, "non-script assets cannot serve as part types")

	name, ok = parts[3].Type()
	assert.False(t, ok, "a part with no type information is unresolvable")
	assert.Empty(t, name)
}

func TestDecodeScene_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "duplicate object id",
			doc:     "objects:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n",
			wantMsg: "declared twice",
		},
		{
			name:    "non-positive object id",
			doc:     "objects:\n  - id: 0\n    name: A\n",
			wantMsg: "must be positive",
		},
		{
			name:    "unknown child id",
			doc:     "objects:\n  - id: 1\n    name: A\n    children: [7]\n",
			wantMsg: "unknown child",
		},
		{
			name:    "child claimed twice",
			doc:     "objects:\n  - id: 1\n    name: A\n    children: [3]\n  - id: 2\n    name: B\n    children: [3]\n  - id: 3\n    name: C\n",
			wantMsg: "claimed by parents",
		},
		{
			name:    "cyclic children are unreachable",
			doc:     "objects:\n  - id: 1\n    name: A\n    children: [2]\n  - id: 2\n    name: B\n    children: [1]\n",
			wantMsg: "unreachable",
		},
		{
			name:    "invalid ref guid",
			doc:     "objects:\n  - id: 1\n    name: A\n    parts:\n      - type: P\n        properties:\n          - name: m_X\n            kind: ref\n            ref: {guid: zzz}\n",
			wantMsg: "invalid guid",
		},
		{
			name:    "invalid script guid",
			doc:     "objects:\n  - id: 1\n    name: A\n    parts:\n      - script: zzz\n",
			wantMsg: "invalid script guid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, tt.doc)

			sc, err := DecodeScene(path, nil)
			require.Error(t, err)
			assert.Nil(t, sc)
			assert.ErrorIs(t, err, ErrBadDocument)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeScene_UnparseableFile(t *testing.T) {
	path := writeDoc(t, "objects: [unclosed\n")

	_, err := DecodeScene(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse document")
}

func TestDecodeScene_MissingFile(t *testing.T) {
	_, err := DecodeScene(filepath.Join(t.TempDir(), "gone.yaml"), nil)
	require.Error(t, err)
}
