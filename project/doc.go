// Package project opens on-disk content projects and enumerates their
// scannable documents.
//
// A project is a directory holding a project.yaml manifest:
//
//	name: demo
//	current_scene: Scenes/Level01.scene.yaml
//	scenes:
//	  - path: Scenes/Level01.scene.yaml
//	    enabled: true
//	  - path: Scenes/Graveyard.scene.yaml
//	    enabled: false
//	asset_root: Assets
//
// Scene and prefab documents are YAML object trees. Every object has a
// positive id local to its document; objects listed in no children block
// are the document's roots. Parts attach behavior to an object, named
// either by a literal type or by the guid of a script asset:
//
//	kind: scene
//	objects:
//	  - id: 1
//	    name: Root
//	    children: [2]
//	  - id: 2
//	    name: Camera
//	    parts:
//	      - type: FollowCamera
//	        properties:
//	          - name: m_Target
//	            kind: ref
//	            ref: {id: 1}
//
// # Catalog
//
// Open walks the asset root and indexes every YAML document carrying a
// guid header. Reference resolution is frozen against that index: a ref
// property's local id resolves iff its object is declared in the same
// document, a guid resolves iff the catalog holds it. Editing files after
// Open does not change resolution results.
//
// # Sources
//
// The three enumerators mirror the three ways a scan is scoped: the
// manifest's current scene, every enabled build-list scene, and the prefab
// assets combined under the "Project" label. Their sources load lazily and
// satisfy the scanner's Source interface:
//
//	p, err := project.Open(".")
//	if err != nil {
//		return err
//	}
//	src, err := p.CurrentScene()
//	if err != nil {
//		return err
//	}
//	res, err := scanner.ScanSources(ctx, src)
package project
