package project

import (
	"context"
	"errors"

	"github.com/lanternworks/refscan/scene"
)

// AssetContextLabel is the context label assets are reported under.
const AssetContextLabel = "Project"

// ErrNoCurrentScene is returned when the manifest names no current scene.
var ErrNoCurrentScene = errors.New("project: manifest names no current scene")

// SceneSource loads one scene document on demand. Its context label is the
// manifest-relative document path.
type SceneSource struct {
	project *Project
	path    string
}

// Label returns the scene document path.
func (s *SceneSource) Label() string {
	return s.path
}

// Load decodes the scene document.
func (s *SceneSource) Load(ctx context.Context) (*scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.project.LoadScene(s.path)
}

// CurrentScene returns a source for the manifest's current scene.
func (p *Project) CurrentScene() (*SceneSource, error) {
	if p.config.CurrentScene == "" {
		return nil, ErrNoCurrentScene
	}
	return &SceneSource{project: p, path: p.config.CurrentScene}, nil
}

// SceneAt returns a source for an explicitly chosen scene document,
// bypassing the manifest's build list.
func (p *Project) SceneAt(path string) *SceneSource {
	return &SceneSource{project: p, path: path}
}

// EnabledScenes returns one source per enabled build-list entry, in
// manifest order. Each scene is loaded lazily when the scan reaches it, so
// one unreadable document does not keep the others from being scanned.
func (p *Project) EnabledScenes() []*SceneSource {
	var sources []*SceneSource
	for _, path := range p.config.EnabledScenes() {
		sources = append(sources, &SceneSource{project: p, path: path})
	}
	return sources
}

// AssetSource loads every prefab in the catalog as one combined scene
// labeled with AssetContextLabel.
type AssetSource struct {
	project *Project
}

// Label returns the asset context label.
func (s *AssetSource) Label() string {
	return AssetContextLabel
}

// Load decodes all prefab documents.
func (s *AssetSource) Load(ctx context.Context) (*scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.project.LoadAssets()
}

// Assets returns the source covering the project's prefab assets.
func (p *Project) Assets() *AssetSource {
	return &AssetSource{project: p}
}
