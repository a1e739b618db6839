package refscan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternworks/refscan/scene"
)

// stubSource serves a prebuilt scene or a load failure.
type stubSource struct {
	label     string
	sc        *scene.Scene
	loadErr   error
	loadCalls int
}

func (s *stubSource) Label() string { return s.label }

func (s *stubSource) Load(ctx context.Context) (*scene.Scene, error) {
	s.loadCalls++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.sc, nil
}

func sceneWithDangling(name, nodeName string) *scene.Scene {
	sc := scene.NewScene(name)
	root := sc.AddNode(scene.NoNode, nodeName)
	sc.Attach(root, scene.NewStaticPart("Part", danglingRef("m_Target")))
	return sc
}

func TestScanSources_AggregatesResults(t *testing.T) {
	first := &stubSource{label: "Scenes/A.scene.yaml", sc: sceneWithDangling("A", "RootA")}
	second := &stubSource{label: "Scenes/B.scene.yaml", sc: sceneWithDangling("B", "RootB")}

	s, collector, _ := newTestScanner(t)
	res, err := s.ScanSources(context.Background(), first, second)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Scenes)
	assert.Equal(t, 2, res.Nodes)
	assert.Equal(t, 2, res.Findings)
	assert.Zero(t, res.SkippedSources)

	findings := collector.Findings()
	require.Len(t, findings, 2)
	assert.Equal(t, "Scenes/A.scene.yaml", findings[0].Context, "each finding carries its own source label")
	assert.Equal(t, "Scenes/B.scene.yaml", findings[1].Context)
	assert.Equal(t, "RootA", findings[0].NodePath)
	assert.Equal(t, "RootB", findings[1].NodePath, "paths never leak across scenes")
}

func TestScanSources_SkipsFailedLoads(t *testing.T) {
	broken := &stubSource{label: "Scenes/Broken.scene.yaml", loadErr: errors.New("no such file")}
	healthy := &stubSource{label: "Scenes/Healthy.scene.yaml", sc: sceneWithDangling("Healthy", "Root")}

	s, collector, logBuf := newTestScanner(t)
	res, err := s.ScanSources(context.Background(), broken, healthy)
	require.NoError(t, err, "one broken source does not abort the run")

	assert.Equal(t, 1, res.SkippedSources)
	assert.Equal(t, 1, res.Scenes)
	assert.Equal(t, 1, collector.Len())
	assert.Equal(t, 1, healthy.loadCalls, "later sources are still loaded")
	assert.Contains(t, logBuf.String(), "source failed to load")
	assert.Contains(t, logBuf.String(), "Scenes/Broken.scene.yaml")
}

func TestScanSources_NilSource(t *testing.T) {
	s, _, _ := newTestScanner(t)

	_, err := s.ScanSources(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestScanSources_NoSources(t *testing.T) {
	s, _, _ := newTestScanner(t)

	res, err := s.ScanSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestScanSources_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &stubSource{label: "Scenes/A.scene.yaml", sc: scene.NewScene("A")}

	s, _, _ := newTestScanner(t)
	_, err := s.ScanSources(ctx, src)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, src.loadCalls, "cancellation is honored before loading")
}

func TestScanSources_CancelledBetweenSources(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// The first source cancels the context while loading, so the scan
	// stops before the second source is touched.
	first := &stubSource{label: "first", sc: scene.NewScene("first")}
	cancelling := &cancelOnLoad{inner: first, cancel: cancel}
	second := &stubSource{label: "second", sc: scene.NewScene("second")}

	s, _, _ := newTestScanner(t)
	res, err := s.ScanSources(ctx, cancelling, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, res.Scenes, "the scene scanned before cancellation is kept")
	assert.Zero(t, second.loadCalls)
}

// cancelOnLoad cancels its context after delegating the load.
type cancelOnLoad struct {
	inner  *stubSource
	cancel context.CancelFunc
}

func (c *cancelOnLoad) Label() string { return c.inner.Label() }

func (c *cancelOnLoad) Load(ctx context.Context) (*scene.Scene, error) {
	defer c.cancel()
	return c.inner.Load(ctx)
}
