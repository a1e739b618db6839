package refscan

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternworks/refscan/finding"
	"github.com/lanternworks/refscan/scene"
)

func TestLogReporter_Report(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	reporter := NewLogReporter(logger)

	f := finding.NewMissingReference(
		"Scenes/Level01.scene.yaml",
		scene.NodeID(3),
		"Root/Camera",
		"FollowCamera",
		"Target Camera",
		"Camera",
	)
	reporter.Report(f)

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "level=ERROR", "findings are error-level records")
	assert.Contains(t, logOutput, "Missing Ref in:", "message uses the finding template")
	assert.Contains(t, logOutput, "[Scenes/Level01.scene.yaml]Root/Camera")
	assert.Contains(t, logOutput, "Component: FollowCamera")
	assert.Contains(t, logOutput, "Property: Target Camera")
	assert.Contains(t, logOutput, "RelativePath: Camera")
	assert.Contains(t, logOutput, "kind=missing_reference")
	assert.Contains(t, logOutput, "node=3")
}

func TestLogReporter_NilLoggerUsesDefault(t *testing.T) {
	reporter := NewLogReporter(nil)
	require.NotNil(t, reporter)

	require.NotPanics(t, func() {
		reporter.Report(finding.NewMissingPart("Project", scene.NodeID(0), "Root", ""))
	})
}

func TestCollector(t *testing.T) {
	var c Collector
	assert.Zero(t, c.Len(), "zero value starts empty")

	first := finding.NewMissingPart("Project", scene.NodeID(1), "Root/Child", "")
	second := finding.NewMissingReference("Project", scene.NodeID(2), "Root/Other", "Part", "Prop", "")

	c.Report(first)
	c.Report(second)

	require.Equal(t, 2, c.Len())

	got := c.Findings()
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0], "findings keep report order")
	assert.Equal(t, second, got[1])

	// Mutating the returned slice must not affect the collector.
	got[0].NodePath = "tampered"
	assert.Equal(t, "Root/Child", c.Findings()[0].NodePath)
}

func TestCollector_ConcurrentReport(t *testing.T) {
	var c Collector
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				c.Report(finding.NewMissingPart("Project", scene.NodeID(0), "Root", ""))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 16*25, c.Len())
}

func TestMultiReporter(t *testing.T) {
	var first, second Collector
	reporter := MultiReporter(&first, nil, &second)

	f := finding.NewMissingPart("Project", scene.NodeID(0), "Root", "")
	reporter.Report(f)

	assert.Equal(t, 1, first.Len(), "first reporter receives the finding")
	assert.Equal(t, 1, second.Len(), "nil entries are skipped, later reporters still run")
}
