package refscan

import (
	"log/slog"
	"sync"

	"github.com/lanternworks/refscan/finding"
)

// Reporter receives findings as they are discovered. Report is called once
// per finding, in traversal order.
type Reporter interface {
	Report(f finding.Finding)
}

// LogReporter reports each finding as one error-level log record. This is
// the default reporter of a Scanner.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a reporter writing to the given logger.
// If logger is nil, slog.Default() is used.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

// Report implements Reporter. The log message is the finding's rendered
// message; the finding's fields are attached as attributes.
func (r *LogReporter) Report(f finding.Finding) {
	r.logger.Error(f.Message(),
		"kind", f.Kind.String(),
		"context", f.Context,
		"node_path", f.NodePath,
		"part", f.Part,
		"property", f.Property,
		"relative_path", f.RelativePath,
		"node", int(f.Node),
	)
}

// Collector accumulates findings in memory, for hosts that post-process
// scan results and for tests.
//
// The zero value is ready to use.
type Collector struct {
	mu       sync.Mutex
	findings []finding.Finding
}

// Report implements Reporter.
func (c *Collector) Report(f finding.Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = append(c.findings, f)
}

// Findings returns a copy of the collected findings in report order.
func (c *Collector) Findings() []finding.Finding {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]finding.Finding, len(c.findings))
	copy(out, c.findings)
	return out
}

// Len returns the number of collected findings.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.findings)
}

// MultiReporter returns a reporter that forwards each finding to every
// given reporter in order.
func MultiReporter(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

type multiReporter []Reporter

func (m multiReporter) Report(f finding.Finding) {
	for _, r := range m {
		if r != nil {
			r.Report(f)
		}
	}
}
