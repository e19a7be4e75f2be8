package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContextReturnsNoOpWithoutCollector(t *testing.T) {
	collector := FromContext(context.Background())

	// Must be usable without panicking.
	timer := collector.Start("op")
	timer.Child("child").End()
	timer.End()

	var sb strings.Builder
	collector.Report(&sb)
	assert.Equal(t, "", sb.String())
}

func TestFromContextRoundTrip(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	assert.Equal[Collector](t, collector, FromContext(ctx))
}

func TestTimingCollectorBuildsTree(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("root")
	child := root.Child("child")
	grandchild := child.Child("grandchild")
	grandchild.End()
	child.End()
	sibling := root.Child("sibling")
	sibling.End()
	root.End()

	var sb strings.Builder
	collector.Report(&sb)
	report := sb.String()

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	assert.Equal(t, 4, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "root: "))
	assert.True(t, strings.HasPrefix(lines[1], "├─ child: "))
	assert.True(t, strings.HasPrefix(lines[2], "│  └─ grandchild: "))
	assert.True(t, strings.HasPrefix(lines[3], "└─ sibling: "))
}

func TestNestedStartAttachesToCurrent(t *testing.T) {
	collector := NewTimingCollector()

	outer := collector.Start("outer")
	inner := collector.Start("inner")
	inner.End()
	outer.End()

	var sb strings.Builder
	collector.Report(&sb)

	assert.True(t, strings.Contains(sb.String(), "└─ inner: "))
}

func TestEmptyCollectorReportsNothing(t *testing.T) {
	collector := NewTimingCollector()

	var sb strings.Builder
	collector.Report(&sb)
	assert.Equal(t, "", sb.String())
}
