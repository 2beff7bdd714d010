package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsCollector(t *testing.T) {
	collector := NewMetricsCollector()
	collector.Start()

	collector.AddNode()
	collector.AddNode()
	collector.AddLeaf()
	collector.AddCutoff()

	metrics := collector.Complete()
	require.Equal(t, int64(2), metrics.Nodes)
	require.Equal(t, int64(1), metrics.Leafs)
	require.Equal(t, int64(1), metrics.Cutoffs)
	require.False(t, metrics.StartTime.IsZero())

	collector.Start()
	require.Equal(t, int64(0), collector.Complete().Nodes,
		"Start should reset the counters for the next search")
}

func TestNoMetricsCollector(t *testing.T) {
	collector := NewNoMetricsCollector()
	collector.Start()
	collector.AddNode()
	collector.AddLeaf()
	collector.AddCutoff()

	require.Equal(t, SearchMetrics{}, collector.Complete())
}
