package scheduler

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingExporter struct {
	calls atomic.Int64
}

func (c *countingExporter) ExportAll(context.Context) error {
	c.calls.Add(1)
	return nil
}

func TestNewRejectsBadSpec(t *testing.T) {
	_, err := New(&countingExporter{}, "not a cron spec", "0 9 * * 1", zap.NewNop())
	assert.Error(t, err)

	_, err = New(&countingExporter{}, "0 2 * * *", "also bad", zap.NewNop())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := New(&countingExporter{}, "0 2 * * *", "0 9 * * 1", zap.NewNop())
	require.NoError(t, err)

	s.Start()
	s.Stop()
}
