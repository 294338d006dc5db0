package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/frame"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsHistory(t *testing.T) {
	scheduler := frame.NewScheduler()
	ps := debugui.NewPerformanceStats(scheduler, 4)

	record := func(dt time.Duration) {
		ps.Record(&frame.Frame{DeltaTime: dt})
	}

	assert.Zero(t, ps.AverageFrameTime())

	for range 4 {
		record(10 * time.Millisecond)
	}
	assert.InDelta(t, 10.0, ps.AverageFrameTime(), 0.001)

	// The history is a ring: older samples are overwritten.
	for range 4 {
		record(20 * time.Millisecond)
	}
	assert.InDelta(t, 20.0, ps.AverageFrameTime(), 0.001)
}
