package profiler

import (
	"bytes"
	"log"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilerReportsPerInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(time.Second, log.New(&buf, "", 0))
	p.readMem = func(m *runtime.MemStats) {
		m.Alloc = 2 * 1024 * 1024
		m.TotalAlloc = 4 * 1024 * 1024
		m.NumGC = 2
		m.PauseNs[0] = 1500
		m.PauseNs[1] = 3000
	}

	start := time.Unix(1000, 0)
	frame := 10 * time.Millisecond
	now := start

	// frames 0..99 span 990ms: no report yet
	for i := range 100 {
		now = start.Add(time.Duration(i) * frame)
		assert.False(t, p.Tick(now, frame))
	}
	assert.Empty(t, buf.String())

	require.True(t, p.Tick(start.Add(time.Second), 20*time.Millisecond))
	s := p.Last()
	assert.Equal(t, 101, s.Frames)
	assert.InDelta(t, 101, s.FPS, 1e-9)
	assert.Equal(t, 10*time.Millisecond, s.MinFrameTime)
	assert.Equal(t, 20*time.Millisecond, s.MaxFrameTime)
	assert.InDelta(t, 2, s.HeapMB, 1e-9)
	assert.InDelta(t, 4, s.AllocRateMB, 1e-9)
	assert.Equal(t, uint32(2), s.GCCount)
	assert.Equal(t, 3*time.Microsecond, s.MaxGCPause)
	assert.Contains(t, buf.String(), "[Profiler] FPS: 101.0")

	// the window resets after a report
	assert.False(t, p.Tick(start.Add(1500*time.Millisecond), frame))
}

func TestProfilerDefaults(t *testing.T) {
	p := NewProfiler(0, nil)
	assert.Equal(t, time.Second, p.Interval())

	p.SetInterval(-1)
	assert.Equal(t, time.Second, p.Interval())
	p.SetInterval(5 * time.Second)
	assert.Equal(t, 5*time.Second, p.Interval())
}
