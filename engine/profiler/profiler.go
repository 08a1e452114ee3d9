package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Stats summarises the frames observed during one reporting interval.
type Stats struct {
	Frames       int
	FPS          float64
	AvgFrameTime time.Duration
	MinFrameTime time.Duration
	MaxFrameTime time.Duration

	HeapMB      float64
	AllocRateMB float64 // MB allocated per second over the interval
	GCCount     uint32
	MaxGCPause  time.Duration
}

// String formats the stats as one log line.
func (s Stats) String() string {
	return fmt.Sprintf("FPS: %.1f | frame avg %.2f ms (min %.2f, max %.2f) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max pause %d µs)",
		s.FPS,
		ms(s.AvgFrameTime), ms(s.MinFrameTime), ms(s.MaxFrameTime),
		s.HeapMB, s.AllocRateMB, s.GCCount, s.MaxGCPause.Microseconds())
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Profiler accumulates frame times and reports frame rate, frame-time spread and
// memory statistics once per interval.
type Profiler struct {
	interval time.Duration
	logger   *log.Logger
	readMem  func(*runtime.MemStats)

	start    time.Time
	frames   int
	total    time.Duration
	minFrame time.Duration
	maxFrame time.Duration

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	last Stats
}

// NewProfiler creates a Profiler that reports every interval through logger.
// A non-positive interval defaults to one second; a nil logger uses the standard logger.
//
// Parameters:
//   - interval: reporting interval
//   - logger: destination for the report lines
//
// Returns:
//   - *Profiler: the new profiler
func NewProfiler(interval time.Duration, logger *log.Logger) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Profiler{
		interval: interval,
		logger:   logger,
		readMem:  runtime.ReadMemStats,
	}
}

// SetInterval changes the reporting interval. Non-positive values are ignored.
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.interval = interval
	}
}

// Interval returns the reporting interval.
func (p *Profiler) Interval() time.Duration {
	return p.interval
}

// Last returns the most recently reported stats.
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick records one frame. When the interval has elapsed since the first frame of the
// current window, it logs and resets.
//
// Parameters:
//   - now: the frame's timestamp
//   - frameTime: the frame's duration
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick(now time.Time, frameTime time.Duration) bool {
	if p.frames == 0 && p.start.IsZero() {
		p.start = now
	}
	p.frames++
	p.total += frameTime
	if p.frames == 1 || frameTime < p.minFrame {
		p.minFrame = frameTime
	}
	if frameTime > p.maxFrame {
		p.maxFrame = frameTime
	}

	elapsed := now.Sub(p.start)
	if elapsed < p.interval {
		return false
	}

	p.last = p.collect(elapsed)
	p.logger.Printf("[Profiler] %s", p.last)

	p.start = now
	p.frames = 0
	p.total = 0
	p.minFrame = 0
	p.maxFrame = 0
	return true
}

func (p *Profiler) collect(elapsed time.Duration) Stats {
	s := Stats{
		Frames:       p.frames,
		FPS:          float64(p.frames) / elapsed.Seconds(),
		AvgFrameTime: p.total / time.Duration(p.frames),
		MinFrameTime: p.minFrame,
		MaxFrameTime: p.maxFrame,
	}

	p.readMem(&p.memStats)
	s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	s.AllocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()
	s.GCCount = p.memStats.NumGC

	// PauseNs is a circular buffer of the last 256 pauses
	from := p.lastGCCount
	if s.GCCount-from > 256 {
		from = s.GCCount - 256
	}
	for i := from; i < s.GCCount; i++ {
		if pause := time.Duration(p.memStats.PauseNs[i%256]); pause > s.MaxGCPause {
			s.MaxGCPause = pause
		}
	}

	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return s
}
