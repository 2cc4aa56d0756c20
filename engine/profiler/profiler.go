package profiler

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"
)

// Profiler tracks render frame rate, simulation tick cost and heap usage. Stats are logged
// once per update interval from the render loop; ticks are recorded from the tick loop.
type Profiler struct {
	mu *sync.Mutex

	frameCount     int
	tickCount      int
	tickTotal      time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats

	// summary supplies an extra free-form field for each report, e.g. the player's state.
	summary func() string
	logf    func(format string, args ...any)
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		lastTime:       time.Now(),
		updateInterval: time.Second,
		logf:           log.Printf,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are reported.
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithSummary appends the string returned by fn to each report.
func WithSummary(fn func() string) ProfilerOption {
	return func(p *Profiler) {
		p.summary = fn
	}
}

// WithLogger replaces log.Printf as the report sink.
func WithLogger(logf func(format string, args ...any)) ProfilerOption {
	return func(p *Profiler) {
		p.logf = logf
	}
}

// SetSummary replaces the summary function.
//
// Parameters:
//   - fn: returns the extra report field, or nil to disable it
func (p *Profiler) SetSummary(fn func() string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summary = fn
}

// RecordTick adds the duration of one simulation tick to the current interval.
//
// Parameters:
//   - d: how long the tick took to run
func (p *Profiler) RecordTick(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickCount++
	p.tickTotal += d
}

// Tick should be called once per rendered frame.
// Logs FPS, ticks per second, average tick cost, heap usage and the summary when the
// update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	tps := float64(p.tickCount) / elapsed.Seconds()
	var avgTickMs float64
	if p.tickCount > 0 {
		avgTickMs = float64(p.tickTotal.Microseconds()) / 1000 / float64(p.tickCount)
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024

	line := fmt.Sprintf("[Profiler] FPS: %.2f | TPS: %.2f | Tick: %.3f ms | Heap: %.2f MB",
		fps, tps, avgTickMs, allocMB)
	if p.summary != nil {
		line += " | " + p.summary()
	}
	p.logf("%s", line)

	p.frameCount = 0
	p.tickCount = 0
	p.tickTotal = 0
	p.lastTime = currentTime
	return true
}
