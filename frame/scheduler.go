package frame

import (
	"context"
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
)

// SystemId identifies a registered system.
type SystemId uint32

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Id             SystemId
	Name           string
	Enabled        bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	id      SystemId
	system  System
	enabled bool

	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	systems []*systemEntry
	slots   *intmap.Map[SystemId, int]
	nextId  SystemId
	frames  uint64
	stopped bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: make([]*systemEntry, 0),
		slots:   intmap.New[SystemId, int](16),
	}
}

// Register appends a system to the run order and returns its id.
func (s *Scheduler) Register(system System) SystemId {
	s.nextId++
	id := s.nextId

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.slots.Put(id, len(s.systems))
	s.systems = append(s.systems, &systemEntry{
		id:          id,
		system:      system,
		enabled:     true,
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	return id
}

// SetEnabled turns a system on or off. Disabled systems are skipped but
// keep their place in the run order. It reports whether id is registered.
func (s *Scheduler) SetEnabled(id SystemId, enabled bool) bool {
	slot, ok := s.slots.Get(id)
	if !ok {
		return false
	}
	s.systems[slot].enabled = enabled
	return true
}

// Enabled reports whether the system is registered and enabled.
func (s *Scheduler) Enabled(id SystemId) bool {
	slot, ok := s.slots.Get(id)
	return ok && s.systems[slot].enabled
}

// Stopped reports whether a system has requested the run to end.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Once executes all enabled systems once with the given delta time, then
// flushes the frame's deferred commands.
func (s *Scheduler) Once(dt time.Duration) {
	s.frames++
	frame := newFrame(dt, s.frames)

	for _, entry := range s.systems {
		if !entry.enabled {
			continue
		}

		start := time.Now()
		entry.system.Execute(frame)
		duration := time.Since(start)

		entry.executionCount++
		entry.lastDuration = duration
		entry.totalDuration += duration

		if duration < entry.minDuration {
			entry.minDuration = duration
		}
		if duration > entry.maxDuration {
			entry.maxDuration = duration
		}
	}

	frame.Commands.Flush()
	if frame.Commands.Stopped() {
		s.stopped = true
	}
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled or a system calls Commands.Stop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for !s.stopped {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, entry := range s.systems {
		avgDuration := time.Duration(0)
		if entry.executionCount > 0 {
			avgDuration = entry.totalDuration / time.Duration(entry.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Id:             entry.id,
			Name:           entry.name,
			Enabled:        entry.enabled,
			ExecutionCount: entry.executionCount,
			MinDuration:    entry.minDuration,
			MaxDuration:    entry.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   entry.lastDuration,
			TotalDuration:  entry.totalDuration,
		}
		totalExecs += entry.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
