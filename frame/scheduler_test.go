package frame_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/stretchr/testify/assert"
)

type CounterSystem struct {
	ExecuteCount int
	Elapsed      time.Duration
	LastFrame    uint64
}

func (s *CounterSystem) Execute(f *frame.Frame) {
	s.ExecuteCount++
	s.Elapsed += f.DeltaTime
	s.LastFrame = f.Number
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(f *frame.Frame) {
	*s.log = append(*s.log, s.name)
	f.Commands.Defer(func() {
		*s.log = append(*s.log, "deferred "+s.name)
	})
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order and deferred commands", func(t *testing.T) {
		scheduler := frame.NewScheduler()

		var log []string
		scheduler.Register(&orderSystem{name: "input", log: &log})
		scheduler.Register(&orderSystem{name: "session", log: &log})

		scheduler.Once(time.Second / 30)

		assert.Equal(t, []string{"input", "session", "deferred input", "deferred session"}, log)
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		counter := &CounterSystem{}
		scheduler.Register(counter)

		scheduler.Once(10 * time.Millisecond)
		scheduler.Once(15 * time.Millisecond)

		if counter.ExecuteCount != 2 {
			t.Errorf("expected CounterSystem to execute twice, got %d", counter.ExecuteCount)
		}
		if counter.Elapsed != 25*time.Millisecond {
			t.Errorf("expected 25ms elapsed, got %s", counter.Elapsed)
		}
		if counter.LastFrame != 2 {
			t.Errorf("expected frame number 2, got %d", counter.LastFrame)
		}
	})

	t.Run("disabled systems are skipped", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		counter := &CounterSystem{}
		id := scheduler.Register(counter)

		assert.True(t, scheduler.Enabled(id))
		assert.True(t, scheduler.SetEnabled(id, false))
		scheduler.Once(time.Millisecond)
		assert.Equal(t, 0, counter.ExecuteCount)

		assert.True(t, scheduler.SetEnabled(id, true))
		scheduler.Once(time.Millisecond)
		assert.Equal(t, 1, counter.ExecuteCount)

		assert.False(t, scheduler.SetEnabled(id+100, true))
		assert.False(t, scheduler.Enabled(id+100))
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		counter := &CounterSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("stop command ends run", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		frames := 0
		scheduler.Register(frame.SystemFunc(func(f *frame.Frame) {
			frames++
			if frames == 3 {
				f.Commands.Stop()
			}
		}))

		done := make(chan bool)
		go func() {
			scheduler.Run(context.Background(), time.Millisecond)
			done <- true
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after Stop")
		}

		assert.Equal(t, 3, frames)
		assert.True(t, scheduler.Stopped())
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := frame.NewScheduler()
	scheduler.Register(&CounterSystem{})
	disabled := scheduler.Register(frame.SystemFunc(func(*frame.Frame) {}))
	scheduler.SetEnabled(disabled, false)

	for range 5 {
		scheduler.Once(time.Millisecond)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, uint64(5), stats.Frames)
	assert.Equal(t, int64(5), stats.TotalExecutions)

	assert.Equal(t, "CounterSystem", stats.Systems[0].Name)
	assert.Equal(t, int64(5), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)

	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)
	assert.False(t, stats.Systems[1].Enabled)
	assert.Equal(t, int64(0), stats.Systems[1].ExecutionCount)
}

func TestCommandsFlushNested(t *testing.T) {
	scheduler := frame.NewScheduler()

	var order []int
	scheduler.Register(frame.SystemFunc(func(f *frame.Frame) {
		f.Commands.Defer(func() {
			order = append(order, 1)
			f.Commands.Defer(func() { order = append(order, 3) })
		})
		f.Commands.Defer(func() { order = append(order, 2) })
	}))

	scheduler.Once(time.Millisecond)
	assert.Equal(t, []int{1, 2, 3}, order)
}
