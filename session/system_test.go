package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
)

type scriptedInput struct {
	frames [][]session.Command
}

func (in *scriptedInput) Poll() []session.Command {
	if len(in.frames) == 0 {
		return nil
	}
	next := in.frames[0]
	in.frames = in.frames[1:]
	return next
}

type countingRenderer struct {
	renders int
	states  []session.State
}

func (r *countingRenderer) Render(s *session.Session) {
	r.renders++
	r.states = append(r.states, s.State())
}

func TestTickSystemRunsUntilQuit(t *testing.T) {
	s := newSession(t)
	input := &scriptedInput{frames: [][]session.Command{
		nil,
		{session.MoveLeft},
		{session.Pause},
		{session.Quit},
	}}
	renderer := &countingRenderer{}

	scheduler := frame.NewScheduler()
	scheduler.Register(&session.TickSystem{Session: s, Input: input})
	scheduler.Register(&session.RenderSystem{Session: s, Renderer: renderer})

	done := make(chan bool)
	go func() {
		scheduler.Run(context.Background(), time.Millisecond)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after Quit")
	}

	assert.False(t, s.Running())
	assert.Equal(t, 4, renderer.renders)
	assert.Equal(t, []session.State{session.Active, session.Active, session.Paused, session.Stopped}, renderer.states)
}

func TestTickSystemWithoutInput(t *testing.T) {
	s := session.New(config.Default())
	scheduler := frame.NewScheduler()
	scheduler.Register(&session.TickSystem{Session: s})

	scheduler.Once(10 * time.Millisecond)
	scheduler.Once(10 * time.Millisecond)

	assert.NotNil(t, s.Active())
	assert.Equal(t, 20*time.Millisecond, s.Now())
	assert.False(t, scheduler.Stopped())
}

func TestInputFunc(t *testing.T) {
	var in session.Input = session.InputFunc(func() []session.Command {
		return []session.Command{session.Rotate}
	})
	assert.Equal(t, []session.Command{session.Rotate}, in.Poll())
}
