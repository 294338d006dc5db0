package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/session"
)

var pieceCommands = []session.Command{
	session.MoveLeft,
	session.MoveRight,
	session.SoftDrop,
	session.HardDrop,
	session.Rotate,
	session.Hold,
}

// randomInput issues up to limit random piece commands per poll and resumes
// the session whenever a loss has paused it.
type randomInput struct {
	session *session.Session
	rand    *rand.Rand
	limit   int
	issued  int64
}

func newRandomInput(s *session.Session, r *rand.Rand, limit int) *randomInput {
	return &randomInput{session: s, rand: r, limit: limit}
}

func (in *randomInput) Poll() []session.Command {
	if in.session.Paused() {
		in.issued++
		return []session.Command{session.Pause}
	}
	if in.limit <= 0 {
		return nil
	}

	n := in.rand.IntN(in.limit + 1)
	cmds := make([]session.Command, n)
	for i := range cmds {
		cmds[i] = pieceCommands[in.rand.IntN(len(pieceCommands))]
	}
	in.issued += int64(n)
	return cmds
}
