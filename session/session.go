// Package session runs one falling-block game: it owns the playfield, the
// piece queue, the held piece and the pause state, and advances them one
// tick at a time.
package session

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/grid"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/piece"
)

// Session is the game aggregate. It is not safe for concurrent use; front
// ends drive it from a single loop.
type Session struct {
	cfg     config.Config
	grid    *grid.Grid
	factory *piece.Factory

	active []*piece.Piece
	queue  []*piece.Piece
	held   *piece.Piece

	pending []Command
	paused  bool
	running bool
	now     time.Duration

	id          uuid.UUID
	losses      int
	rowsCleared int

	logger *slog.Logger
	log    *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithRand sets the random source the piece factory draws from.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.factory = piece.NewFactory(s.cfg.Width, s.cfg.FallInterval, r)
	}
}

// New creates a running, unpaused session with a full queue. cfg must be
// valid. Without WithRand the factory is seeded from cfg.Seed, or randomly
// when the seed is zero.
func New(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		grid:    grid.New(cfg.Width, cfg.Height),
		running: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		s.factory = piece.NewFactory(cfg.Width, cfg.FallInterval, rand.New(rand.NewPCG(seed, seed)))
	}
	s.logger = logging.OrNop(s.logger).With("component", "session")

	s.newGame()
	s.log.Info("session started", "width", cfg.Width, "height", cfg.Height)
	return s
}

func (s *Session) newGame() {
	s.id = uuid.New()
	s.log = s.logger.With("game", s.id.String())
	s.queue = s.queue[:0]
	s.fill()
}

// fill tops the queue up to capacity.
func (s *Session) fill() {
	for len(s.queue) < s.cfg.QueueCapacity {
		s.queue = append(s.queue, s.factory.Make(s.queue))
	}
}

// Enqueue buffers a command for the next Tick.
func (s *Session) Enqueue(cmd Command) {
	s.pending = append(s.pending, cmd)
}

// Tick advances the session by dt. Buffered commands are applied first,
// then, unless paused: a new piece is spawned when none is active, active
// pieces are updated, settled ones are retired, complete rows are cleared
// and the loss condition is checked.
func (s *Session) Tick(dt time.Duration) {
	for _, cmd := range s.pending {
		s.Apply(cmd)
	}
	s.pending = s.pending[:0]

	if s.paused || !s.running {
		return
	}
	// A spawn could cover a settled cell in row 0, so loss is checked
	// before it as well as after the update.
	if s.checkLoss() {
		return
	}

	s.now += dt
	if len(s.active) == 0 && !s.spawn() {
		return
	}
	s.update()
	s.clearRows()
	s.checkLoss()
}

// spawn activates the queue head. It reports false when the piece would
// cover a settled cell, which ends the game.
func (s *Session) spawn() bool {
	p := s.queue[0]
	s.queue = append(s.queue[:0], s.queue[1:]...)
	s.queue = append(s.queue, s.factory.Make(s.queue))

	if s.blocked(p) {
		s.lose("spawn blocked")
		return false
	}
	p.Place(s.grid)
	p.StartFallTimer(s.now)
	s.active = append(s.active, p)
	s.log.Debug("piece spawned", "type", p.Type(), "pos", p.Position())
	return true
}

// blocked reports whether any of p's cells lies on a settled cell.
func (s *Session) blocked(p *piece.Piece) bool {
	for _, pos := range p.Cells() {
		if cell, state := s.grid.Get(pos); state == grid.Occupied && cell.Frozen {
			return true
		}
	}
	return false
}

func (s *Session) update() {
	settled := 0
	for _, p := range s.active {
		p.Update(s.now)
		if p.Frozen() {
			settled++
		}
	}
	if settled == 0 {
		return
	}

	kept := s.active[:0]
	for _, p := range s.active {
		if !p.Frozen() {
			kept = append(kept, p)
			continue
		}
		s.log.Debug("piece settled", "type", p.Type(), "pos", p.Position())
	}
	clear(s.active[len(kept):])
	s.active = kept
}

// clearRows removes settled rows from the top down. Removing row y moves
// the rows above it down, so the scan continues at y+1 without revisiting.
func (s *Session) clearRows() {
	cleared := 0
	for y := 0; y < s.grid.Height(); y++ {
		if !s.grid.RowSettled(y) {
			continue
		}
		if err := s.grid.RemoveRow(y); err != nil {
			s.log.Error("unable to remove row", "row", y, "error", err)
			continue
		}
		cleared++
	}
	if cleared > 0 {
		s.rowsCleared += cleared
		s.log.Debug("rows cleared", "count", cleared, "total", s.rowsCleared)
	}
}

func (s *Session) checkLoss() bool {
	if !s.grid.RowHasFrozen(0) {
		return false
	}
	s.lose("top row reached")
	return true
}

func (s *Session) lose(reason string) {
	s.losses++
	s.log.Info("game lost", "reason", reason, "rows", s.rowsCleared, "losses", s.losses)
	s.Reset()
}

// Reset starts a new game: the grid is emptied, the active and held pieces
// are discarded, the queue is refilled and the session is paused.
func (s *Session) Reset() {
	s.grid.Reset()
	clear(s.active)
	s.active = s.active[:0]
	s.held = nil
	s.paused = true
	s.rowsCleared = 0
	s.newGame()
	s.log.Info("game reset")
}

// Apply executes cmd immediately and reports whether it had an effect.
// Piece commands need an active piece and an unpaused session.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case Pause:
		s.paused = !s.paused
		s.log.Info("pause toggled", "paused", s.paused)
		return true
	case Quit:
		s.running = false
		s.log.Info("quit requested")
		return true
	}

	p := s.Active()
	if p == nil || s.paused || !s.running {
		return false
	}

	switch cmd {
	case MoveLeft:
		return p.Move(grid.Left)
	case MoveRight:
		return p.Move(grid.Right)
	case SoftDrop:
		return p.Move(grid.Down)
	case HardDrop:
		p.InstantFall()
		return true
	case Rotate:
		return p.RotateCCW()
	case Hold:
		s.hold()
		return true
	}
	return false
}

// hold parks the active piece at its spawn position. A previously held
// piece takes its place and starts falling from the top; if its spawn cells
// are settled the game is lost.
func (s *Session) hold() {
	cur := s.active[0]
	cur.ResetTo(s.factory.SpawnPos(cur.Shape()))
	s.active = append(s.active[:0], s.active[1:]...)

	if next := s.held; next != nil {
		next.ResetTo(s.factory.SpawnPos(next.Shape()))
		if s.blocked(next) {
			s.lose("hold blocked")
			return
		}
		next.Place(s.grid)
		next.StartFallTimer(s.now)
		s.active = append([]*piece.Piece{next}, s.active...)
	}
	s.held = cur
	s.log.Debug("piece held", "type", cur.Type())
}

// Grid returns the playfield. Callers must not modify it.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Active returns the falling piece, or nil between a settle and the next
// spawn.
func (s *Session) Active() *piece.Piece {
	if len(s.active) == 0 {
		return nil
	}
	return s.active[0]
}

// Queue returns the visible prefix of the upcoming pieces, head first.
func (s *Session) Queue() []*piece.Piece {
	n := min(s.cfg.VisibleQueue, len(s.queue))
	out := make([]*piece.Piece, n)
	copy(out, s.queue[:n])
	return out
}

// QueueLen returns the number of queued pieces, visible or not.
func (s *Session) QueueLen() int { return len(s.queue) }

func (s *Session) Held() *piece.Piece    { return s.held }
func (s *Session) Paused() bool          { return s.paused }
func (s *Session) Running() bool         { return s.running }
func (s *Session) Now() time.Duration    { return s.now }
func (s *Session) GameID() uuid.UUID     { return s.id }
func (s *Session) Losses() int           { return s.losses }
func (s *Session) RowsCleared() int      { return s.rowsCleared }
func (s *Session) Config() config.Config { return s.cfg }

// State summarizes the lifecycle position.
func (s *Session) State() State {
	switch {
	case !s.running:
		return Stopped
	case s.paused:
		return Paused
	}
	return Active
}

// GhostOffset returns how many rows the active piece would drop on a hard
// drop, or 0 when there is no active piece.
func (s *Session) GhostOffset() int {
	p := s.Active()
	if p == nil {
		return 0
	}
	return p.DropDistance()
}
