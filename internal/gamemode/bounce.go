package gamemode

import (
	"log"

	"bounce/internal/entity"
	"bounce/internal/physics"
	"bounce/internal/render"
)

type Phase int

const (
	PhaseRunning  Phase = iota // Balls moving, score ticking
	PhaseGameOver              // Frozen, farewell shown
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "running"
}

// Messages are the farewells shown on game over.
var Messages = []string{
	"THAT'LL DO IT",
	"WOW. SUCH LOSE. VERY FAIL.",
	"SO CLOSE!",
	"YOU HAVE SUCCEEDED AT FAILING",
}

// Cursor is the last known pointer position. It is not Valid until the
// pointer has moved at least once.
type Cursor struct {
	X, Y  float64
	Valid bool
}

type Options struct {
	Bounds            physics.Bounds
	StartingBalls     int
	EscalateEvery     int // score period between escalations, 0 never escalates
	EscalateBalls     int // balls added per escalation
	EndOnPointerLeave bool
}

// Session is one game from first ball to game over.
type Session struct {
	Phase   Phase
	Score   int
	Balls   []entity.Ball
	Cursor  Cursor
	Message string

	gen  *entity.Generator
	opts Options
}

// NewSession seeds the ball list with opts.StartingBalls generated balls.
func NewSession(gen *entity.Generator, opts Options) *Session {
	s := &Session{
		Phase: PhaseRunning,
		Balls: make([]entity.Ball, 0, opts.StartingBalls),
		gen:   gen,
		opts:  opts,
	}
	s.spawn(opts.StartingBalls)
	return s
}

func (s *Session) Over() bool {
	return s.Phase == PhaseGameOver
}

// PointerMoved records a new pointer position.
func (s *Session) PointerMoved(x, y float64) {
	s.SetCursor(Cursor{X: x, Y: y, Valid: true})
}

// SetCursor replaces the cursor wholesale, as taken from a Pointer snapshot.
func (s *Session) SetCursor(c Cursor) {
	if s.Over() {
		return
	}
	s.Cursor = c
}

// PointerLeft ends the game if leaving the play surface is fatal.
func (s *Session) PointerLeft() {
	if s.opts.EndOnPointerLeave {
		s.End()
	}
}

// Tick advances the game by dt seconds and reports whether it is over.
// A ball under the cursor ends the game before anything else moves.
func (s *Session) Tick(dt float64) bool {
	if s.Over() {
		return true
	}

	c := s.Cursor
	for i := range s.Balls {
		b := &s.Balls[i]
		if c.Valid && physics.Touches(b, c.X, c.Y) {
			s.End()
			return true
		}
		physics.Advance(b, dt, s.opts.Bounds)
	}

	s.Score++
	if s.opts.EscalateEvery > 0 && s.Score%s.opts.EscalateEvery == 0 {
		s.spawn(s.opts.EscalateBalls)
		log.Printf("score %d: %d balls in play", s.Score, len(s.Balls))
	}
	return false
}

// End freezes the session and picks a farewell. Only the first call counts.
func (s *Session) End() {
	if s.Over() {
		return
	}
	s.Phase = PhaseGameOver
	s.Message = Messages[s.gen.Pick(len(Messages))]
	log.Printf("game over: score %d, %d balls", s.Score, len(s.Balls))
}

// Scene is a read-only view of the session for drawing.
func (s *Session) Scene() render.Scene {
	return render.Scene{
		Width:  s.opts.Bounds.MaxX,
		Height: s.opts.Bounds.MaxY,
		Score:  s.Score,
		Balls:  s.Balls,
	}
}

// Draw renders the field and, once over, the farewell on top.
func (s *Session) Draw(surf render.Surface) {
	render.DrawScene(surf, s.Scene())
	if s.Over() {
		render.DrawGameOver(surf, s.opts.Bounds.MaxX, s.opts.Bounds.MaxY, s.Message)
	}
}

func (s *Session) spawn(n int) {
	for i := 0; i < n; i++ {
		s.Balls = append(s.Balls, s.gen.Generate(s.opts.Bounds.MaxX, s.opts.Bounds.MaxY))
	}
}
