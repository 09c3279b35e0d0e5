package engine

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/reef-arcade/audio"
	"github.com/lixenwraith/reef-arcade/event"
)

var (
	ErrNotTerminal = errors.New("engine: session has not reached a terminal state")
	ErrCompleted   = errors.New("engine: session already completed")
	ErrRunning     = errors.New("engine: session still running")
)

// Session binds one engine run to its host and sound output
// All methods run on the loop goroutine
type Session struct {
	id    string
	game  Game
	host  Host
	sound audio.Player
	base  *slog.Logger
	log   *slog.Logger

	outcome  *event.Terminal
	rejected error
	done     bool
}

type SessionOption func(*Session)

func WithSound(p audio.Player) SessionOption { return func(s *Session) { s.sound = p } }

func WithSessionLogger(l *slog.Logger) SessionOption { return func(s *Session) { s.log = l } }

func NewSession(game Game, host Host, opts ...SessionOption) *Session {
	s := &Session{
		id:   uuid.NewString(),
		game: game,
		host: host,
	}
	for _, o := range opts {
		o(s)
	}
	if s.sound == nil {
		s.sound = audio.Nop{}
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.base = s.log
	s.log = s.base.With("session", s.id)
	return s
}

func (s *Session) ID() string { return s.id }

// Game returns the driven engine
func (s *Session) Game() Game { return s.game }

// Tick advances the engine one step and routes its events
func (s *Session) Tick() {
	if s.done {
		return
	}
	s.game.Advance()
	s.Dispatch()
}

// Dispatch routes pending engine events; call after any direct engine action
func (s *Session) Dispatch() {
	for _, ev := range s.game.Drain() {
		switch ev.Type {
		case event.EventSound:
			s.sound.Play(ev.Payload.(event.Cue))
		case event.EventAchievement:
			a := ev.Payload.(event.Achievement)
			s.host.OnUnlockAchievement(a.ID, a.Title, a.Icon)
			s.log.Info("achievement unlocked", "id", a.ID)
		case event.EventTerminal:
			t := ev.Payload.(event.Terminal)
			s.outcome = &t
			s.log.Info("terminal state", "outcome", t.Outcome.String(), "score", t.Score)
		case event.EventRevive:
			s.outcome = nil
		case event.EventRejected:
			if err, ok := ev.Payload.(error); ok {
				s.rejected = err
			}
		default:
			s.log.Debug("engine event", "type", ev.Type.String(), "payload", ev.Payload)
		}
	}
}

// Outcome returns the latest terminal result, if any
func (s *Session) Outcome() (event.Terminal, bool) {
	if s.outcome == nil || !s.game.Terminal() {
		return event.Terminal{}, false
	}
	return *s.outcome, true
}

// LastRejection returns and clears the most recent rejected action
func (s *Session) LastRejection() error {
	err := s.rejected
	s.rejected = nil
	return err
}

// Done reports whether OnComplete has been delivered
func (s *Session) Done() bool { return s.done }

// Dismiss reports the score to the host; only once, only from a terminal state
func (s *Session) Dismiss() error {
	if s.done {
		return ErrCompleted
	}
	if !s.game.Terminal() {
		return ErrNotTerminal
	}
	s.done = true
	score := s.game.Score()
	s.host.OnComplete(score)
	s.log.Info("session completed", "score", score)
	return nil
}

// Abandon ends the session without reporting, as when the player quits mid-run
func (s *Session) Abandon() {
	s.done = true
}

// Renew starts a new run on the same engine after the previous one completed
// The caller resets the engine itself, e.g. by loading the next puzzle level
func (s *Session) Renew() error {
	if !s.done {
		return ErrRunning
	}
	s.id = uuid.NewString()
	s.log = s.base.With("session", s.id)
	s.outcome = nil
	s.rejected = nil
	s.done = false
	s.log.Info("session renewed")
	return nil
}
