// Package session scopes the parameters of one operation to a single confirmation flow.
//
// A Session is created once the calldata of an operation has been decoded, serves every
// screen the host asks for, and is closed when the user approves or rejects. It does not
// track which screens were already shown.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cometh-game/cometh-screens/params"
	"github.com/cometh-game/cometh-screens/pkg/logger"
	"github.com/cometh-game/cometh-screens/screen"
)

var ErrClosed = errors.New("session is closed")

// Session renders the screens of one operation.
type Session struct {
	id       uuid.UUID
	lggr     logger.Logger
	renderer *screen.Renderer
	params   params.Params
	closed   bool
}

// New starts a session for p.
func New(lggr logger.Logger, renderer *screen.Renderer, p params.Params) (*Session, error) {
	if lggr == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if renderer == nil {
		return nil, errors.New("renderer cannot be nil")
	}
	if p == nil {
		return nil, screen.ErrNilParams
	}
	if !p.Selector().Valid() {
		return nil, fmt.Errorf("unsupported selector %s", p.Selector())
	}

	id := uuid.New()
	s := &Session{
		id:       id,
		lggr:     lggr.Named("session"),
		renderer: renderer,
		params:   p,
	}
	s.lggr.Debugw("Session started",
		"session", id.String(),
		"selector", p.Selector().String(),
		"screens", s.ScreenCount(),
	)

	return s, nil
}

// FromContext converts a decoder context into params and starts a session for them.
func FromContext(lggr logger.Logger, renderer *screen.Renderer, c *params.Context) (*Session, error) {
	p, err := c.Params()
	if err != nil {
		return nil, fmt.Errorf("convert decoder context: %w", err)
	}

	return New(lggr, renderer, p)
}

// ID returns the session identifier used in log entries.
func (s *Session) ID() uuid.UUID { return s.id }

// Selector returns the selector of the operation under review.
func (s *Session) Selector() params.Selector { return s.params.Selector() }

// ScreenCount returns the number of screens the host should show.
func (s *Session) ScreenCount() int { return screen.ScreenCount(s.params.Selector()) }

// Render renders one screen. Failures are logged and reported through the result status.
func (s *Session) Render(req screen.Request) screen.Result {
	if s.closed {
		return screen.Result{Status: screen.StatusError, Err: ErrClosed}
	}

	res := s.renderer.Render(s.params, req)
	switch {
	case res.OK():
		s.lggr.Debugw("Screen rendered",
			"session", s.id.String(),
			"selector", s.Selector().String(),
			"screen", req.Index,
		)
	case errors.Is(res.Err, screen.ErrUnmapped):
		s.lggr.Warnw("Invalid selector/screen coordinate",
			"session", s.id.String(),
			"selector", s.Selector().String(),
			"screen", req.Index,
		)
	default:
		s.lggr.Errorw("Failed to render screen",
			"session", s.id.String(),
			"selector", s.Selector().String(),
			"screen", req.Index,
			"error", res.Err,
		)
	}

	return res
}

// Screens renders every screen of the operation in order, stopping at the first failure.
// The results rendered so far are returned along with the error.
func (s *Session) Screens(titleLength, msgLength int) ([]screen.Result, error) {
	n := s.ScreenCount()
	results := make([]screen.Result, 0, n)
	for i := range n {
		res := s.Render(screen.Request{Index: i, TitleLength: titleLength, MsgLength: msgLength})
		if !res.OK() {
			return results, fmt.Errorf("screen %d: %w", i, res.Err)
		}
		results = append(results, res)
	}

	return results, nil
}

// Close ends the session. Later renders fail with ErrClosed.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.lggr.Debugw("Session closed", "session", s.id.String())
}
