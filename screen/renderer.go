// Package screen renders the confirmation screens of the Cometh plugin.
//
// A screen is addressed by the selector of the operation under review and a zero based
// screen index. [Resolve] maps the coordinate to a renderer through a fixed table and the
// [Renderer] writes the title and message into the host's buffers:
//
//	r := screen.NewRenderer()
//	res := r.Render(params.Craft{BoosterCards: 3}, screen.Request{Index: 1, TitleLength: 32, MsgLength: 64})
//	// res.Title == "Booster", res.Msg == "3 cards"
//
// Rendering is stateless. The host may request screens in any order and any number of times;
// the same params and request always give the same result.
package screen

import (
	"errors"
	"fmt"

	"github.com/cometh-game/cometh-screens/display"
	"github.com/cometh-game/cometh-screens/params"
)

var (
	ErrUnmapped       = errors.New("no screen for selector and index")
	ErrParamsMismatch = errors.New("params do not match screen")
	ErrNilParams      = errors.New("params cannot be nil")
)

// Status is the result code handed back to the host.
type Status int

const (
	StatusError Status = iota
	StatusOK
)

func (s Status) String() string {
	if s == StatusOK {
		return "OK"
	}

	return "ERROR"
}

// Request asks for one screen. TitleLength and MsgLength are the host buffer capacities,
// terminating zero included.
type Request struct {
	Index       int
	TitleLength int
	MsgLength   int
}

// Result is the outcome of a Request. Title and Msg are empty whenever Status is
// StatusError.
type Result struct {
	Status Status
	Title  string
	Msg    string
	// Err describes why rendering failed. It is nil when Status is StatusOK.
	Err error
}

// OK reports whether the screen was rendered.
func (r Result) OK() bool { return r.Status == StatusOK }

// Option configures a Renderer.
type Option func(*Renderer)

// WithAddressEncoder replaces the EIP-55 checksum encoder used by address screens.
func WithAddressEncoder(enc display.AddressEncoder) Option {
	return func(r *Renderer) {
		r.encoder = enc
	}
}

// Renderer renders screens. It holds no per-operation state and is safe to reuse across
// confirmation sessions.
type Renderer struct {
	encoder display.AddressEncoder
}

// NewRenderer returns a Renderer configured with opts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{encoder: display.ChecksumEncoder{}}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RenderScreen clears both buffers of s and renders screen index of p into them. On error
// the buffers are left cleared.
func (r *Renderer) RenderScreen(p params.Params, index int, s Screen) error {
	s.reset()
	if p == nil {
		return ErrNilParams
	}

	rt, ok := Resolve(p.Selector(), index)
	if !ok {
		return fmt.Errorf("%w: selector %s, screen %d", ErrUnmapped, p.Selector(), index)
	}

	if err := rt.render(r, p, s); err != nil {
		s.reset()
		return fmt.Errorf("render %s screen %d (%s): %w", rt.Selector, rt.Index, rt.Name, err)
	}

	return nil
}

// Render allocates buffers of the requested sizes, renders the screen and returns the
// resulting texts.
func (r *Renderer) Render(p params.Params, req Request) Result {
	s := Screen{
		Title: display.NewBuffer(req.TitleLength),
		Msg:   display.NewBuffer(req.MsgLength),
	}

	if err := r.RenderScreen(p, req.Index, s); err != nil {
		return Result{Status: StatusError, Err: err}
	}

	return Result{Status: StatusOK, Title: s.Title.String(), Msg: s.Msg.String()}
}
