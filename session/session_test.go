package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/cometh-game/cometh-screens/params"
	"github.com/cometh-game/cometh-screens/pkg/logger"
	"github.com/cometh-game/cometh-screens/screen"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	r := screen.NewRenderer()

	tests := []struct {
		name    string
		lggr    logger.Logger
		r       *screen.Renderer
		p       params.Params
		wantErr string
	}{
		{name: "nil logger", r: r, p: params.Redeem{}, wantErr: "logger cannot be nil"},
		{name: "nil renderer", lggr: logger.Nop(), p: params.Redeem{}, wantErr: "renderer cannot be nil"},
		{name: "nil params", lggr: logger.Nop(), r: r, wantErr: "params cannot be nil"},
		{
			name:    "unknown selector",
			lggr:    logger.Nop(),
			r:       r,
			p:       params.EndRental{Op: params.Selector(77)},
			wantErr: "unsupported selector Selector(77)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.lggr, tt.r, tt.p)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSession_Screens(t *testing.T) {
	t.Parallel()

	p := params.CreateOffer{
		BundleSize: 2,
		Fee: params.Fee{
			Token:  params.Token{Found: true, Ticker: "USDC", Decimals: 6},
			Amount: uint256.NewInt(10_000_000),
		},
		Nonce: uint256.NewInt(4),
	}

	s, err := New(logger.Test(t), screen.NewRenderer(), p)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, params.SelectorRentalCreateOffer, s.Selector())
	assert.Equal(t, 4, s.ScreenCount())

	results, err := s.Screens(32, 64)
	require.NoError(t, err)
	require.Len(t, results, 4)

	got := make([][2]string, 0, len(results))
	for _, res := range results {
		got = append(got, [2]string{res.Title, res.Msg})
	}
	assert.Equal(t, [][2]string{
		{"Public bundle size", "2 NFTs"},
		{"Entry fee", "10.000000 USDC"},
		{"Offer Nonce", "4"},
		{"Beneficiary", "0x0000000000000000000000000000000000000000"},
	}, got)
}

func TestSession_Screens_StopsAtFailure(t *testing.T) {
	t.Parallel()

	p := params.Sublet{TokenID: uint256.NewInt(1), BasisPoints: uint256.NewInt(123456789)}
	s, err := New(logger.Nop(), screen.NewRenderer(), p)
	require.NoError(t, err)

	results, err := s.Screens(32, 8)
	require.ErrorContains(t, err, "screen 2")
	require.Len(t, results, 2)
	assert.Equal(t, "Ship ID", results[0].Title)
	assert.Equal(t, "0x00000", results[1].Msg)
}

func TestSession_LogsInvalidCoordinate(t *testing.T) {
	t.Parallel()

	lggr, logs := logger.TestObserved(t, zapcore.WarnLevel)
	s, err := New(lggr, screen.NewRenderer(), params.Grind{CardID: uint256.NewInt(1)})
	require.NoError(t, err)

	res := s.Render(screen.Request{Index: 3, TitleLength: 32, MsgLength: 64})
	require.ErrorIs(t, res.Err, screen.ErrUnmapped)

	entries := logs.FilterMessage("Invalid selector/screen coordinate").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GRIND", fields["selector"])
	assert.Equal(t, int64(3), fields["screen"])
	assert.Equal(t, s.ID().String(), fields["session"])
}

func TestSession_Close(t *testing.T) {
	t.Parallel()

	s, err := New(logger.Nop(), screen.NewRenderer(), params.Craft{BoosterCards: 1})
	require.NoError(t, err)

	res := s.Render(screen.Request{Index: 1, TitleLength: 32, MsgLength: 64})
	require.True(t, res.OK())
	assert.Equal(t, "1 card", res.Msg)

	s.Close()
	s.Close()

	res = s.Render(screen.Request{Index: 1, TitleLength: 32, MsgLength: 64})
	require.ErrorIs(t, res.Err, ErrClosed)
	assert.Empty(t, res.Msg)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	c := &params.Context{Selector: params.SelectorCraft, BoosterCardCount: 3}
	s, err := FromContext(logger.Nop(), screen.NewRenderer(), c)
	require.NoError(t, err)

	res := s.Render(screen.Request{Index: 1, TitleLength: 32, MsgLength: 64})
	require.True(t, res.OK())
	assert.Equal(t, "3 cards", res.Msg)

	_, err = FromContext(logger.Nop(), screen.NewRenderer(), &params.Context{Selector: params.Selector(50)})
	require.ErrorContains(t, err, "convert decoder context")
}
