package tokens

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cometh-game/cometh-screens/params"
)

const usdcAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"

func TestParse(t *testing.T) {
	t.Parallel()

	l, err := Parse(strings.NewReader(`
tokens:
  - address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
    ticker: USDC
    decimals: 6
  - address: "0x7ceb23fd6bc0add59e62ac25578270cff1b9f619"
    ticker: " WETH "
    decimals: 18
`))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	assert.Equal(t,
		params.Token{Found: true, Ticker: "USDC", Decimals: 6},
		l.Lookup(common.HexToAddress(usdcAddress)),
	)
	assert.Equal(t,
		params.Token{Found: true, Ticker: "WETH", Decimals: 18},
		l.Lookup(common.HexToAddress("0x7CEB23FD6BC0ADD59E62AC25578270CFF1B9F619")),
	)
	assert.Equal(t, params.Token{}, l.Lookup(common.Address{}))
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	l, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestParse_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("tokens:\n  - address: \"" + usdcAddress + "\"\n    symbol: USDC\n"))
	require.ErrorContains(t, err, "decode token list")
}

func TestNewList_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{
			name:    "bad address",
			entries: []Entry{{Address: "0x1234", Ticker: "X"}},
			wantErr: `token 0: invalid address "0x1234"`,
		},
		{
			name:    "empty ticker",
			entries: []Entry{{Address: usdcAddress}},
			wantErr: `token 0: ticker "" must be 1 to 11 characters`,
		},
		{
			name:    "long ticker",
			entries: []Entry{{Address: usdcAddress, Ticker: "ABCDEFGHIJKL"}},
			wantErr: `token 0: ticker "ABCDEFGHIJKL" must be 1 to 11 characters`,
		},
		{
			name: "duplicate",
			entries: []Entry{
				{Address: usdcAddress, Ticker: "USDC", Decimals: 6},
				{Address: strings.ToLower(usdcAddress), Ticker: "USDC", Decimals: 6},
			},
			wantErr: "token 1: duplicate address " + usdcAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewList(tt.entries)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  - address: \""+usdcAddress+"\"\n    ticker: USDC\n    decimals: 6\n"), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	assert.True(t, l.Lookup(common.HexToAddress(usdcAddress)).Found)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestList_Nil(t *testing.T) {
	t.Parallel()

	var l *List
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Lookup(common.HexToAddress(usdcAddress)).Found)
}
