package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    zapcore.Level
		wantErr string
	}{
		{name: "empty defaults to info", give: "", want: zapcore.InfoLevel},
		{name: "debug", give: "debug", want: zapcore.DebugLevel},
		{name: "upper case", give: "WARN", want: zapcore.WarnLevel},
		{name: "invalid", give: "loud", wantErr: `invalid log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamed(t *testing.T) {
	t.Parallel()

	lggr := Test(t).Named("session").Named("render")
	assert.Equal(t, "session.render", lggr.Name())
}

func TestTestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.WarnLevel)
	lggr.Infow("ignored")
	lggr.Warnw("kept", "screen", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["screen"])
}

func TestNop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Errorw("dropped")
	assert.NoError(t, lggr.Sync())
}
