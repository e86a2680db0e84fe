package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetFallsBackToDisabledLogger(t *testing.T) {
	lg := Get(context.Background())
	assert.Equal(t, zerolog.Disabled, lg.GetLevel())
}

func TestSetGet(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := New(buf, false)
	ctx := Set(context.Background(), &lg)

	Get(ctx).Info().Str("file", "chart.png").Msg("written")
	Get(ctx).Debug().Msg("hidden")
	assert.Contains(t, buf.String(), "written")
	assert.Contains(t, buf.String(), "file=chart.png")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := New(buf, true)
	lg.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
