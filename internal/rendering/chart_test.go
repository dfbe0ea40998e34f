package rendering

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeminuswork/readiness-check/internal/types"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestBuildChartPNG_ProducesPNG(t *testing.T) {
	png, err := BuildChartPNG(sampleScores())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestBuildChartPNG_MissingThemesShowZero(t *testing.T) {
	// Degenerate but allowed: an empty ScoreSet charts six zero bars.
	png, err := BuildChartPNG(types.ScoreSet{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
