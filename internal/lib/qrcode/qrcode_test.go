package qrcode

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	out, err := RenderPNG("https://example.com", DefaultScale)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Zero(t, img.Bounds().Dx()%DefaultScale)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderPNG_ScaleChangesSize(t *testing.T) {
	small, err := RenderPNG("hello", 1)
	require.NoError(t, err)
	large, err := RenderPNG("hello", 10)
	require.NoError(t, err)

	a, err := png.Decode(bytes.NewReader(small))
	require.NoError(t, err)
	b, err := png.Decode(bytes.NewReader(large))
	require.NoError(t, err)
	assert.Equal(t, a.Bounds().Dx()*10, b.Bounds().Dx())
}

func TestRenderPNG_InvalidScale(t *testing.T) {
	for _, scale := range []int{0, -1, MaxScale + 1} {
		_, err := RenderPNG("hello", scale)
		assert.True(t, errors.Is(err, ErrInvalidInput), "scale %d", scale)
	}
}

func TestRenderPNG_TooLong(t *testing.T) {
	_, err := RenderPNG(strings.Repeat("x", 5000), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
