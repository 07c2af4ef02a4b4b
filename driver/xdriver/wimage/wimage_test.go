package wimage

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutImageChunks(t *testing.T) {
	r := image.Rect(0, 0, 1000, 500)
	u, err := putImageChunks(r)
	require.NoError(t, err)
	require.Greater(t, len(u), 1)

	area := 0
	for _, c := range u {
		assert.LessOrEqual(t, c.Dx()*c.Dy(), ((1<<16)*4-28)/4)
		area += c.Dx() * c.Dy()
	}
	assert.Equal(t, r.Dx()*r.Dy(), area)
	assert.Equal(t, r.Max.Y, u[len(u)-1].Max.Y)
}

func TestPutImageChunksTooWide(t *testing.T) {
	_, err := putImageChunks(image.Rect(0, 0, 70000, 1))
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	wi := NewWImage(&Options{})
	require.NoError(t, wi.Resize(image.Rect(0, 0, 30, 20)))
	assert.Equal(t, image.Rect(0, 0, 30, 20), wi.Image().Bounds())
	// nothing to send outside the image
	assert.NoError(t, wi.PutImage(image.Rect(100, 100, 200, 200)))
}
