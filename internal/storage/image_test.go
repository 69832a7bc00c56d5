package storage

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeDownscalesLongEdge(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2048, 1024))

	out := Resize(src, avatarMaxEdge)
	bounds := out.Bounds()

	assert.Equal(t, avatarMaxEdge, bounds.Dx())
	assert.Equal(t, avatarMaxEdge/2, bounds.Dy())
}

func TestResizePortrait(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 1200))

	out := Resize(src, avatarMaxEdge)
	bounds := out.Bounds()

	assert.Equal(t, avatarMaxEdge, bounds.Dy())
	assert.Equal(t, 256, bounds.Dx())
}

func TestResizeKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))

	out := Resize(src, avatarMaxEdge)
	assert.Equal(t, src.Bounds(), out.Bounds())
}
