package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjmray/photon-forge/pkg/core"
)

func TestBufferEncodeRGB8BlackAndWhite(t *testing.T) {
	buf := NewBuffer(2, 1)
	buf.Set(0, 0, core.Color{})
	buf.Set(1, 0, core.NewVec3(1, 1, 1))

	bytes := buf.EncodeRGB8()
	assert.Equal(t, []byte{0, 0, 0, 255, 255, 255}, bytes)
}

func TestBufferEncodeRGB8ClampsAboveOne(t *testing.T) {
	buf := NewBuffer(1, 1)
	buf.Set(0, 0, core.NewVec3(5, 5, 5))

	bytes := buf.EncodeRGB8()
	assert.Equal(t, byte(255), bytes[0])
}

func TestBufferAtRoundTrips(t *testing.T) {
	buf := NewBuffer(3, 3)
	color := core.NewVec3(0.1, 0.2, 0.3)
	buf.Set(2, 1, color)
	assert.Equal(t, color, buf.At(2, 1))
}
