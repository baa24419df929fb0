// Package camera provides the pixel-to-world-ray mapping and whole-frame rendering.
package camera

import (
	"fmt"
	"math"

	"github.com/isido/ray-tracer-challenge/shared/canvas"
	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/ray"
	"github.com/isido/ray-tracer-challenge/shared/scene"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// Camera represents a view onto a world through a canvas one unit in
// front of the eye.
type Camera struct {
	HSize int
	VSize int
	Fov   float64

	transform  matrix.Matrix
	inverse    matrix.Matrix
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// New returns a new camera for a canvas of hsize by vsize pixels with the
// given field of view (in radians), looking down the negative z axis.
func New(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:     hsize,
		VSize:     vsize,
		Fov:       fov,
		transform: matrix.Identity(),
		inverse:   matrix.Identity(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// Transform returns the view transform of the camera c.
func (c *Camera) Transform() matrix.Matrix {
	return c.transform
}

// SetTransform sets the view transform of the camera c.
// The inverse is computed here, so a singular view transform is rejected
// at construction time.
func (c *Camera) SetTransform(m matrix.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera view transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// PixelSize returns the world-space size of one canvas pixel.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray that passes through the centre
// of the pixel (px, py) on the camera's canvas.
func (c *Camera) RayForPixel(px, py int) ray.Ray {
	// Offsets from the canvas edge to the centre of the pixel.
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The untransformed canvas sits at z = -1 with x increasing to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.TupleProd(tuple.Point(worldX, worldY, -1))
	origin := c.inverse.TupleProd(tuple.Point(0, 0, 0))
	return ray.New(origin, pixel.Sub(origin).Norm())
}

// Render casts one ray per pixel into the world w and collects the
// resulting colours on a canvas. Pixels are independent of one another,
// so the world must not be mutated while a render is in flight.
func (c *Camera) Render(w *scene.World) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			img.WritePixel(x, y, w.ColorAt(c.RayForPixel(x, y)))
		}
	}
	return img
}
