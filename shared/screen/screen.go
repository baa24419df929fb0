// Package screen provides screen-related functionality for the interactive viewer.
package screen

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/isido/ray-tracer-challenge/shared/canvas"
)

// These constants are timing values related to screen-updating.
const (
	FPS        uint32 = 30
	MsPerFrame uint32 = 1000 / FPS
)

// StartScreen initializes SDL2 and a new window.
func StartScreen(name string, width, height int) (*sdl.Window, *sdl.Surface, error) {
	complete := false

	// Start SDL2.
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}
	defer func() {
		if !complete {
			sdl.Quit() // Only want to call Quit if this function doesn't complete.
		}
	}()

	// Create new window.
	window, err := sdl.CreateWindow(name, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if !complete {
			window.Destroy() // Again, only want to call if this function doesn't complete.
		}
	}()

	// Get the screen from the new window.
	surface, err := window.GetSurface()
	if err != nil {
		return nil, nil, err
	}

	complete = true
	return window, surface, nil
}

// StopScreen closes SDL2 and some window.
func StopScreen(window *sdl.Window) {
	window.Destroy()
	sdl.Quit()
}

// Blit copies a rendered canvas onto a window's surface and presents it.
// The canvas must be the same size as the surface.
func Blit(window *sdl.Window, surface *sdl.Surface, c *canvas.Canvas) error {
	img := c.Image()
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			surface.Set(x, y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
	return window.UpdateSurface()
}
