// Package input provides functionality for event parsing.
package input

import "github.com/veandco/go-sdl2/sdl"

// These constants are movement direction masks that should be applied to the second return value of HandleInputs.
const (
	MoveForward uint8 = 1 << iota
	MoveLeftward
	MoveBackward
	MoveRightward
	MoveUpward
	MoveDownward
)

// HandleInputs parses all input events waiting in the queue.
// This function returns whether the viewer should keep running, and the new movement directions.
func HandleInputs(moveDirs uint8) (bool, uint8) {
	running := true // We assume this to be true.

	// Pull every event out of the queue and evaluate/apply it.
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch keyEvent := event.(type) {
		case *sdl.QuitEvent:
			running = false
		case *sdl.KeyboardEvent:
			if keyEvent.Keysym.Mod != sdl.KMOD_NONE {
				continue
			}
			if keyEvent.Type == sdl.KEYDOWN {
				switch keyEvent.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_UP:
					// Pressing an opposing direction cancels both.
					if moveDirs&MoveBackward != 0 {
						moveDirs &^= MoveForward | MoveBackward
					} else {
						moveDirs |= MoveForward
					}
				case sdl.K_DOWN:
					if moveDirs&MoveForward != 0 {
						moveDirs &^= MoveBackward | MoveForward
					} else {
						moveDirs |= MoveBackward
					}
				case sdl.K_LEFT:
					if moveDirs&MoveRightward != 0 {
						moveDirs &^= MoveLeftward | MoveRightward
					} else {
						moveDirs |= MoveLeftward
					}
				case sdl.K_RIGHT:
					if moveDirs&MoveLeftward != 0 {
						moveDirs &^= MoveRightward | MoveLeftward
					} else {
						moveDirs |= MoveRightward
					}
				case sdl.K_PAGEUP:
					if moveDirs&MoveDownward != 0 {
						moveDirs &^= MoveUpward | MoveDownward
					} else {
						moveDirs |= MoveUpward
					}
				case sdl.K_PAGEDOWN:
					if moveDirs&MoveUpward != 0 {
						moveDirs &^= MoveDownward | MoveUpward
					} else {
						moveDirs |= MoveDownward
					}
				}
			} else if keyEvent.Type == sdl.KEYUP {
				switch keyEvent.Keysym.Sym {
				case sdl.K_UP:
					moveDirs &^= MoveForward
				case sdl.K_DOWN:
					moveDirs &^= MoveBackward
				case sdl.K_LEFT:
					moveDirs &^= MoveLeftward
				case sdl.K_RIGHT:
					moveDirs &^= MoveRightward
				case sdl.K_PAGEUP:
					moveDirs &^= MoveUpward
				case sdl.K_PAGEDOWN:
					moveDirs &^= MoveDownward
				}
			}
		}
	}
	return running, moveDirs
}
