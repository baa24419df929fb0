package main

import (
	"log"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/isido/ray-tracer-challenge/shared/camera"
	"github.com/isido/ray-tracer-challenge/shared/input"
	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/scene"
	"github.com/isido/ray-tracer-challenge/shared/screen"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// moveStep is the distance the camera travels per frame while a movement key is held.
const moveStep float64 = 0.1

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 4 {
		log.Fatalln("Improper parameters.  This program requires the parameters:" +
			"\n\t(1) scene file path" +
			"\n\t(2) window width" +
			"\n\t(3) window height")
	}

	// Parse the command line parameters.
	world, view, err := scene.WorldFromFile(os.Args[1])
	if err != nil {
		log.Fatalln("Could not load scene:", err)
	}
	width, err := strconv.Atoi(os.Args[2])
	if err != nil || width <= 0 {
		log.Fatalln("Invalid window width.")
	}
	height, err := strconv.Atoi(os.Args[3])
	if err != nil || height <= 0 {
		log.Fatalln("Invalid window height.")
	}

	// Start the screen.
	window, surface, err := screen.StartScreen("Sphere Viewer", width, height)
	if err != nil {
		log.Fatalln("Could not start screen:", err)
	}
	defer screen.StopScreen(window)

	cam := camera.New(width, height, view.Fov)

	// Run the input/update/render loop.
	var prevUpdate, currentUpdate uint32
	for running, moveDirs := true, uint8(0); running; {
		prevUpdate = sdl.GetTicks()

		// Handle new inputs.
		running, moveDirs = input.HandleInputs(moveDirs)

		// Check whether the camera needs to move.
		forward := view.To.Sub(view.From).Norm()
		right := forward.Cross(view.Up.Norm())
		moveVector := tuple.Vector(0, 0, 0)
		if moveDirs&input.MoveForward != 0 {
			moveVector = moveVector.Add(forward)
		} else if moveDirs&input.MoveBackward != 0 {
			moveVector = moveVector.Sub(forward)
		}
		if moveDirs&input.MoveLeftward != 0 {
			moveVector = moveVector.Sub(right)
		} else if moveDirs&input.MoveRightward != 0 {
			moveVector = moveVector.Add(right)
		}
		if moveDirs&input.MoveUpward != 0 {
			moveVector = moveVector.Add(view.Up.Norm())
		} else if moveDirs&input.MoveDownward != 0 {
			moveVector = moveVector.Sub(view.Up.Norm())
		}

		// If the camera needs to move, move both ends of the view so the direction is kept.
		if !moveVector.Equals(tuple.Vector(0, 0, 0)) {
			step := moveVector.Norm().Scale(moveStep)
			view.From = view.From.Add(step)
			view.To = view.To.Add(step)
		}

		// Re-derive the view transform and draw the frame.
		if err := cam.SetTransform(matrix.ViewTransform(view.From, view.To, view.Up)); err != nil {
			log.Fatalln("Could not orient camera:", err)
		}
		if err := screen.Blit(window, surface, cam.Render(world)); err != nil {
			log.Fatalln("Could not draw frame:", err)
		}

		// If there's still time before the next frame needs to be drawn, wait.
		currentUpdate = sdl.GetTicks()
		if currentUpdate-prevUpdate < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - (currentUpdate - prevUpdate))
		}
	}
}
