package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/isido/ray-tracer-challenge/shared/camera"
	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/scene"
)

var cfgFile string

// rootCmd renders a scene file to a raster image.
var rootCmd = &cobra.Command{
	Use:   "render <scene.json>",
	Short: "Render a sphere scene to a PPM or PNG image",
	Long: `render casts one ray per pixel into the scene described by a JSON
document and writes the resulting raster to disk. The scene file declares
the camera, the light, and the spheres with their materials and placement
transforms.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config: %w", err)
			}
		}
		return render(args[0], viper.GetInt("width"), viper.GetInt("height"), viper.GetString("out"), viper.GetString("format"))
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "path to a render settings file")
	rootCmd.Flags().Int("width", 480, "output image width in pixels")
	rootCmd.Flags().Int("height", 270, "output image height in pixels")
	rootCmd.Flags().String("out", "render.ppm", "output image path")
	rootCmd.Flags().String("format", "", "output format (ppm or png, default derived from the output path)")

	viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	viper.BindPFlag("height", rootCmd.Flags().Lookup("height"))
	viper.BindPFlag("out", rootCmd.Flags().Lookup("out"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

// outputFormat resolves the requested format, falling back to the output file extension.
func outputFormat(format, out string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".png":
			format = "png"
		default:
			format = "ppm"
		}
	}
	if format != "ppm" && format != "png" {
		return "", fmt.Errorf("unknown output format %q", format)
	}
	return format, nil
}

// render loads a scene, renders it, and writes the raster to out.
func render(scenePath string, width, height int, out, format string) error {
	format, err := outputFormat(format, out)
	if err != nil {
		return err
	}

	world, view, err := scene.WorldFromFile(scenePath)
	if err != nil {
		return err
	}

	cam := camera.New(width, height, view.Fov)
	if err := cam.SetTransform(matrix.ViewTransform(view.From, view.To, view.Up)); err != nil {
		return err
	}

	log.Printf("Rendering %s at %dx%d...", scenePath, width, height)
	start := time.Now()
	img := cam.Render(world)
	log.Printf("Rendered %d rays in %v.", width*height, time.Since(start))

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if format == "png" {
		err = img.WritePNG(f)
	} else {
		err = img.WritePPM(f)
	}
	if err != nil {
		return err
	}
	log.Printf("Wrote %s.", out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
