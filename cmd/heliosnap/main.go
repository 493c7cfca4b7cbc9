// Command heliosnap renders scenes headless and writes PNG snapshots.
//
// It runs the same app loop as the windowed build against the in-memory
// framebuffer, advances a number of warmup ticks so animated surfaces settle,
// and encodes the final frame.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"helios/app"
	"helios/hal"
)

func main() {
	var (
		outDir string
		scene  int
		width  int
		height int
		ticks  int
	)
	flag.StringVar(&outDir, "out", ".", "Output directory for snapshots.")
	flag.IntVar(&scene, "scene", 0, "Scene index 1-7, or 0 for all scenes.")
	flag.IntVar(&width, "width", 800, "Snapshot width in pixels.")
	flag.IntVar(&height, "height", 600, "Snapshot height in pixels.")
	flag.IntVar(&ticks, "ticks", 120, "Ticks to advance before capturing.")
	flag.Parse()

	scenes, err := sceneList(scene)
	if err != nil {
		fmt.Fprintln(os.Stderr, "heliosnap:", err)
		os.Exit(2)
	}

	for _, n := range scenes {
		out := filepath.Join(outDir, fmt.Sprintf("helios-scene-%d.png", n))
		if err := snapshot(n, width, height, ticks, out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}

// sceneList expands the -scene flag: 0 means every scene, anything else must
// be a valid 1-based index so the output file name matches what was rendered.
func sceneList(scene int) ([]int, error) {
	if scene == 0 {
		return []int{1, 2, 3, 4, 5, 6, 7}, nil
	}
	if scene < 1 || scene > 7 {
		return nil, fmt.Errorf("scene %d out of range 1-7", scene)
	}
	return []int{scene}, nil
}

func snapshot(scene, width, height, ticks int, out string) error {
	h := hal.New(width, height)
	step := app.New(h, app.Config{Scene: scene})

	for i := 0; i < ticks; i++ {
		if err := step(); err != nil {
			if errors.Is(err, hal.ErrQuit) {
				break
			}
			return fmt.Errorf("scene %d: step: %w", scene, err)
		}
	}

	fb := h.Display().Framebuffer()
	img := &image.NRGBA{
		Pix:    append([]byte(nil), fb.Buffer()...),
		Stride: fb.StrideBytes(),
		Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %q: %w", out, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", out, err)
	}
	return nil
}
