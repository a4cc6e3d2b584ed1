// gokd-demo animates a few graphics through the dirty-region compositor
// and writes the composited frames out as PNG files, logging how much of
// the surface each frame actually repainted.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/kjkrol/gokg/geom"
	"go.uber.org/zap"

	"github.com/kjkrol/gokd/internal/platform"
	"github.com/kjkrol/gokd/pkg/gfx"
)

const (
	surfaceWidth  = 320
	surfaceHeight = 240
)

func main() {
	frames := flag.Int("frames", 120, "number of frames to composite")
	every := flag.Int("every", 30, "write a PNG every N frames (0 disables)")
	out := flag.String("out", "frames", "output directory for PNG frames")
	fps := flag.Int("fps", 0, "pace frames to this rate (0 renders unpaced)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	if *every > 0 {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			l.Fatal("create output dir", zap.String("path", *out), zap.Error(err))
		}
	}

	surface := platform.NewRGBASurface(surfaceWidth, surfaceHeight)
	manager := gfx.NewManager(surface)

	// Back layer: opaque background.
	background := gfx.NewColour(color.RGBA{R: 24, G: 24, B: 40, A: 255}, gfx.NewRect(0, 0, surfaceWidth, surfaceHeight))
	manager.Add(10, background)

	// Middle layer: a sprite bouncing around the surface.
	sprite := gfx.NewImage(makeSprite(48, 48), 20, 30)
	manager.Add(5, sprite)

	// Front layer: a translucent panel that blinks.
	panel := gfx.NewColour(color.NRGBA{R: 200, G: 180, B: 40, A: 128}, gfx.NewRect(100, 80, 120, 60))
	manager.Add(0, panel)

	stats := &frameStats{}
	manager.SetObserver(stats)

	velocity := geom.NewVec(3, 2)
	pace := newPacer(*fps)
	for frame := 0; frame < *frames; frame++ {
		pace.wait()
		bounds := sprite.Bounds()
		if bounds.X+velocity.X < 0 || bounds.Right()+velocity.X > surfaceWidth {
			velocity = geom.NewVec(-velocity.X, velocity.Y)
		}
		if bounds.Y+velocity.Y < 0 || bounds.Bottom()+velocity.Y > surfaceHeight {
			velocity = geom.NewVec(velocity.X, -velocity.Y)
		}
		sprite.MoveBy(velocity)

		if frame%40 == 20 {
			panel.Hide()
		} else if frame%40 == 0 && frame > 0 {
			panel.Show()
		}

		drawn, drew, err := manager.Draw()
		if err != nil {
			l.Fatal("draw frame", zap.Int("frame", frame), zap.Error(err))
		}
		if drew {
			l.Debug("frame",
				zap.Int("n", frame),
				zap.Int("rects", len(drawn)),
				zap.Int("area", totalArea(drawn)))
		}

		if *every > 0 && frame%*every == 0 {
			path := filepath.Join(*out, fmt.Sprintf("frame%04d.png", frame))
			if err := writePNG(path, surface.RGBA()); err != nil {
				l.Fatal("write frame", zap.String("path", path), zap.Error(err))
			}
		}
	}

	full := surfaceWidth * surfaceHeight
	l.Info("done",
		zap.Int("frames", stats.frames),
		zap.Int("rects", stats.rects),
		zap.Float64("avgCoverage", float64(stats.area)/float64(stats.frames*full)))
}

// frameStats tallies drawn rectangles across the run via the manager's
// observer hook.
type frameStats struct {
	frames int
	rects  int
	area   int
}

func (s *frameStats) OnGraphicAdded(layer int, g gfx.Graphic, id uint64) {
	zap.L().Debug("graphic added", zap.Int("layer", layer), zap.Uint64("id", id))
}

func (s *frameStats) OnGraphicRemoved(layer int, g gfx.Graphic, id uint64) {
	zap.L().Debug("graphic removed", zap.Int("layer", layer), zap.Uint64("id", id))
}

func (s *frameStats) OnFrameDrawn(drawn []gfx.Rect) {
	s.frames++
	s.rects += len(drawn)
	s.area += totalArea(drawn)
}

func totalArea(rects []gfx.Rect) int {
	area := 0
	for _, r := range rects {
		area += r.W * r.H
	}
	return area
}

// makeSprite renders a simple opaque diamond-ish gradient tile.
func makeSprite(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := abs(x-w/2) + abs(y-h/2)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 - 3*d),
				G: uint8(80 + 2*d),
				B: 160,
				A: 255,
			})
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
