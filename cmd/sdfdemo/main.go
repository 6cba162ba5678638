// Command sdfdemo renders one frame of a signed-distance-field demo scene
// with the sdfmarch ray marcher, at the scene time given by -t, and writes
// the result to a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"time"

	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/renderer"
	"github.com/gogpu/sdfmarch/scene"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		output  = flag.String("output", "demo.png", "output file")
		workers = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		debug   = flag.Bool("debug", false, "use the finer-grained debug tile count")
		t       = flag.Float64("t", 0, "scene time passed to the builder")
	)
	flag.Parse()

	r := renderer.New(*workers, buildDemoScene, *width, *height, marcher.DefaultBackground, *debug)
	defer r.Shutdown()

	r.Update(float32(*t))
	r.RenderFrame()
	for !r.IsDone() {
		time.Sleep(time.Millisecond)
	}

	if err := savePNG(*output, r.Buffer()); err != nil {
		log.Fatalf("failed to save: %v", err)
	}

	stats := r.Stats()
	log.Printf("sdfdemo saved to %s (%dx%d, %d tiles, %d workers)\n",
		*output, *width, *height, stats.TileCount, stats.Workers)
}

// buildDemoScene populates a scene exercising the union, difference, and
// smooth-union CSG combinators (not intersection or blend), a reflective
// sphere, a checkered ground plane, and all three light kinds.
// time gently orbits the reflective sphere so successive calls at
// different t produce different frames.
func buildDemoScene(s *scene.Scene, t float32) {
	s.SetCamera(scene.NewCamera(marcher.V3(0, 2, -8), marcher.V3(0, 0, 0), 1.0, false))

	ground := scene.NewPlane(marcher.V3(0, 1, 0), -1)
	ground.Material = scene.NewCheckerMaterial(marcher.RGB(0.8, 0.8, 0.8), marcher.RGB(0.2, 0.2, 0.2))
	s.AddObject(ground)

	union := scene.NewComposite(scene.CompositeUnion, 0,
		sphereAt(marcher.V3(-2.2, 0, 0), 0.9, marcher.RGB(0.9, 0.2, 0.2)),
		sphereAt(marcher.V3(-1.1, 0, 0), 0.9, marcher.RGB(0.2, 0.2, 0.9)),
	)
	s.AddObject(union)

	diff := scene.NewComposite(scene.CompositeDifference, 0,
		boxAt(marcher.V3(0.6, 0, 0), marcher.V3(0.8, 0.8, 0.8), marcher.RGB(0.8, 0.6, 0.1)),
		sphereAt(marcher.V3(0.6, 0, 0), 0.9, marcher.White),
	)
	s.AddObject(diff)

	smooth := scene.NewComposite(scene.CompositeSmoothUnion, 0.35,
		sphereAt(marcher.V3(2.4, 0, 0), 0.7, marcher.RGB(0.2, 0.8, 0.3)),
		sphereAt(marcher.V3(2.9, 0.4, 0), 0.5, marcher.RGB(0.2, 0.8, 0.3)),
	)
	s.AddObject(smooth)

	orbitAngle := t * 0.5
	mirror := scene.NewSphere(0.6)
	mirror.Material = scene.NewSolidColorMaterial(marcher.RGB(0.9, 0.9, 0.95))
	mirror.Surface = scene.SurfaceInfo{Albedo: 0.2, Metallic: 0.1, Dielectric: 0.8}
	mirror.SetTransform(marcher.TranslateBy(marcher.V3(
		float32(2.5*math.Cos(float64(orbitAngle))),
		1.5,
		float32(2.5*math.Sin(float64(orbitAngle))),
	)))
	s.AddObject(mirror)

	s.AddLight(scene.NewAmbientLight(marcher.RGB(0.15, 0.15, 0.18)))
	s.AddLight(scene.NewPointLight(marcher.V3(4, 5, -3), marcher.RGB(1, 0.95, 0.85)))
	s.AddLight(scene.NewDirectionalLight(marcher.V3(-0.3, -1, 0.2).Normalize(), marcher.RGB(0.3, 0.3, 0.4)))
}

func sphereAt(center marcher.Vec3, radius float32, c marcher.Color) *scene.RenderObject {
	o := scene.NewSphere(radius)
	o.Material = scene.NewSolidColorMaterial(c)
	o.SetTransform(marcher.TranslateBy(center))
	return o
}

func boxAt(center, halfExtents marcher.Vec3, c marcher.Color) *scene.RenderObject {
	o := scene.NewCube(halfExtents)
	o.Material = scene.NewSolidColorMaterial(c)
	o.SetTransform(marcher.TranslateBy(center))
	return o
}

// savePNG converts the unclamped float framebuffer to 8-bit RGBA,
// clamping only here at the presentation boundary, and
// writes it as a PNG.
func savePNG(path string, buf *marcher.Buffer) error {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y).Clamp01()
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.R * 255),
				G: uint8(c.G * 255),
				B: uint8(c.B * 255),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
