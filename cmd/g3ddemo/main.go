// Command g3ddemo demonstrates the g3d geometry kernel.
//
// It renders a shaded, rotated cube to a PNG with an orthographic camera,
// and can write the compiled instanced WGSL shader as SPIR-V.
package main

import (
	"encoding/binary"
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/gpu"
)

func main() {
	var (
		size   = flag.Int("size", 512, "image width and height")
		angle  = flag.Float64("angle", 0.6, "rotation angle in radians")
		output = flag.String("output", "cube.png", "output file")
		spirv  = flag.String("spirv", "", "also write the instanced shader as SPIR-V to this file")
		debug  = flag.Bool("debug", false, "enable precondition checks and debug logging")
	)
	flag.Parse()

	if *debug {
		g3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		g3d.SetDebugChecks(true)
	}

	axis := g3d.V3(1.0, 1.0, 0.25).Normalize()
	model := g3d.NewTransform(g3d.Rotation(*angle, axis), g3d.Origin[float64]())
	q := g3d.QuatFromRotationMatrix(model.M)
	log.Printf("model %v, quaternion %v", model, q)

	img := image.NewRGBA(image.Rect(0, 0, *size, *size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{30, 40, 60, 255}), image.Point{}, draw.Src)
	drawCube(img, model, float32(*size))

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Cube saved to %s (%dx%d)\n", *output, *size, *size)

	if *spirv != "" {
		words, err := gpu.CompilePrelude(gpu.InstancedWGSL)
		if err != nil {
			log.Fatalf("Failed to compile shader: %v", err)
		}
		if err := saveSPIRV(*spirv, words); err != nil {
			log.Fatalf("Failed to save SPIR-V: %v", err)
		}
		log.Printf("SPIR-V saved to %s (%d words)\n", *spirv, len(words))
	}
}

// drawCube fills the camera-facing faces of the unit cube [-1, 1]³.
func drawCube(dst draw.Image, model g3d.Transform[float64], size float32) {
	// Normals are carried by the inverse transpose, which TransformNormal
	// supplies half of when given the inverse transform.
	inv := model.Inverse()
	light := g3d.V3(-0.3, 0.5, 1.0).Normalize()

	axes := []g3d.Vec3[float64]{g3d.UnitX[float64](), g3d.UnitY[float64](), g3d.UnitZ[float64]()}
	for k, n := range axes {
		u, v := axes[(k+1)%3], axes[(k+2)%3]
		for _, sign := range []float64{1, -1} {
			normal := n.Mul(sign)
			facing := inv.TransformNormal(normal).Normalize()
			if facing.Z <= 0 {
				continue
			}

			z := vector.NewRasterizer(int(size), int(size))
			for i, st := range [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
				corner := normal.Add(u.Mul(st[0])).Add(v.Mul(st[1])).ToPoint()
				x, y := project(model.TransformPoint(corner), size)
				if i == 0 {
					z.MoveTo(x, y)
				} else {
					z.LineTo(x, y)
				}
			}
			z.ClosePath()

			shade := 0.25 + 0.75*max(0, facing.Dot(light))
			c := color.RGBA{uint8(90 * shade), uint8(170 * shade), uint8(250 * shade), 255}
			z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
		}
	}
}

// project maps a point onto the image with an orthographic camera looking down -z.
func project(p g3d.Point3[float64], size float32) (float32, float32) {
	scale := size / 4
	return size/2 + scale*float32(p.X), size/2 - scale*float32(p.Y)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func saveSPIRV(path string, words []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, words); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
