package imagefile

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func gradient(w, h int, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: alpha})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	writePNG(t, path, gradient(32, 16, 255))

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	if _, err := Open(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(bad); err == nil {
		t.Fatalf("expected error for undecodable file")
	}
}

func TestResizeStretches(t *testing.T) {
	out, err := Resize(gradient(200, 100, 255), 50, 80)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 80 {
		t.Fatalf("expected 50x80 without aspect correction, got %v", out.Bounds())
	}
	if _, err := Resize(gradient(2, 2, 255), 0, 10); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := Resize(nil, 10, 10); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestResizeIdempotentSize(t *testing.T) {
	src := gradient(854, 480, 255)
	once, err := Resize(src, 854, 480)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	twice, err := Resize(once, 854, 480)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if twice.Bounds().Dx() != 854 || twice.Bounds().Dy() != 480 {
		t.Fatalf("dimensions changed: %v", twice.Bounds())
	}
}

func TestFlattenDropsAlpha(t *testing.T) {
	img := gradient(8, 4, 90)
	Flatten(img)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			c := img.NRGBAAt(x, y)
			if c.A != 0xff {
				t.Fatalf("pixel (%d,%d) alpha %d", x, y, c.A)
			}
			if c.R != uint8(x) || c.G != uint8(y) || c.B != 128 {
				t.Fatalf("pixel (%d,%d) colour changed: %+v", x, y, c)
			}
		}
	}
	if Flatten(nil) != nil {
		t.Fatalf("Flatten(nil) should return nil")
	}
}

func TestFinalizeWritesOpaqueOutput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "nested/deeper/out.jpg"} {
		path := filepath.Join(dir, name)
		if err := Finalize(gradient(300, 200, 120), 64, 48, path); err != nil {
			t.Fatalf("Finalize(%s): %v", name, err)
		}
		img, err := Open(path)
		if err != nil {
			t.Fatalf("reopen %s: %v", name, err)
		}
		if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
			t.Fatalf("%s: bounds %v", name, img.Bounds())
		}
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
					t.Fatalf("%s: pixel (%d,%d) not opaque", name, x, y)
				}
			}
		}
	}
}

func TestFinalizeRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := Finalize(gradient(4, 4, 255), 2, 2, path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be written for unsupported extension")
	}
}
