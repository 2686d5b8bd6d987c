package dsl_test

import (
	"testing"

	"github.com/ByLCY/duilian/dsl"
	"github.com/ByLCY/duilian/layout"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		w, h int
	}{
		{"854x480", 854, 480},
		{"640x480", 640, 480},
		{"1920X1080", 1920, 1080},
		{" 640 x 480 ", 640, 480},
	}
	for _, c := range cases {
		size, err := dsl.ParseSize(c.in)
		if err != nil {
			t.Fatalf("ParseSize(%q) failed: %v", c.in, err)
		}
		if size.Width != c.w || size.Height != c.h {
			t.Fatalf("ParseSize(%q) = %dx%d, want %dx%d", c.in, size.Width, size.Height, c.w, c.h)
		}
	}
}

func TestParseSizeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "bogus", "640", "640x", "x480", "640x480x2", "640,480", "0x480", "640x-1", "6.5x4", "+32x16", "640×480", "640*480"} {
		if _, err := dsl.ParseSize(in); err == nil {
			t.Fatalf("ParseSize(%q) expected error", in)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want layout.Color
	}{
		{"#fff", layout.Color{R: 255, G: 255, B: 255, A: 255}},
		{"#0F62FE", layout.Color{R: 0x0f, G: 0x62, B: 0xfe, A: 255}},
		{"#ffff00b4", layout.Color{R: 255, G: 255, B: 0, A: 180}},
		{"rgb(1, 2, 3)", layout.Color{R: 1, G: 2, B: 3, A: 255}},
		{"rgba(255,255,0,180)", layout.Color{R: 255, G: 255, B: 0, A: 180}},
		{"RGBA(0, 0, 0, 230)", layout.Color{A: 230}},
	}
	for _, c := range cases {
		got, err := dsl.ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "yellow", "#ff", "#fffff", "rgb(1,2)", "rgba(1,2,3)", "rgb(1,2,300)", "hsl(1,2,3)", "rgb(1,2,3"} {
		if _, err := dsl.ParseColor(in); err == nil {
			t.Fatalf("ParseColor(%q) expected error", in)
		}
	}
}
