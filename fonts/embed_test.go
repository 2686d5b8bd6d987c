package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadBuiltin(t *testing.T) {
	for _, in := range []string{"embed:Go-Regular", "Go-Regular", "embed:go-regular.ttf"} {
		data, err := Load(in)
		if err != nil {
			t.Fatalf("Load(%q): %v", in, err)
		}
		if !bytes.Equal(data, goregular.TTF) {
			t.Fatalf("Load(%q) returned unexpected bytes", in)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("embed:DelaGothicOne-Regular"); err == nil {
		t.Fatalf("expected error for unknown font")
	}
}

func TestResolveDefault(t *testing.T) {
	data, err := Resolve(Default)
	if err != nil {
		t.Fatalf("Resolve(Default): %v", err)
	}
	if !bytes.Equal(data, gobold.TTF) {
		t.Fatalf("default font is not Go-Bold")
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	data, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", path, err)
	}
	if len(data) != len(goregular.TTF) {
		t.Fatalf("unexpected length %d", len(data))
	}

	if _, err := Resolve(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Fatalf("expected error for missing font file")
	}
	empty := filepath.Join(dir, "empty.ttf")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	if _, err := Resolve(empty); err == nil {
		t.Fatalf("expected error for empty font file")
	}
	if _, err := Resolve(""); err == nil {
		t.Fatalf("expected error for empty source")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(builtin) {
		t.Fatalf("expected %d names, got %d", len(builtin), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
