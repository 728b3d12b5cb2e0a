package texture

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		img.SetNRGBA(i%2, i/2, c)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeJPEG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "a.png")
	jpgPath := filepath.Join(dir, "b.JPG")
	writePNG(t, pngPath, color.NRGBA{10, 20, 30, 128})
	writeJPEG(t, jpgPath)

	img, err := LoadTexture(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{10, 20, 30, 128}) {
		t.Errorf("PNG pixel: got %v", got)
	}

	img, err = LoadTexture(jpgPath)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("JPEG bounds: got %v", img.Bounds())
	}
	if a := img.NRGBAAt(0, 0).A; a != 255 {
		t.Errorf("JPEG should be opaque, alpha %d", a)
	}
}

func TestLoadTexture_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "x.bmp")
	if err := os.WriteFile(other, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{bad, other, filepath.Join(dir, "missing.png")} {
		if _, err := LoadTexture(path); err == nil {
			t.Errorf("Expected error for %s", path)
		}
	}
}

func TestToNRGBA_RebasesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(5, 5, color.NRGBA{1, 2, 3, 4})

	dst := toNRGBA(src.SubImage(image.Rect(5, 5, 7, 7)))
	if dst.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Bounds: got %v", dst.Bounds())
	}
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("Pixel: got %v", got)
	}
}

func TestIndex(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "models", "wood")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeJPEG(t, filepath.Join(dir, "Bark.jpg"))
	writePNG(t, filepath.Join(sub, "bark.png"), color.NRGBA{A: 255})
	writeJPEG(t, filepath.Join(sub, "grain.jpeg"))
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)

	idx, err := BuildIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", idx.Len())
	}
	paths := idx.Paths()
	if len(paths) != 2 || paths[0] != filepath.Join(sub, "bark.png") || paths[1] != filepath.Join(sub, "grain.jpeg") {
		t.Errorf("Unexpected paths: %v", paths)
	}

	tests := []struct {
		name     string
		expected string
		ok       bool
	}{
		{"bark", filepath.Join(sub, "bark.png"), true},
		{"textures\\BARK.tga", filepath.Join(sub, "bark.png"), true},
		{"other/grain.png", filepath.Join(sub, "grain.jpeg"), true},
		{"notes", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.ResolvePath(tt.name)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.expected, tt.ok, got, ok)
			}
		})
	}
}

func TestIndex_Nil(t *testing.T) {
	var idx *Index
	if _, ok := idx.ResolvePath("x"); ok {
		t.Error("Nil index should not resolve")
	}
	if idx, err := BuildIndex(""); err != nil || idx.Len() != 0 {
		t.Errorf("Empty dir should give an empty index, got %d, %v", idx.Len(), err)
	}
}

func TestIndex_ReportsUnreadableDirs(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	idx, err := BuildIndex(missing)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}
	if idx == nil || idx.Len() != 0 {
		t.Errorf("Expected an empty index alongside the error")
	}

	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	os.Mkdir(locked, 0o755)
	writePNG(t, filepath.Join(dir, "ok.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(locked, "hidden.png"), color.NRGBA{A: 255})
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(locked, 0o755)

	idx, err = BuildIndex(dir)
	if err == nil || !strings.Contains(err.Error(), "locked") {
		t.Errorf("Expected an error naming the locked dir, got %v", err)
	}
	if _, ok := idx.ResolvePath("ok"); !ok {
		t.Error("Readable textures should still be indexed")
	}
}

func TestCache_Resolve(t *testing.T) {
	dir := t.TempDir()
	texDir := filepath.Join(dir, "textures")
	os.MkdirAll(texDir, 0o755)
	direct := filepath.Join(dir, "direct.png")
	writePNG(t, direct, color.NRGBA{255, 0, 0, 255})
	writePNG(t, filepath.Join(texDir, "indexed.png"), color.NRGBA{0, 255, 0, 255})
	os.WriteFile(filepath.Join(dir, "broken.png"), []byte("junk"), 0o644)

	idx, err := BuildIndex(texDir)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCache(idx)

	img := c.Resolve(direct)
	if img == nil || img.NRGBAAt(0, 0).R != 255 {
		t.Fatalf("Direct path did not resolve: %v", img)
	}
	if again := c.Resolve(direct); again != img {
		t.Error("Second resolve should return the cached image")
	}

	img = c.Resolve(filepath.Join(dir, "elsewhere", "indexed.jpg"))
	if img == nil || img.NRGBAAt(0, 0).G != 255 {
		t.Fatalf("Index fallback did not resolve: %v", img)
	}

	if c.Resolve(filepath.Join(dir, "nothing.png")) != nil {
		t.Error("Unknown texture should resolve to nil")
	}
	if c.Resolve(filepath.Join(dir, "broken.png")) != nil {
		t.Error("Undecodable texture should resolve to nil")
	}
	if errs := c.Errors(); len(errs) != 1 {
		t.Errorf("Expected 1 load error, got %v", errs)
	}
	if c.Len() != 3 {
		t.Errorf("Expected 3 cached paths, got %d", c.Len())
	}
}

func TestCache_NilIndex(t *testing.T) {
	c := NewCache(nil)
	if c.Resolve("/does/not/exist.png") != nil {
		t.Error("Expected nil")
	}
}
