// Package batch renders many scene files concurrently to WebP.
package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"geomkit/internal/postprocess"
	"geomkit/internal/raster"
	"geomkit/internal/scene"
	"geomkit/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	Size        int // longest output side; 0 keeps each scene's own size
	Supersample int
	Workers     int
	Progress    io.Writer // periodic progress lines; nil disables them
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Name    string
	Source  string
	Image   string // output path, relative to OutputDir, slash-separated
	Width   int
	Height  int
	Success bool
	Error   string
}

// Run renders all scenes using a worker pool. Results are in input order.
// Each image mirrors its scene's path below the scenes' common directory,
// so distinct scenes never share an output file and none lands outside
// OutputDir. A scene whose image name collides with an earlier one (the
// same path listed twice, or stems differing only in extension or case)
// fails without rendering.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	images := outputNames(paths)

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f scenes/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if images[idx] == "" {
					results[idx] = Result{
						Name:   filepath.Base(paths[idx]),
						Source: paths[idx],
						Error:  "output name collides with an earlier scene",
					}
				} else {
					results[idx] = processScene(cfg, paths[idx], images[idx])
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg Config, path, imageName string) Result {
	res := Result{Source: path}

	sc, err := scene.Load(path)
	if err != nil {
		res.Name = filepath.Base(path)
		res.Error = err.Error()
		return res
	}
	res.Name = sc.Name

	if cfg.Size > 0 {
		sc.Width, sc.Height = FitSize(sc.Width, sc.Height, cfg.Size)
	}
	res.Width, res.Height = sc.Width, sc.Height

	img := raster.Render(sc, cfg.TexResolver, cfg.Supersample)

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, sc.Width, sc.Height)
	}

	res.Image = imageName
	if err := writeWebP(filepath.Join(cfg.OutputDir, filepath.FromSlash(imageName)), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func writeWebP(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("WebP encode: %w", err)
	}
	return f.Close()
}

// outputNames maps each scene path to "<dir>/<stem>.webp" relative to the
// deepest directory containing all of them. Names that repeat an earlier
// one, compared case-insensitively, are left "".
func outputNames(paths []string) []string {
	abs := make([]string, len(paths))
	for i, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			a = filepath.Clean(p)
		}
		abs[i] = a
	}
	root := commonDir(abs)

	names := make([]string, len(paths))
	seen := make(map[string]bool, len(paths))
	for i, a := range abs {
		rel, err := filepath.Rel(root, a)
		if err != nil {
			rel = filepath.Base(a)
		}
		name := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)) + ".webp")

		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names[i] = name
	}
	return names
}

// commonDir returns the deepest directory that is an ancestor of every
// path. paths must be absolute and clean.
func commonDir(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	root := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		for !within(root, p) {
			parent := filepath.Dir(root)
			if parent == root {
				break
			}
			root = parent
		}
	}
	return root
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// FitSize scales w×h so its longer side equals size, keeping the aspect
// ratio. The shorter side never drops below 1.
func FitSize(w, h, size int) (int, int) {
	if w >= h {
		return size, max(1, (h*size+w/2)/w)
	}
	return max(1, (w*size+h/2)/h), size
}
