package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"geomkit/internal/batch"
	"geomkit/internal/config"
	"geomkit/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Render only first N scenes for testing")
	scenes := flag.String("scenes", "", "Scene file or directory (default: scenes)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	textureDir := flag.String("textures", "", "Texture search directory (default: textures, if present)")
	size := flag.Int("size", 0, "Longest output side in pixels (default: scene size)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ScenesPath:  *scenes,
		OutputDir:   *outputDir,
		TextureDir:  *textureDir,
		Size:        *size,
		Supersample: *supersample,
		Workers:     *workers,
	})

	paths, err := batch.Discover(cfg.ScenesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(paths) {
		paths = paths[:*testN]
	}

	if len(paths) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	// Build texture index
	texIndex, err := texture.BuildIndex(cfg.TextureDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	texCache := texture.NewCache(texIndex)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	// Print summary
	mode := ""
	if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Scene renderer → WebP%s\n", mode)
	fmt.Printf("Scenes: %d, Workers: %d, Supersample: %dx\n", len(paths), cfg.Workers, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: texCache,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
	}, paths)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	var failures []batch.Result
	for _, r := range results {
		if !r.Success {
			failures = append(failures, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failures), len(results))

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failures))
		for _, e := range failures[:min(20, len(failures))] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	for _, err := range texCache.Errors() {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, batch.ManifestName)
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}
