package main

import (
	"fmt"
	"image"
	"os"

	"geomkit/internal/texture"
)

func main() {
	dir := "textures"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	idx, scanErr := texture.BuildIndex(dir)
	cache := texture.NewCache(idx)
	fmt.Printf("Textures: %d indexed in %s\n", idx.Len(), dir)

	for _, path := range idx.Paths() {
		tex := cache.Resolve(path)
		if tex == nil {
			continue
		}
		checkAlpha(tex, path)
	}

	errs := cache.Errors()
	if scanErr != nil {
		errs = append([]error{scanErr}, errs...)
	}
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "ERR %v\n", err)
	}
	if len(errs) > 0 {
		fmt.Printf("\nDone with %d error(s).\n", len(errs))
		os.Exit(1)
	}
}

func checkAlpha(tex *image.NRGBA, name string) {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	var minA, maxA uint8 = 255, 0
	total := 0
	opaque := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := tex.Pix[y*tex.Stride+x*4+3]
			total++
			minA = min(minA, a)
			maxA = max(maxA, a)
			if a == 255 {
				opaque++
			}
		}
	}
	fmt.Printf("%s: %dx%d, alpha: min=%d max=%d opaque=%d/%d (%.0f%%)\n",
		name, w, h, minA, maxA, opaque, total, 100*float64(opaque)/float64(max(total, 1)))
}
