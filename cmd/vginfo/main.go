// Command vginfo reports VGrid and atlas statistics for a single glyph,
// without ever touching a GPU.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/vgtext/font"
	"github.com/gogpu/vgtext/vgrid"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a TrueType/OpenType font file")
		char     = flag.String("rune", "A", "the single character to inspect")
		backend  = flag.String("backend", "sfnt", "outline backend: sfnt or truetype")
	)
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("-font is required")
	}
	runes := []rune(*char)
	if len(runes) != 1 {
		log.Fatalf("-rune must be exactly one character, got %q", *char)
	}
	r := runes[0]

	source, err := font.NewFontSourceFromFile(*fontPath, font.WithBackend(*backend))
	if err != nil {
		log.Fatalf("load font: %v", err)
	}

	cache := vgrid.NewCache()
	rec, err := cache.Get(source, r)
	if err != nil {
		log.Fatalf("build glyph %q: %v", r, err)
	}

	fmt.Printf("font:    %s\n", source.Name())
	fmt.Printf("glyph:   %q (U+%04X)\n", r, r)
	fmt.Printf("advance: %.2f\n", rec.Advance)

	if rec.NoCurvesFlag {
		fmt.Println("outline: empty (no ink, or stored as degenerate after a build error)")
		return
	}

	fmt.Printf("em box:      %.2f x %.2f\n", rec.EmBoxSize.Width, rec.EmBoxSize.Height)
	fmt.Printf("bearing:     (%.2f, %.2f)\n", rec.BearingX, rec.BearingY)
	fmt.Printf("atlas group: %d\n", rec.AtlasGroupIndex)
	fmt.Printf("data offset: %d texels\n", rec.GlyphDataOffset)

	group := cache.Groups()[rec.AtlasGroupIndex]
	gridX, gridY, w, h := group.Header(rec.GlyphDataOffset)
	occupied := group.OccupiedCells(rec.GlyphDataOffset)

	fmt.Printf("grid origin: (%d, %d), size %dx%d\n", gridX, gridY, w, h)
	fmt.Printf("occupied cells: %d / %d\n", occupied, w*h)
	fmt.Printf("atlas groups allocated so far: %d\n", len(cache.Groups()))
}
