// Command sdfrange renders a codepoint range from a font file into a
// serialized SDF fontstack buffer on disk.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/sdfglyph/fontstack"
)

func main() {
	fontPath := flag.String("font", "", "path to a TTF/OTF/TTC font file")
	start := flag.Uint("start", 0, "first codepoint in the range (inclusive)")
	end := flag.Uint("end", 255, "last codepoint in the range (inclusive)")
	out := flag.String("out", "range.pbf", "output file path")
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("sdfrange: -font is required")
	}
	if *start > *end {
		log.Fatalf("sdfrange: start (%d) must be <= end (%d)", *start, *end)
	}
	if *end > 0xFFFF {
		log.Fatalf("sdfrange: end (%d) exceeds 65535", *end)
	}

	// #nosec G304 -- font path is an explicit CLI flag
	blob, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("sdfrange: failed to read font: %v", err)
	}

	buf, err := fontstack.Range(blob, uint16(*start), uint16(*end))
	if err != nil {
		log.Fatalf("sdfrange: %v", err)
	}

	if err := os.WriteFile(*out, buf, 0o644); err != nil {
		log.Fatalf("sdfrange: failed to write output: %v", err)
	}

	log.Printf("sdfrange: wrote %d bytes to %s (range %d-%d)", len(buf), *out, *start, *end)
}
