package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"roll-checker/core/listing"
	"roll-checker/core/pattern"
	"roll-checker/feature/audit/sources"
)

// debug_snapshot prints every strategy candidate found in a saved snapshot,
// then the deduplicated file list and the identifier each name yields.
func main() {
	extension := flag.String("extension", ".pdf", "Extension filter for the final list")
	template := flag.String("template", "___", "Roll number template")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: debug_snapshot [-extension .pdf] [-template ___] <snapshot.html|snapshot.json>")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	snap, err := sources.ReadSnapshot(f)
	if err != nil {
		log.Fatal(err)
	}

	p, err := pattern.Compile(*template)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Candidates ===")
	for _, c := range listing.Candidates(snap) {
		fmt.Printf("[%-9s] %-50s %d\n", c.Strategy, c.Name, c.Size)
	}

	fmt.Println("\n=== Extracted ===")
	files := listing.Extract(snap, *extension)
	for _, e := range files {
		id, ok := p.Identifier(e.Name)
		if !ok {
			fmt.Printf("%-50s %10d  no identifier\n", e.Name, e.SizeBytes)
			continue
		}
		fmt.Printf("%-50s %10d  roll %0*d\n", e.Name, e.SizeBytes, p.Width(), id)
	}
	fmt.Printf("\n%d files\n", len(files))
}
