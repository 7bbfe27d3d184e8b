package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path"
	"strings"

	"roll-checker/core/config"
	"roll-checker/core/pattern"
	"roll-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// debug_pattern lists the objects under a bucket prefix and shows which roll
// identifier the template extracts from each name.
func main() {
	template := flag.String("template", "", "Roll number template (defaults to AUDIT_TEMPLATE)")
	prefix := flag.String("prefix", "", "Bucket prefix (defaults to STORAGE_PREFIX)")
	contains := flag.String("contains", "", "Only show keys containing this text")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	if *template == "" {
		*template = cfg.Audit.Template
	}
	if *prefix == "" {
		*prefix = cfg.Storage.Prefix
	}

	p, err := pattern.Compile(*template)
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	fmt.Printf("Template %q, bucket %s, prefix %q\n\n", p.String(), cfg.Storage.Bucket, *prefix)

	opts := minio.ListObjectsOptions{
		Prefix:    *prefix,
		Recursive: true,
	}

	total, matched := 0, 0
	for obj := range client.ListObjects(ctx, cfg.Storage.Bucket, opts) {
		if obj.Err != nil {
			log.Fatal(obj.Err)
		}
		if *contains != "" && !strings.Contains(obj.Key, *contains) {
			continue
		}
		total++

		name := path.Base(obj.Key)
		digits, ok := p.Extract(name)
		if !ok {
			fmt.Printf("%-60s  no match\n", name)
			continue
		}
		id, _ := p.Identifier(name)
		matched++
		fmt.Printf("%-60s  %s -> %0*d\n", name, digits, p.Width(), id)
	}

	fmt.Printf("\n%d objects, %d matched\n", total, matched)
}
