package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"alfredoptarigan/thesis-checker/internal/config"
	"alfredoptarigan/thesis-checker/internal/services"
)

func main() {
	name := flag.String("name", "", "student name")
	studentID := flag.String("id", "", "student id (NIM)")
	degree := flag.String("degree", "", "degree, sent when DEGREE_FIELD is optional or required")
	flag.Parse()

	log.Println("🚀 Starting document checks...")

	// Load configuration
	cfg := config.Load()

	paths, err := collectDocuments(flag.Args())
	if err != nil {
		log.Fatalf("❌ Failed to collect documents: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("❌ No PDF documents given. Usage: check_documents -name NAME -id NIM <file-or-dir>...")
	}

	// Initialize services
	var inspector services.PDFInspector
	if cfg.Preflight.Enabled {
		inspector = services.NewPDFInspector(cfg.Preflight.MinPages)
	}

	controller := services.NewSubmissionController(
		services.NewEncoderService(),
		services.NewRequestBuilder(cfg.Form.Degree),
		services.NewCheckerClient(cfg.Checker.BaseURL, cfg.Checker.Timeout),
		services.NewTextRenderer(),
		services.NewTerminalView(os.Stdout),
	)

	ctx := context.Background()

	successCount := 0
	failCount := 0

	for _, path := range paths {
		log.Printf("\n📄 Processing: %s", path)

		src, err := services.NewFileSource(path)
		if err != nil {
			log.Printf("   ⚠️  %v, skipping...", err)
			failCount++
			continue
		}

		if inspector != nil {
			if result, err := inspector.Inspect(src); err != nil {
				log.Printf("   ⚠️  Preflight failed: %v", err)
			} else {
				log.Printf("   🔎 Preflight: %d pages", result.PageCount)
				for _, w := range result.Warnings() {
					log.Printf("   ⚠️  %s", w)
				}
			}
		}

		err = controller.Submit(ctx, services.SubmissionInput{
			File:        src,
			StudentName: *name,
			StudentID:   *studentID,
			Degree:      *degree,
		})
		if err != nil {
			log.Printf("   ❌ Check failed: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Checked %s", filepath.Base(path))
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Check Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}

// collectDocuments expands directories into the PDF files they contain.
func collectDocuments(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(arg, "*.pdf"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}
