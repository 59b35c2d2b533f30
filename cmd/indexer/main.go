// cmd/indexer is the batch build entry point: parse one or more
// corpora, write the lexicon/postings/doc-length artifacts, checksum
// the postings file, and regenerate the metric/singleton/frequency
// reports.
// Grounded on original_source/main.py's dataset loop and elapsed-time
// printing, with cmd/server/main.go's flag-parsing-plus-constructor
// idiom and "✅/❌" operator messages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alyson-g/text-retrieval-engine/internal/checksum"
	"github.com/alyson-g/text-retrieval-engine/internal/config"
	"github.com/alyson-g/text-retrieval-engine/internal/corpus"
	"github.com/alyson-g/text-retrieval-engine/internal/ingest"
	"github.com/alyson-g/text-retrieval-engine/internal/invindex"
	"github.com/alyson-g/text-retrieval-engine/internal/logging"
	"github.com/alyson-g/text-retrieval-engine/internal/report"
	"github.com/alyson-g/text-retrieval-engine/internal/server"
	"github.com/alyson-g/text-retrieval-engine/internal/tokenizer"
	"github.com/alyson-g/text-retrieval-engine/internal/writer"
)

func main() {
	datasetPaths := flag.String("datasets", "", "Comma-separated list of corpus file paths to index")
	outputDir := flag.String("output-dir", "./output_reports", "Directory to write index artifacts and reports to")
	tokenizerMode := flag.String("tokenizer-mode", "simple", "Tokenizer mode: \"simple\" or \"linguistic\"")
	byteOrder := flag.String("byte-order", "big", "Postings file byte order: \"big\" or \"little\"")
	serveProgress := flag.String("serve-progress", "", "If set, an address (e.g. \":8081\") to stream build progress over websocket on /ingest/progress while indexing runs")
	flag.Parse()

	logger := logging.New()

	if *datasetPaths == "" {
		logger.Error("at least one -datasets path is required")
		os.Exit(1)
	}

	var progress *server.ProgressHub
	if *serveProgress != "" {
		progress = server.NewProgressHub()
		progressSrv := server.ServeProgressOnly(*serveProgress, progress)
		defer progressSrv.Shutdown(context.Background())
		logger.Info("🔌", "build progress websocket on ws://%s/ingest/progress", *serveProgress)
	}

	cfg := config.DefaultConfig()
	cfg.OutputDirectory = *outputDir
	cfg.ByteOrder = config.ByteOrder(*byteOrder)
	switch *tokenizerMode {
	case "linguistic":
		cfg.TokenizerMode = tokenizer.Linguistic
	default:
		cfg.TokenizerMode = tokenizer.Simple
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	start := time.Now()

	for _, path := range strings.Split(*datasetPaths, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		if err := buildOne(cfg, name, path, logger, progress); err != nil {
			logger.Error("building %s: %v", name, err)
			os.Exit(1)
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("Seconds elapsed: %v\n", elapsed.Seconds())
	fmt.Printf("Minutes elapsed: %v\n", elapsed.Minutes())
}

func buildOne(cfg config.Config, name, path string, logger *logging.Logger, progress *server.ProgressHub) error {
	logger.Info("🚀", "starting %s processing...", name)

	src, err := corpus.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	defer src.Close()

	tok, err := tokenizer.New(cfg.TokenizerMode)
	if err != nil {
		return fmt.Errorf("build tokenizer: %w", err)
	}

	idx := invindex.New()
	in := ingest.New(src, tok, idx)

	if err := in.Run(func(stats ingest.Stats) {
		logger.Info("📄", "%d documents processed", stats.DocumentsProcessed)
		if progress != nil {
			progress.Broadcast(stats)
		}
	}); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	logger.Info("✅", "finished processing %s", name)
	if progress != nil {
		progress.Done(in.Stats())
	}

	result, err := writer.Write(idx, name, cfg.OutputDirectory, cfg.ByteOrder, time.Now())
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}
	logger.Info("✅", "wrote %s, %s, %s", result.LexiconPath, result.PostingsPath, result.DocLengthPath)

	manifestPath := result.PostingsPath + ".manifest"
	if _, err := checksum.WriteManifest(result.PostingsPath, manifestPath); err != nil {
		return fmt.Errorf("checksum artifacts: %w", err)
	}

	stats := in.Stats()
	if _, err := report.WriteMetricReport(idx, uint64(stats.WordsProcessed), name, cfg.OutputDirectory); err != nil {
		return fmt.Errorf("write metric report: %w", err)
	}
	if _, err := report.WriteSingletonReport(idx, name, cfg.OutputDirectory); err != nil {
		return fmt.Errorf("write singleton report: %w", err)
	}
	if _, err := report.WriteFrequencyReport(idx, name, cfg.OutputDirectory); err != nil {
		return fmt.Errorf("write frequency report: %w", err)
	}

	return nil
}
