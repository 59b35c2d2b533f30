// cmd/queryserver loads the most recent lexicon/postings/doc-length
// artifact triple for a dataset and starts internal/server. Grounded
// on original_source/routers/query.py's startup_event, which scans
// output_reports/ for the newest timestamp suffix per dataset; here
// that scan happens once at startup into an explicit server.Config
// and reader.Scorer rather than the package-level "files" dict the
// original keeps as shared mutable state (spec §9).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alyson-g/text-retrieval-engine/internal/config"
	"github.com/alyson-g/text-retrieval-engine/internal/logging"
	"github.com/alyson-g/text-retrieval-engine/internal/reader"
	"github.com/alyson-g/text-retrieval-engine/internal/server"
	"github.com/alyson-g/text-retrieval-engine/internal/tokenizer"
)

const timestampLayout = "02012006-150405"

// artifactSet names the most recent lexicon/postings/doc-length triple
// found for a dataset.
type artifactSet struct {
	lexiconPath   string
	postingsPath  string
	docLengthPath string
	timestamp     time.Time
}

// findLatestArtifacts scans dir for "<dataset>_{lexicon,index,document_length}_<timestamp>.*"
// files and returns the newest complete triple.
func findLatestArtifacts(dir, dataset string) (artifactSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return artifactSet{}, fmt.Errorf("queryserver: read output dir %s: %w", dir, err)
	}

	byTimestamp := make(map[string]*artifactSet)

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, dataset+"_") {
			continue
		}

		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		parts := strings.Split(stem, "_")
		if len(parts) < 2 {
			continue
		}
		stamp := parts[len(parts)-1]
		ts, err := time.Parse(timestampLayout, stamp)
		if err != nil {
			continue
		}

		set, ok := byTimestamp[stamp]
		if !ok {
			set = &artifactSet{timestamp: ts}
			byTimestamp[stamp] = set
		}

		full := filepath.Join(dir, name)
		switch {
		case strings.Contains(name, "_lexicon_"):
			set.lexiconPath = full
		case strings.Contains(name, "_index_"):
			set.postingsPath = full
		case strings.Contains(name, "_document_length_"):
			set.docLengthPath = full
		}
	}

	var latest *artifactSet
	for _, set := range byTimestamp {
		if set.lexiconPath == "" || set.postingsPath == "" || set.docLengthPath == "" {
			continue // an interrupted build left a partial triple on disk
		}
		if latest == nil || set.timestamp.After(latest.timestamp) {
			latest = set
		}
	}

	if latest == nil {
		return artifactSet{}, fmt.Errorf("queryserver: no complete artifact set found for dataset %q in %s", dataset, dir)
	}
	return *latest, nil
}

func main() {
	outputDir := flag.String("output-dir", "./output_reports", "Directory to load index artifacts from")
	dataset := flag.String("dataset", "", "Dataset name whose latest build should be served")
	host := flag.String("host", "localhost", "Server host address")
	port := flag.Int("port", 8080, "Server port")
	tokenizerMode := flag.String("tokenizer-mode", "simple", "Tokenizer mode the index was built with: \"simple\" or \"linguistic\"")
	byteOrder := flag.String("byte-order", "big", "Byte order the index was built with: \"big\" or \"little\"")
	enableGraphQL := flag.Bool("graphql", false, "Enable the /graphql endpoint")
	enableProgress := flag.Bool("progress", false, "Enable the /ingest/progress websocket endpoint")
	flag.Parse()

	logger := logging.New()

	if *dataset == "" {
		logger.Error("-dataset is required")
		os.Exit(1)
	}

	artifacts, err := findLatestArtifacts(*outputDir, *dataset)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	logger.Info("✅", "loaded %s", artifacts.lexiconPath)
	logger.Info("✅", "loaded %s", artifacts.postingsPath)
	logger.Info("✅", "loaded %s", artifacts.docLengthPath)

	order := config.ByteOrder(*byteOrder)
	if !order.Valid() {
		logger.Error("invalid -byte-order %q", *byteOrder)
		os.Exit(1)
	}

	lex, err := reader.LoadLexicon(artifacts.lexiconPath)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	postings, err := reader.OpenPostings(artifacts.postingsPath, order)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	defer postings.Close()
	docLengths, err := reader.LoadDocLengths(artifacts.docLengthPath)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	scorer := reader.NewScorer(lex, postings, docLengths)

	var mode tokenizer.Mode
	switch *tokenizerMode {
	case "linguistic":
		mode = tokenizer.Linguistic
	default:
		mode = tokenizer.Simple
	}
	tok, err := tokenizer.New(mode)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	cfg := server.DefaultConfig()
	cfg.Host = *host
	cfg.Port = *port
	cfg.EnableGraphQL = *enableGraphQL
	cfg.EnableProgress = *enableProgress

	srv, err := server.New(cfg, scorer, tok)
	if err != nil {
		logger.Error("failed to create server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error: %v", err)
		os.Exit(1)
	}
}
