// Package ingest drives a corpus.Source through a tokenizer.Tokenizer
// into an invindex.Index (spec §4.3).
package ingest

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/alyson-g/text-retrieval-engine/internal/corpus"
	"github.com/alyson-g/text-retrieval-engine/internal/invindex"
	"github.com/alyson-g/text-retrieval-engine/internal/tokenizer"
)

// Stats reports ingestion progress, consumed by the optional progress
// feed in internal/server.
type Stats struct {
	DocumentsProcessed int
	WordsProcessed     int
}

// Ingestor reads documents from a corpus.Source, tokenizes their text,
// and populates an invindex.Index.
type Ingestor struct {
	source *corpus.Source
	tok    *tokenizer.Tokenizer
	index  *invindex.Index
	stats  Stats
}

// New constructs an Ingestor over an already-open source.
func New(source *corpus.Source, tok *tokenizer.Tokenizer, index *invindex.Index) *Ingestor {
	return &Ingestor{source: source, tok: tok, index: index}
}

// Run pulls every document from the source and indexes it, invoking
// onProgress (if non-nil) after each document. It returns on the first
// corpus.ParseError or I/O error (spec §4.3, "fail fast").
func (in *Ingestor) Run(onProgress func(Stats)) error {
	for {
		doc, ok, err := in.source.Next()
		if err != nil {
			return fmt.Errorf("ingest: %w", err)
		}
		if !ok {
			return nil
		}

		in.indexDocument(doc.ID, doc.Text)
		in.index.NoteDocument()
		in.stats.DocumentsProcessed++

		if onProgress != nil {
			onProgress(in.stats)
		}
	}
}

func (in *Ingestor) indexDocument(docID int, text string) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		for _, term := range in.tok.TokenizeLine(scanner.Text()) {
			in.index.Add(uint32(docID), term)
			in.stats.WordsProcessed++
		}
	}
}

// Stats returns the ingestor's running totals.
func (in *Ingestor) Stats() Stats {
	return in.stats
}
