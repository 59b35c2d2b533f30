// Package writer serializes an invindex.Index into the three on-disk
// artifacts spec §4.4 describes: a lexicon CSV, a binary postings file,
// and a document-length CSV.
package writer

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alyson-g/text-retrieval-engine/internal/config"
	"github.com/alyson-g/text-retrieval-engine/internal/invindex"
)

// Result names the three artifacts a Write call produced.
type Result struct {
	LexiconPath   string
	PostingsPath  string
	DocLengthPath string
}

type lexiconRow struct {
	term   string
	df     uint32
	idf    float64
	offset uint64
}

// Write serializes idx to outputDir, naming each artifact
// "<datasetName>_<kind>_<DDMMYYYY-HHMMSS>.<ext>" so repeated builds
// never clobber each other.
func Write(idx *invindex.Index, datasetName, outputDir string, order config.ByteOrder, now time.Time) (Result, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("writer: create output dir: %w", err)
	}

	stamp := now.Format("02012006-150405")
	lexiconPath := filepath.Join(outputDir, fmt.Sprintf("%s_lexicon_%s.csv", datasetName, stamp))
	postingsPath := filepath.Join(outputDir, fmt.Sprintf("%s_index_%s.bin", datasetName, stamp))
	docLengthPath := filepath.Join(outputDir, fmt.Sprintf("%s_document_length_%s.csv", datasetName, stamp))

	enc := order.Std()
	numDocs := idx.NumDocs()
	docVectorLengths := make([]float64, numDocs+1) // 1-indexed; index 0 unused

	postingsFile, err := os.Create(postingsPath)
	if err != nil {
		return Result{}, fmt.Errorf("writer: create postings file: %w", err)
	}

	rows := make([]lexiconRow, 0, idx.NumTerms())

	var offset uint64
	buf := make([]byte, 8)

	for _, term := range idx.Terms() {
		rec, _ := idx.Term(term)

		df := rec.DocCount
		idf := math.Log2(float64(numDocs) / float64(df))

		rows = append(rows, lexiconRow{term: term, df: df, idf: idf, offset: offset})

		for docID, tf := range rec.Postings {
			enc.PutUint32(buf[0:4], docID)
			enc.PutUint32(buf[4:8], tf)
			if _, err := postingsFile.Write(buf); err != nil {
				postingsFile.Close()
				return Result{}, fmt.Errorf("writer: write postings: %w", err)
			}
			offset += 8

			if int(docID) < len(docVectorLengths) {
				weighted := float64(tf) * idf
				docVectorLengths[docID] += weighted * weighted
			}
		}
	}

	if err := postingsFile.Close(); err != nil {
		return Result{}, fmt.Errorf("writer: close postings file: %w", err)
	}

	for d := range docVectorLengths {
		docVectorLengths[d] = math.Sqrt(docVectorLengths[d])
	}

	if err := writeLexiconCSV(lexiconPath, rows); err != nil {
		return Result{}, err
	}

	if err := writeDocLengthCSV(docLengthPath, docVectorLengths, numDocs); err != nil {
		return Result{}, err
	}

	return Result{LexiconPath: lexiconPath, PostingsPath: postingsPath, DocLengthPath: docLengthPath}, nil
}

func writeLexiconCSV(path string, rows []lexiconRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writer: create lexicon file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"term", "document_frequency", "inverse_document_frequency", "offset"}); err != nil {
		return fmt.Errorf("writer: write lexicon header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.term,
			strconv.FormatUint(uint64(row.df), 10),
			strconv.FormatFloat(row.idf, 'g', -1, 64),
			strconv.FormatUint(row.offset, 10),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writer: write lexicon row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writer: flush lexicon file: %w", err)
	}
	return nil
}

func writeDocLengthCSV(path string, lengths []float64, numDocs uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writer: create doc-length file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"doc_id", "euclidean_length"}); err != nil {
		return fmt.Errorf("writer: write doc-length header: %w", err)
	}

	for d := uint32(1); d <= numDocs; d++ {
		length := 0.0
		if int(d) < len(lengths) {
			length = lengths[d]
		}
		record := []string{
			strconv.FormatUint(uint64(d), 10),
			strconv.FormatFloat(length, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writer: write doc-length row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writer: flush doc-length file: %w", err)
	}
	return nil
}
