// Package report regenerates original_source/index/indexer.py's three
// reporting artifacts (metric/singleton/frequency) against the
// generalized invindex.Index, gzip-compressing the frequency report
// with klauspost/compress the way a large CSV artifact would be
// compressed elsewhere in this stack.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/alyson-g/text-retrieval-engine/internal/invindex"
)

// WriteMetricReport writes "<datasetName>_metric_report.txt": document
// count, collection size (total term occurrences), vocabulary size.
func WriteMetricReport(idx *invindex.Index, wordsProcessed uint64, datasetName, outputDir string) (string, error) {
	path := filepath.Join(outputDir, fmt.Sprintf("%s_metric_report.txt", datasetName))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Documents processed: %d\n", idx.NumDocs())
	fmt.Fprintf(&sb, "Collection Size: %d\n", wordsProcessed)
	fmt.Fprintf(&sb, "Vocabulary Size: %d\n", idx.NumTerms())

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("report: write metric report: %w", err)
	}
	return path, nil
}

// WriteSingletonReport writes "<datasetName>_singleton_report.txt":
// terms that occur exactly once, in exactly one document.
func WriteSingletonReport(idx *invindex.Index, datasetName, outputDir string) (string, error) {
	path := filepath.Join(outputDir, fmt.Sprintf("%s_singleton_report.txt", datasetName))

	var singletons []string
	for _, term := range idx.Terms() {
		rec, _ := idx.Term(term)
		if rec.CollectionCount == 1 && rec.DocCount == 1 {
			singletons = append(singletons, term)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Number of words that appeared only once: %d\n\n", len(singletons))
	sb.WriteString("List of singletons:\n")
	sb.WriteString(strings.Join(singletons, ", "))

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("report: write singleton report: %w", err)
	}
	return path, nil
}

type frequencyRow struct {
	term           string
	collectionFreq uint64
	documentFreq   uint32
}

// WriteFrequencyReport writes a gzip-compressed
// "<datasetName>_frequency_report.csv.gz" ranking every term by
// collection frequency descending, term-insertion-order breaking ties
// (stable sort, matching pandas' stable sort_values default).
func WriteFrequencyReport(idx *invindex.Index, datasetName, outputDir string) (string, error) {
	path := filepath.Join(outputDir, fmt.Sprintf("%s_frequency_report.csv.gz", datasetName))

	rows := make([]frequencyRow, 0, idx.NumTerms())
	for _, term := range idx.Terms() {
		rec, _ := idx.Term(term)
		rows = append(rows, frequencyRow{term: term, collectionFreq: rec.CollectionCount, documentFreq: rec.DocCount})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].collectionFreq > rows[j].collectionFreq
	})

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create frequency report: %w", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	w := csv.NewWriter(gw)

	if err := w.Write([]string{"rank", "word", "collection_frequency", "document_frequency"}); err != nil {
		return "", fmt.Errorf("report: write frequency header: %w", err)
	}
	for i, row := range rows {
		record := []string{
			strconv.Itoa(i + 1),
			row.term,
			strconv.FormatUint(row.collectionFreq, 10),
			strconv.FormatUint(uint64(row.documentFreq), 10),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("report: write frequency row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("report: flush frequency csv: %w", err)
	}
	if err := gw.Close(); err != nil {
		return "", fmt.Errorf("report: close gzip writer: %w", err)
	}
	return path, nil
}
