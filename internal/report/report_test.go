package report

import (
	"compress/gzip"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alyson-g/text-retrieval-engine/internal/invindex"
)

func buildIndex() *invindex.Index {
	idx := invindex.New()
	idx.Add(1, "cats")
	idx.Add(1, "and")
	idx.Add(1, "dogs")
	idx.NoteDocument()
	idx.Add(2, "dogs")
	idx.Add(2, "dogs")
	idx.NoteDocument()
	return idx
}

func TestWriteMetricReport(t *testing.T) {
	idx := buildIndex()
	dir := t.TempDir()

	path, err := WriteMetricReport(idx, 5, "d", dir)
	if err != nil {
		t.Fatalf("WriteMetricReport: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "Documents processed: 2") {
		t.Errorf("content = %q, want document count 2", content)
	}
	if !strings.Contains(content, "Collection Size: 5") {
		t.Errorf("content = %q, want collection size 5", content)
	}
	if !strings.Contains(content, "Vocabulary Size: 3") {
		t.Errorf("content = %q, want vocabulary size 3", content)
	}
}

func TestWriteSingletonReport(t *testing.T) {
	idx := buildIndex()
	dir := t.TempDir()

	path, err := WriteSingletonReport(idx, "d", dir)
	if err != nil {
		t.Fatalf("WriteSingletonReport: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "Number of words that appeared only once: 2") {
		t.Errorf("content = %q, want 2 singletons (cats, and)", content)
	}
	if !strings.Contains(content, "cats") || !strings.Contains(content, "and") {
		t.Errorf("content = %q, want both singletons listed", content)
	}
	if strings.Contains(content, "dogs,") || strings.HasSuffix(strings.TrimSpace(content), "dogs") {
		t.Errorf("content = %q, dogs appears twice so it should not be a singleton", content)
	}
}

func TestWriteFrequencyReportRanksDescending(t *testing.T) {
	idx := buildIndex()
	dir := t.TempDir()

	path, err := WriteFrequencyReport(idx, "d", dir)
	if err != nil {
		t.Fatalf("WriteFrequencyReport: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer gr.Close()

	records, err := csv.NewReader(gr).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 4 { // header + 3 terms
		t.Fatalf("records = %v, want header + 3 rows", records)
	}
	if records[1][1] != "dogs" || records[1][2] != "3" {
		t.Errorf("top row = %v, want dogs with collection_frequency=3", records[1])
	}
}

func TestReportFilesLandInGivenDirectory(t *testing.T) {
	idx := buildIndex()
	dir := t.TempDir()
	path, err := WriteMetricReport(idx, 0, "nested", dir)
	if err != nil {
		t.Fatalf("WriteMetricReport: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("report written to %q, want directory %q", path, dir)
	}
}
