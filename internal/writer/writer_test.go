package writer

import (
	"encoding/binary"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alyson-g/text-retrieval-engine/internal/config"
	"github.com/alyson-g/text-retrieval-engine/internal/invindex"
)

func buildScenarioAIndex() *invindex.Index {
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

func readLexicon(t *testing.T, path string) map[string][4]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open lexicon: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read lexicon: %v", err)
	}

	if len(records) == 0 || records[0][0] != "term" {
		t.Fatalf("unexpected lexicon header: %v", records)
	}

	rows := make(map[string][4]string)
	for _, rec := range records[1:] {
		rows[rec[0]] = [4]string{rec[0], rec[1], rec[2], rec[3]}
	}
	return rows
}

func TestScenarioARoundTrip(t *testing.T) {
	idx := buildScenarioAIndex()
	dir := t.TempDir()

	result, err := Write(idx, "scenario-a", dir, config.BigEndian, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	lexicon := readLexicon(t, result.LexiconPath)

	if len(lexicon) != 3 {
		t.Fatalf("lexicon has %d rows, want 3 (no double-append per §9 Open Question 1)", len(lexicon))
	}

	dogsRow, ok := lexicon["dogs"]
	if !ok {
		t.Fatal("lexicon missing \"dogs\"")
	}
	if dogsRow[1] != "2" {
		t.Errorf("dogs document_frequency = %s, want 2", dogsRow[1])
	}
	dogsIDF, _ := strconv.ParseFloat(dogsRow[2], 64)
	if dogsIDF != 0 {
		t.Errorf("dogs idf = %v, want 0 (log2(2/2))", dogsIDF)
	}

	catsRow := lexicon["cats"]
	catsIDF, _ := strconv.ParseFloat(catsRow[2], 64)
	if math.Abs(catsIDF-1) > 1e-9 {
		t.Errorf("cats idf = %v, want 1 (log2(2/1))", catsIDF)
	}

	// doc-length file
	f, err := os.Open(result.DocLengthPath)
	if err != nil {
		t.Fatalf("open doc-length file: %v", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read doc-length file: %v", err)
	}
	if len(records) != 3 { // header + 2 docs
		t.Fatalf("doc-length file has %d rows, want 3", len(records))
	}
	len1, _ := strconv.ParseFloat(records[1][1], 64)
	len2, _ := strconv.ParseFloat(records[2][1], 64)
	if math.Abs(len1-math.Sqrt2) > 1e-9 {
		t.Errorf("doc 1 length = %v, want sqrt(2)", len1)
	}
	if len2 != 0 {
		t.Errorf("doc 2 length = %v, want 0", len2)
	}

	// postings file: concatenated blocks, no gaps (invariant 3)
	info, err := os.Stat(result.PostingsPath)
	if err != nil {
		t.Fatalf("stat postings file: %v", err)
	}
	var totalDF int64
	for _, row := range lexicon {
		df, _ := strconv.Atoi(row[1])
		totalDF += int64(df)
	}
	if totalDF*8 != info.Size() {
		t.Errorf("postings file size = %d, want %d (sum(df)*8)", info.Size(), totalDF*8)
	}

	// dogs postings block: offset from lexicon, decode pairs, compare to in-memory postings
	dogsOffset, _ := strconv.ParseUint(dogsRow[3], 10, 64)
	buf := make([]byte, 16)
	pf, err := os.Open(result.PostingsPath)
	if err != nil {
		t.Fatalf("open postings: %v", err)
	}
	defer pf.Close()
	if _, err := pf.ReadAt(buf, int64(dogsOffset)); err != nil {
		t.Fatalf("read postings at offset %d: %v", dogsOffset, err)
	}

	got := map[uint32]uint32{}
	for i := 0; i < 2; i++ {
		docID := binary.BigEndian.Uint32(buf[i*8 : i*8+4])
		tf := binary.BigEndian.Uint32(buf[i*8+4 : i*8+8])
		got[docID] = tf
	}
	want := map[uint32]uint32{1: 1, 2: 2}
	if len(got) != len(want) || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("dogs postings = %v, want %v", got, want)
	}
}

func TestWriteTimestampsDontClobber(t *testing.T) {
	idx := buildScenarioAIndex()
	dir := t.TempDir()

	r1, err := Write(idx, "d", dir, config.BigEndian, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Write 1: %v", err)
	}
	r2, err := Write(idx, "d", dir, config.BigEndian, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC))
	if err != nil {
		t.Fatalf("Write 2: %v", err)
	}
	if r1.LexiconPath == r2.LexiconPath {
		t.Error("expected distinct lexicon paths across builds")
	}
	if _, err := os.Stat(filepath.Join(dir)); err != nil {
		t.Fatalf("output dir missing: %v", err)
	}
}
