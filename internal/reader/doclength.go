package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// DocLengths is the doc_id -> euclidean_length table, 1-indexed (index
// 0 is always zero and unused, matching doc IDs starting at 1).
type DocLengths struct {
	lengths []float64
}

// LoadDocLengths reads the document-length CSV (spec §6.3).
func LoadDocLengths(path string) (*DocLengths, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open doc-length file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader: read doc-length file: %w", err)
	}
	if len(records) == 0 {
		return &DocLengths{}, nil
	}

	dl := &DocLengths{lengths: make([]float64, 1, len(records))} // index 0 unused
	for _, rec := range records[1:] {                            // skip header
		if len(rec) != 2 {
			return nil, fmt.Errorf("reader: malformed doc-length row %v", rec)
		}
		docID, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("reader: parse doc_id %q: %w", rec[0], err)
		}
		length, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("reader: parse euclidean_length %q: %w", rec[1], err)
		}
		for uint64(len(dl.lengths)) <= docID {
			dl.lengths = append(dl.lengths, 0)
		}
		dl.lengths[docID] = length
	}
	return dl, nil
}

// Length returns the stored euclidean length for docID, or 0 if docID
// is out of range (spec §9: a doc_length of 0 forces that document's
// score to 0 rather than dividing by zero).
func (d *DocLengths) Length(docID uint32) float64 {
	if int(docID) >= len(d.lengths) {
		return 0
	}
	return d.lengths[docID]
}

// NumDocs returns the number of documents described (excluding the
// unused index-0 slot).
func (d *DocLengths) NumDocs() int {
	if len(d.lengths) == 0 {
		return 0
	}
	return len(d.lengths) - 1
}
