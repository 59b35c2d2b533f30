// Package reader implements spec §4.5: lexicon/postings lookup and
// cosine-similarity scoring against the artifacts internal/writer
// produces.
package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LexiconRow is one parsed row of the lexicon CSV.
type LexiconRow struct {
	Term                     string
	DocumentFrequency        uint32
	InverseDocumentFrequency float64
	Offset                   uint64
}

// Lexicon is the lexicon CSV loaded into memory, in file order, with a
// term -> row index for lookup.
type Lexicon struct {
	rows  []LexiconRow
	index map[string]int
}

// LoadLexicon reads and parses a lexicon CSV (spec §6.2).
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open lexicon: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader: read lexicon: %w", err)
	}
	if len(records) == 0 {
		return &Lexicon{index: map[string]int{}}, nil
	}

	lex := &Lexicon{
		rows:  make([]LexiconRow, 0, len(records)-1),
		index: make(map[string]int, len(records)-1),
	}

	for _, rec := range records[1:] { // skip header
		if len(rec) != 4 {
			return nil, fmt.Errorf("reader: malformed lexicon row %v", rec)
		}

		df, err := strconv.ParseUint(rec[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("reader: parse document_frequency %q: %w", rec[1], err)
		}
		idf, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("reader: parse inverse_document_frequency %q: %w", rec[2], err)
		}
		offset, err := strconv.ParseUint(rec[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("reader: parse offset %q: %w", rec[3], err)
		}

		lex.index[rec[0]] = len(lex.rows)
		lex.rows = append(lex.rows, LexiconRow{
			Term:                     rec[0],
			DocumentFrequency:        uint32(df),
			InverseDocumentFrequency: idf,
			Offset:                   offset,
		})
	}

	return lex, nil
}

// Lookup finds the lexicon row for term by exact match.
func (l *Lexicon) Lookup(term string) (LexiconRow, bool) {
	i, ok := l.index[term]
	if !ok {
		return LexiconRow{}, false
	}
	return l.rows[i], true
}

// blockLength returns the length in bytes of term's postings block,
// given the postings file size (spec §4.5.1, §9 Open Question 4): the
// last lexicon row has no "next" row to derive a length from, so it
// uses fileSize-offset instead.
func (l *Lexicon) blockLength(term string, fileSize int64) (uint64, bool) {
	i, ok := l.index[term]
	if !ok {
		return 0, false
	}
	if i+1 < len(l.rows) {
		return l.rows[i+1].Offset - l.rows[i].Offset, true
	}
	return uint64(fileSize) - l.rows[i].Offset, true
}
