// Package invindex is the in-memory inverted index accumulated during
// ingestion (spec §3, §4.2), generalized from pkg/text/inverted_index.go's
// PostingsList/InvertedIndex shape to integer doc-ids and the exact
// collection_count/doc_count/postings invariants spec.md requires.
package invindex

// TermRecord holds the per-term bookkeeping required to compute idf and
// postings blocks at write time.
//
// Invariants, enforced after every Add:
//   - CollectionCount == sum of Postings values
//   - DocCount == len(Postings)
//   - every posting value (tf) >= 1
type TermRecord struct {
	CollectionCount uint64
	DocCount        uint32
	Postings        map[uint32]uint32 // doc_id -> tf
}

// Index is the in-memory inverted index built during a single ingestion
// run. It is not safe for concurrent use (spec §5: single-threaded
// cooperative build).
type Index struct {
	terms    map[string]*TermRecord
	order    []string // insertion order, so lexicon/postings layout is stable
	numDocs  uint32
	numTerms uint32
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		terms: make(map[string]*TermRecord),
	}
}

// Add records one occurrence of term within docID.
func (idx *Index) Add(docID uint32, term string) {
	rec, ok := idx.terms[term]
	if !ok {
		rec = &TermRecord{Postings: make(map[uint32]uint32)}
		idx.terms[term] = rec
		idx.order = append(idx.order, term)
		idx.numTerms++
	}

	rec.CollectionCount++
	if _, exists := rec.Postings[docID]; !exists {
		rec.DocCount++
	}
	rec.Postings[docID]++
}

// NoteDocument must be called exactly once per document ingested, even
// if the document produced zero terms.
func (idx *Index) NoteDocument() {
	idx.numDocs++
}

// NumDocs returns the number of documents ingested so far.
func (idx *Index) NumDocs() uint32 {
	return idx.numDocs
}

// NumTerms returns the number of distinct terms indexed so far.
func (idx *Index) NumTerms() uint32 {
	return idx.numTerms
}

// Terms returns the indexed terms in insertion order.
func (idx *Index) Terms() []string {
	return idx.order
}

// Term returns the TermRecord for t, or (nil, false) if t was never indexed.
func (idx *Index) Term(t string) (*TermRecord, bool) {
	rec, ok := idx.terms[t]
	return rec, ok
}
