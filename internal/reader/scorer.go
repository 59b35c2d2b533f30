// Scorer implements spec §4.5.2-§4.5.3: build a query vector against
// the lexicon's idf weights, score candidate documents by cosine
// similarity against their stored vector lengths, and paginate.
//
// Grounded on pkg/text/inverted_index.go's Search method shape and
// original_source/index/inverted_index.py's tf_idf/cosine_similarity
// pair.
package reader

import (
	"fmt"
	"math"
	"sort"
)

// ScoredDoc is one row of a query result.
type ScoredDoc struct {
	DocID uint32
	Score float64
}

// Scorer answers queries against one index build's artifacts.
type Scorer struct {
	lexicon    *Lexicon
	postings   *PostingsFile
	docLengths *DocLengths
}

// NewScorer assembles a Scorer from already-loaded artifacts.
func NewScorer(lexicon *Lexicon, postings *PostingsFile, docLengths *DocLengths) *Scorer {
	return &Scorer{lexicon: lexicon, postings: postings, docLengths: docLengths}
}

// Query scores every document in [1, N] against terms — including
// documents that share none of the query's terms, which score 0
// rather than being omitted (spec §4.5.3: "a list [(doc_id, score)]
// for all d ∈ [1, N]") — sorts ascending by score (spec §9 Open
// Question 3 preserves this rather than the more natural descending
// order), and returns the [offset, offset+limit) slice.
//
// An empty terms list yields an empty result with no error. A term
// absent from the lexicon is silently skipped rather than failing the
// whole query (spec §7).
func (s *Scorer) Query(terms []string, offset, limit int) ([]ScoredDoc, error) {
	if len(terms) == 0 {
		return []ScoredDoc{}, nil
	}

	queryTF := make(map[string]uint32, len(terms))
	for _, t := range terms {
		queryTF[t]++
	}

	numDocs := 0
	if s.docLengths != nil {
		numDocs = s.docLengths.NumDocs()
	}

	dot := make(map[uint32]float64, numDocs)
	var queryNormSq float64

	for term, tf := range queryTF {
		postings, row, ok, err := s.postings.Lookup(s.lexicon, term)
		if err != nil {
			return nil, fmt.Errorf("reader: query term %q: %w", term, err)
		}
		if !ok {
			continue // term not in lexicon: skip, not an error
		}

		queryWeight := float64(tf) * row.InverseDocumentFrequency
		queryNormSq += queryWeight * queryWeight

		for _, p := range postings {
			if numDocs > 0 && p.DocID > uint32(numDocs) {
				return nil, fmt.Errorf("reader: postings doc_id %d exceeds document count %d (dimension mismatch)", p.DocID, numDocs)
			}
			docWeight := float64(p.TF) * row.InverseDocumentFrequency
			dot[p.DocID] += docWeight * queryWeight
		}
	}

	queryNorm := math.Sqrt(queryNormSq)

	results := make([]ScoredDoc, 0, numDocs)
	for docID := uint32(1); int(docID) <= numDocs; docID++ {
		docLen := s.docLengths.Length(docID)

		score := 0.0
		if docLen != 0 && queryNorm != 0 {
			score = dot[docID] / (docLen * queryNorm)
		}
		results = append(results, ScoredDoc{DocID: docID, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(results) {
		return []ScoredDoc{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(results) {
		end = len(results)
	}
	return results[offset:end], nil
}
