package server

import (
	"encoding/json"
	"net/http"

	"github.com/alyson-g/text-retrieval-engine/internal/reader"
	"github.com/alyson-g/text-retrieval-engine/internal/tokenizer"
)

// queryRequest is the POST /query body: query_str plus the same
// limit/offset pagination original_source/routers/query.py accepts.
type queryRequest struct {
	QueryStr string `json:"query_str"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// queryResponse mirrors original_source/routers/query.py's
// {"documents": [...]} shape exactly (doc ids only, no scores).
type queryResponse struct {
	Documents []uint32 `json:"documents"`
}

// runQuery tokenizes queryStr the same way the index was built and
// scores it, returning just the ordered doc ids. A malformed query
// never bubbles up as an HTTP error (spec §7): an empty or entirely
// out-of-vocabulary query simply returns an empty documents list.
func runQuery(tok *tokenizer.Tokenizer, scorer *reader.Scorer, queryStr string, limit, offset int) ([]uint32, error) {
	if limit <= 0 {
		limit = 10
	}
	terms := tok.TokenizeLine(queryStr)

	scored, err := scorer.Query(terms, offset, limit)
	if err != nil {
		return nil, err
	}

	docs := make([]uint32, len(scored))
	for i, s := range scored {
		docs[i] = s.DocID
	}
	return docs, nil
}

// handleQuery implements POST /query.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Malformed body: treat as an empty query rather than a 4xx,
		// matching the always-200 contract (spec §7).
		writeJSON(w, http.StatusOK, queryResponse{Documents: []uint32{}})
		return
	}

	docs, err := runQuery(s.tokenizer, s.scorer, req.QueryStr, req.Limit, req.Offset)
	if err != nil {
		s.logger.Error("query failed: %v", err)
		writeJSON(w, http.StatusOK, queryResponse{Documents: []uint32{}})
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{Documents: docs})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
