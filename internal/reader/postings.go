package reader

import (
	"fmt"
	"os"

	"github.com/alyson-g/text-retrieval-engine/internal/config"
)

// Posting is one (doc_id, term_frequency) pair decoded from a
// postings block.
type Posting struct {
	DocID uint32
	TF    uint32
}

// PostingsFile gives random access to postings blocks by byte offset.
type PostingsFile struct {
	f     *os.File
	size  int64
	order config.ByteOrder
}

// OpenPostings opens the binary postings file written by internal/writer.
func OpenPostings(path string, order config.ByteOrder) (*PostingsFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open postings: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reader: stat postings: %w", err)
	}
	return &PostingsFile{f: f, size: info.Size(), order: order}, nil
}

// Size returns the postings file's length in bytes, used by
// Lexicon.blockLength for the last row.
func (p *PostingsFile) Size() int64 {
	return p.size
}

// Close releases the underlying file handle.
func (p *PostingsFile) Close() error {
	return p.f.Close()
}

// ReadBlock decodes the 8-byte (doc_id, tf) records in [offset,
// offset+length) in file order.
func (p *PostingsFile) ReadBlock(offset uint64, length uint64) ([]Posting, error) {
	if length == 0 {
		return nil, nil
	}
	if length%8 != 0 {
		return nil, fmt.Errorf("reader: postings block length %d is not a multiple of 8", length)
	}

	buf := make([]byte, length)
	if _, err := p.f.ReadAt(buf, int64(offset)); err != nil {
		return nil, fmt.Errorf("reader: read postings block at %d: %w", offset, err)
	}

	enc := p.order.Std()
	n := int(length / 8)
	postings := make([]Posting, n)
	for i := 0; i < n; i++ {
		rec := buf[i*8 : i*8+8]
		postings[i] = Posting{
			DocID: enc.Uint32(rec[0:4]),
			TF:    enc.Uint32(rec[4:8]),
		}
	}
	return postings, nil
}

// Lookup resolves term through lex and decodes its postings block.
// ok is false when term is absent from the lexicon (spec §7: a
// missing query term is skipped, not an error).
func (p *PostingsFile) Lookup(lex *Lexicon, term string) ([]Posting, LexiconRow, bool, error) {
	row, ok := lex.Lookup(term)
	if !ok {
		return nil, LexiconRow{}, false, nil
	}
	length, ok := lex.blockLength(term, p.size)
	if !ok {
		return nil, LexiconRow{}, false, nil
	}
	postings, err := p.ReadBlock(row.Offset, length)
	if err != nil {
		return nil, LexiconRow{}, false, err
	}
	return postings, row, true, nil
}
