// Package config holds the small set of options spec §6.6 names:
// byte_order, tokenizer_mode, dataset_name, output_directory. Grounded
// on pkg/server/config.go's plain-struct-plus-DefaultConfig shape — no
// globals, constructed once at startup and threaded explicitly (spec §9,
// "shared mutable state in the server").
package config

import (
	"encoding/binary"
	"fmt"

	"github.com/alyson-g/text-retrieval-engine/internal/tokenizer"
)

// ByteOrder selects the endianness of doc_id/tf pairs written to and
// read from the postings file. Writer and reader must agree; the
// lexicon does not record which was used.
type ByteOrder string

const (
	BigEndian    ByteOrder = "big"
	LittleEndian ByteOrder = "little"
)

// Std returns the stdlib binary.ByteOrder this value selects.
func (b ByteOrder) Std() binary.ByteOrder {
	if b == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Valid reports whether b is one of the recognized byte orders.
func (b ByteOrder) Valid() bool {
	return b == BigEndian || b == LittleEndian
}

// Config is the full set of options that must agree between an index
// build and the queries run against it.
type Config struct {
	ByteOrder       ByteOrder
	TokenizerMode   tokenizer.Mode
	DatasetName     string
	OutputDirectory string
}

// DefaultConfig returns sensible defaults: big-endian postings, simple
// tokenization, and an "./output_reports" destination directory,
// matching original_source/main.py's output layout.
func DefaultConfig() Config {
	return Config{
		ByteOrder:       BigEndian,
		TokenizerMode:   tokenizer.Simple,
		DatasetName:     "corpus",
		OutputDirectory: "./output_reports",
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if !c.ByteOrder.Valid() {
		return fmt.Errorf("config: invalid byte_order %q", c.ByteOrder)
	}
	if c.TokenizerMode != tokenizer.Simple && c.TokenizerMode != tokenizer.Linguistic {
		return fmt.Errorf("config: invalid tokenizer_mode %q", c.TokenizerMode)
	}
	if c.DatasetName == "" {
		return fmt.Errorf("config: dataset_name must not be empty")
	}
	if c.OutputDirectory == "" {
		return fmt.Errorf("config: output_directory must not be empty")
	}
	return nil
}
