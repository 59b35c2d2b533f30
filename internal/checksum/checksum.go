// Package checksum guards against partial index builds (spec §4.4:
// "partial files may remain on disk" if a build is interrupted) by
// hashing the postings file and recording the digest in a sidecar
// manifest that a caller can check with Verify before trusting an
// artifact set. cmd/queryserver does not call Verify.
//
// golang.org/x/crypto is a teacher dependency with no other home in
// this system; blake2b is used here the way pkg/document/objectid.go
// uses content hashing for document identity, generalized to
// artifact-integrity checking.
package checksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Manifest records the postings-file digest for one index build.
type Manifest struct {
	PostingsDigest string
	PostingsSize   int64
}

// Sum computes the blake2b-256 digest of the file at path.
func Sum(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("checksum: open %s: %w", path, err)
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", 0, fmt.Errorf("checksum: init blake2b: %w", err)
	}

	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("checksum: hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), size, nil
}

// WriteManifest hashes postingsPath and writes a one-line sidecar
// manifest next to it at manifestPath.
func WriteManifest(postingsPath, manifestPath string) (Manifest, error) {
	digest, size, err := Sum(postingsPath)
	if err != nil {
		return Manifest{}, err
	}

	m := Manifest{PostingsDigest: digest, PostingsSize: size}
	line := fmt.Sprintf("blake2b-256 %s %d\n", m.PostingsDigest, m.PostingsSize)
	if err := os.WriteFile(manifestPath, []byte(line), 0o644); err != nil {
		return Manifest{}, fmt.Errorf("checksum: write manifest %s: %w", manifestPath, err)
	}
	return m, nil
}

// Verify recomputes the digest of postingsPath and compares it
// against the manifest recorded at manifestPath, catching a postings
// file truncated or overwritten after a build completed.
func Verify(postingsPath, manifestPath string) error {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("checksum: read manifest %s: %w", manifestPath, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) != 3 || fields[0] != "blake2b-256" {
		return fmt.Errorf("checksum: malformed manifest %s", manifestPath)
	}
	wantDigest := fields[1]

	gotDigest, _, err := Sum(postingsPath)
	if err != nil {
		return err
	}

	if gotDigest != wantDigest {
		return fmt.Errorf("checksum: postings file %s does not match manifest (got %s, want %s)", postingsPath, gotDigest, wantDigest)
	}
	return nil
}
