package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestScenarioA(t *testing.T) {
	path := writeCorpus(t, "<P ID=1>\ncats and dogs\n</P>\n<P ID=2>\ndogs dogs\n</P>\n")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	var docs []Document
	for {
		doc, ok, err := src.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		docs = append(docs, doc)
	}

	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].ID != 1 || docs[1].ID != 2 {
		t.Errorf("doc ids = %d, %d, want 1, 2", docs[0].ID, docs[1].ID)
	}
}

func TestWhitespaceLinesSkippedOutside(t *testing.T) {
	path := writeCorpus(t, "\n   \n<P ID=1>\nhello\n</P>\n")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	doc, ok, err := src.Next()
	if err != nil || !ok {
		t.Fatalf("Next: doc=%v ok=%v err=%v", doc, ok, err)
	}
	if doc.ID != 1 {
		t.Errorf("doc.ID = %d, want 1", doc.ID)
	}
}

func TestMalformedHeaderIsFatal(t *testing.T) {
	path := writeCorpus(t, "not a tag\n")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	_, _, err = src.Next()
	if err == nil {
		t.Fatal("expected a ParseError")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("got error %T, want *ParseError", err)
	}
}

func TestNestedOpenTagIsFatal(t *testing.T) {
	path := writeCorpus(t, "<P ID=1>\ntext\n<P ID=2>\n</P>\n")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	_, _, err = src.Next()
	if err == nil {
		t.Fatal("expected a ParseError for nested open tag")
	}
}

func TestEOFWhileInsideIsFatal(t *testing.T) {
	path := writeCorpus(t, "<P ID=1>\ntext\n")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	_, _, err = src.Next()
	if err == nil {
		t.Fatal("expected a ParseError for EOF while inside a document")
	}
}

func TestEOFWhileOutsideIsSuccess(t *testing.T) {
	path := writeCorpus(t, "<P ID=1>\ntext\n</P>\n")

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if _, ok, err := src.Next(); err != nil || !ok {
		t.Fatalf("first Next: ok=%v err=%v", ok, err)
	}
	if _, ok, err := src.Next(); err != nil || ok {
		t.Fatalf("second Next: expected clean EOF, got ok=%v err=%v", ok, err)
	}
}
