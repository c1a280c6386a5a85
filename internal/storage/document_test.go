package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadMissingDocument(t *testing.T) {
	var d doc
	ok, err := ReadDocument(filepath.Join(t.TempDir(), "absent.json"), &d)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if ok {
		t.Error("missing document reported as present")
	}
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "doc.json")

	if err := WriteDocument(path, doc{Name: "vainilla", Count: 3}); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	var d doc
	ok, err := ReadDocument(path, &d)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if !ok || d.Name != "vainilla" || d.Count != 3 {
		t.Errorf("round trip mismatch: %+v (present=%v)", d, ok)
	}
}

func TestWriteReplacesWholeDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	WriteDocument(path, doc{Name: "first", Count: 1})
	if err := WriteDocument(path, doc{Name: "second", Count: 2}); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	var d doc
	ReadDocument(path, &d)
	if d.Name != "second" {
		t.Errorf("expected the replaced document, got %+v", d)
	}

	// No temp files left behind after the rename.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %q", e.Name())
		}
	}
}

func TestReadCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	os.WriteFile(path, []byte("{not json"), 0o644)

	var d doc
	if _, err := ReadDocument(path, &d); err == nil {
		t.Error("expected an error for a corrupt document")
	}
}
