package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	sent "github.com/revelaction/cohmetrix/sentence"
)

func TestDocStore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	para := sent.Paragraph{Text: "Uno.", Sentences: [][]sent.Token{{{Text: "Uno"}, {Text: "."}}}}
	docs := []sent.Doc{
		{Title: "uno", Labels: []string{"A1"}, Paragraphs: []sent.Paragraph{para}},
		{Labels: []string{"B1", "A2"}},
	}
	for i, d := range docs {
		id, err := store.Write(d)
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if id != i {
			t.Errorf("expected id %d, got %d", i, id)
		}
	}

	got, err := store.Read(0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Title != "uno" || !reflect.DeepEqual(got.Paragraphs, []sent.Paragraph{para}) {
		t.Errorf("unexpected doc %+v", got)
	}

	got, err = store.Read(1)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Title != "00000001.json" {
		t.Errorf("expected file name as title, got %q", got.Title)
	}
	if _, err := store.Read(2); err == nil {
		t.Errorf("expected out of range error")
	}

	list, err := store.List("A")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Title != "uno" {
		t.Errorf("unexpected list %+v", list)
	}
	list, _ = store.List("B")
	if len(list) != 1 || list[0].Id != 1 {
		t.Errorf("unexpected list %+v", list)
	}

	labels, err := store.Labels("")
	if err != nil || !reflect.DeepEqual(labels, []string{"A1", "A2", "B1"}) {
		t.Errorf("unexpected labels %v %v", labels, err)
	}

	// a reopened store sees the same files
	reopened, err := NewDocStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if all, _ := reopened.List(""); len(all) != 2 {
		t.Errorf("expected 2 docs after reopen, got %d", len(all))
	}
}

func TestNewDocStoreMissingDir(t *testing.T) {
	if _, err := NewDocStore(filepath.Join(t.TempDir(), "none")); err == nil {
		t.Errorf("expected error for missing directory")
	}
}
