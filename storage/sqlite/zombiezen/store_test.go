package zombiezen

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/revelaction/cohmetrix/index"
	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/storage"
)

func openTestDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

func TestDocStore(t *testing.T) {
	pool, err := Open(openTestDB(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer pool.Close()

	store := NewDocStore(pool)
	para := sent.Paragraph{
		Text:      "El perro corre.",
		Sentences: [][]sent.Token{{{Id: 0, Head: 2, Text: "El"}, {Id: 1, Head: 2, Text: "perro"}, {Id: 2, Head: 2, Text: "corre", Dep: "ROOT"}}},
	}

	docs := []sent.Doc{
		{Title: "uno", Labels: []string{"A1", "fábula"}, Paragraphs: []sent.Paragraph{para, para}},
		{Title: "dos", Labels: []string{"B2"}},
		{Title: "tres"},
	}
	for i, d := range docs {
		id, err := store.Write(d)
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if id != i+1 {
			t.Errorf("expected id %d, got %d", i+1, id)
		}
	}

	got, err := store.Read(1)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Title != "uno" || len(got.Paragraphs) != 2 || !reflect.DeepEqual(got.Paragraphs[0], para) {
		t.Errorf("unexpected doc %+v", got)
	}
	if _, err := store.Read(99); err == nil {
		t.Errorf("expected error for unknown doc")
	}

	list, err := store.List("")
	if err != nil || len(list) != 3 {
		t.Fatalf("expected 3 docs, got %d %v", len(list), err)
	}
	if list[0].Paragraphs != nil {
		t.Errorf("expected List not to load content")
	}

	// "1,f" spans two labels and must not match
	for match, want := range map[string]int{"A": 1, "B2": 1, "1,f": 0, "X": 0} {
		list, err := store.List(match)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != want {
			t.Errorf("%q: expected %d docs, got %d", match, want, len(list))
		}
	}

	labels, err := store.Labels("")
	if err != nil || !reflect.DeepEqual(labels, []string{"A1", "B2", "fábula"}) {
		t.Errorf("unexpected labels %v %v", labels, err)
	}
	labels, _ = store.Labels("1")
	if !reflect.DeepEqual(labels, []string{"A1"}) {
		t.Errorf("unexpected filtered labels %v", labels)
	}
}

func TestRecordStore(t *testing.T) {
	pool, err := Open(openTestDB(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer pool.Close()

	store := NewRecordStore(pool)
	t0 := time.UnixMilli(time.Now().UnixMilli())

	first := []storage.Record{
		{RunId: "run-a", DocId: 2, Title: "dos", Err: "text has length 0", Created: t0},
		{RunId: "run-a", DocId: 1, Title: "uno", Indices: index.Map{index.DESWC: 7, index.CRFNO1: math.NaN()}, Label: "A1", Created: t0},
	}
	second := []storage.Record{
		{RunId: "run-b", DocId: 1, Title: "uno", Indices: index.Map{index.DESWC: 8}, Created: t0.Add(time.Second)},
	}
	if err := store.WriteRecords(first); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.WriteRecords(second); err != nil {
		t.Fatalf("write: %v", err)
	}

	runs, err := store.Runs()
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	want := []storage.Run{
		{Id: "run-b", Created: t0.Add(time.Second), Records: 1},
		{Id: "run-a", Created: t0, Records: 2, Failed: 1},
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", runs)
	}
	for i := range want {
		if runs[i].Id != want[i].Id || !runs[i].Created.Equal(want[i].Created) ||
			runs[i].Records != want[i].Records || runs[i].Failed != want[i].Failed {
			t.Errorf("run %d: expected %+v, got %+v", i, want[i], runs[i])
		}
	}

	recs, err := store.Records("run-a")
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(recs) != 2 || recs[0].DocId != 1 || recs[1].DocId != 2 {
		t.Fatalf("expected records ordered by doc id, got %+v", recs)
	}
	if recs[0].Indices[index.DESWC] != 7 || !math.IsNaN(recs[0].Indices[index.CRFNO1]) || recs[0].Label != "A1" {
		t.Errorf("unexpected first record %+v", recs[0])
	}
	if recs[1].Indices != nil || recs[1].Err == "" {
		t.Errorf("expected failed record without indices, got %+v", recs[1])
	}

	if _, err := store.Records("run-x"); err == nil {
		t.Errorf("expected error for unknown run")
	}
}
