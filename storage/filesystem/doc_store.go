package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/storage"
)

// DocStore is a directory of JSON documents. The id of a document is the
// position of its file in name order.
type DocStore struct {
	docDir string

	files []string
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store.
func NewDocStore(docDir string) (*DocStore, error) {
	entries, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	return &DocStore{docDir: docDir, files: files}, nil
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	docs := make([]sent.Doc, 0, len(h.files))
	for id, name := range h.files {
		doc := sent.Doc{Id: id, Title: name}
		if labelMatch != "" {
			full, err := ReadDoc(filepath.Join(h.docDir, name))
			if err != nil {
				return nil, err
			}
			if !hasLabel(full.Labels, labelMatch) {
				continue
			}
			doc.Labels = full.Labels
			if full.Title != "" {
				doc.Title = full.Title
			}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.files) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc, err := ReadDoc(filepath.Join(h.docDir, h.files[id]))
	if err != nil {
		return sent.Doc{}, err
	}
	doc.Id = id
	if doc.Title == "" {
		doc.Title = h.files[id]
	}
	return doc, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	seen := map[string]bool{}
	for _, name := range h.files {
		doc, err := ReadDoc(filepath.Join(h.docDir, name))
		if err != nil {
			return nil, err
		}
		for _, l := range doc.Labels {
			if pattern == "" || strings.Contains(l, pattern) {
				seen[l] = true
			}
		}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, nil
}

// Write stores doc in a new file named after the number of stored docs.
// Ids of files sorting after the new name shift by one.
func (h *DocStore) Write(doc sent.Doc) (int, error) {
	id := len(h.files)
	name := fmt.Sprintf("%08d.json", id)
	if i := sort.SearchStrings(h.files, name); i < len(h.files) && h.files[i] == name {
		return 0, fmt.Errorf("doc file %s already exists", name)
	}

	doc.Id = id
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(h.docDir, name), data, 0o644); err != nil {
		return 0, fmt.Errorf("IO error: %w", err)
	}

	h.files = append(h.files, name)
	sort.Strings(h.files)
	return sort.SearchStrings(h.files, name), nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}

func hasLabel(labels []string, match string) bool {
	for _, l := range labels {
		if strings.Contains(l, match) {
			return true
		}
	}
	return false
}
