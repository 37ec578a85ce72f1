package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT id, title, labels FROM docs ORDER BY id"
	var args []interface{}
	if labelMatch != "" {
		query = "SELECT id, title, labels FROM docs WHERE instr(labels, ?) > 0 ORDER BY id"
		args = append(args, labelMatch)
	}

	var docs []sent.Doc
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := sent.Doc{
				Id:     stmt.ColumnInt(0),
				Title:  stmt.ColumnText(1),
				Labels: splitLabels(stmt.ColumnText(2)),
			}
			// the substring may span two labels
			if labelMatch != "" && !hasLabel(doc.Labels, labelMatch) {
				return nil
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.Labels = splitLabels(stmt.ColumnText(1))
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM paragraphs WHERE doc_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var p sent.Paragraph
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &p); err != nil {
				return fmt.Errorf("JSON decoding error: %w", err)
			}
			doc.Paragraphs = append(doc.Paragraphs, p)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	seen := map[string]bool{}
	err = sqlitex.Execute(conn, "SELECT labels FROM docs WHERE labels != ''", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			for _, l := range splitLabels(stmt.ColumnText(0)) {
				if pattern == "" || strings.Contains(l, pattern) {
					seen[l] = true
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, nil
}

func (h *DocStore) Write(doc sent.Doc) (id int, err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	labels := strings.Join(doc.Labels, ",")
	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, labels},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for i, p := range doc.Paragraphs {
		data, marshalErr := json.Marshal(p)
		if marshalErr != nil {
			return 0, marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO paragraphs (doc_id, position, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, i, string(data)},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert paragraph: %w", err)
		}
	}

	return int(docID), nil
}

func splitLabels(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func hasLabel(labels []string, match string) bool {
	for _, l := range labels {
		if strings.Contains(l, match) {
			return true
		}
	}
	return false
}
