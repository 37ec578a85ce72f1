package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/revelaction/cohmetrix/index"
	"github.com/revelaction/cohmetrix/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// RecordStore persists analysis records.
type RecordStore struct {
	pool *sqlitex.Pool
}

var _ storage.RecordRepository = (*RecordStore)(nil)

func NewRecordStore(pool *sqlitex.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

func (h *RecordStore) WriteRecords(recs []storage.Record) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, r := range recs {
		indices := ""
		if r.Indices != nil {
			data, marshalErr := json.Marshal(r.Indices)
			if marshalErr != nil {
				return marshalErr
			}
			indices = string(data)
		}

		err = sqlitex.Execute(conn,
			"INSERT OR REPLACE INTO records (run_id, doc_id, title, indices, label, error, created) VALUES (?, ?, ?, ?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []interface{}{r.RunId, r.DocId, r.Title, indices, r.Label, r.Err, r.Created.UnixMilli()},
			})
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}
	return nil
}

func (h *RecordStore) Runs() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var runs []storage.Run
	err = sqlitex.Execute(conn,
		"SELECT run_id, MIN(created), COUNT(*), SUM(error != '') FROM records GROUP BY run_id ORDER BY MIN(created) DESC, run_id",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				runs = append(runs, storage.Run{
					Id:      stmt.ColumnText(0),
					Created: time.UnixMilli(stmt.ColumnInt64(1)),
					Records: stmt.ColumnInt(2),
					Failed:  stmt.ColumnInt(3),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (h *RecordStore) Records(runId string) ([]storage.Record, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var recs []storage.Record
	err = sqlitex.Execute(conn,
		"SELECT doc_id, title, indices, label, error, created FROM records WHERE run_id = ? ORDER BY doc_id",
		&sqlitex.ExecOptions{
			Args: []interface{}{runId},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				r := storage.Record{
					RunId:   runId,
					DocId:   stmt.ColumnInt(0),
					Title:   stmt.ColumnText(1),
					Label:   stmt.ColumnText(3),
					Err:     stmt.ColumnText(4),
					Created: time.UnixMilli(stmt.ColumnInt64(5)),
				}
				if data := stmt.ColumnText(2); data != "" {
					var m index.Map
					if err := json.Unmarshal([]byte(data), &m); err != nil {
						return fmt.Errorf("JSON decoding error: %w", err)
					}
					r.Indices = m
				}
				recs = append(recs, r)
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("run not found: %s", runId)
	}
	return recs, nil
}
