// Package postgres exports analysis records to a PostgreSQL table.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/cohmetrix/index"
	"github.com/revelaction/cohmetrix/storage"
)

const (
	bulkInsertChunkSize = 500

	// DefaultTable receives the records.
	DefaultTable = "cohmetrix_records"
)

// Conf holds the connection parameters.
type Conf struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	PoolSize int    `toml:"poolSize"`
}

// IsSet reports whether a database is configured.
func (conf Conf) IsSet() bool {
	return conf.Host != "" && conf.Name != ""
}

// Open connects a pool to the configured database.
func Open(ctx context.Context, conf Conf) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=disable",
		conf.User, conf.Password, conf.Host, conf.Port, conf.Name,
	)
	if conf.PoolSize > 0 {
		dsn += fmt.Sprintf(" pool_max_conns=%d", conf.PoolSize)
	}
	return pgxpool.New(ctx, dsn)
}

var cols = []string{"run_id", "doc_id", "title", "label", "error", "created", "indices"}

// RecordStore writes records with COPY in chunks.
type RecordStore struct {
	db    *pgxpool.Pool
	table string
}

var _ storage.RecordRepository = (*RecordStore)(nil)

func NewRecordStore(db *pgxpool.Pool, table string) *RecordStore {
	if table == "" {
		table = DefaultTable
	}
	return &RecordStore{db: db, table: table}
}

// CreateTable creates the record table when it does not exist.
func (s *RecordStore) CreateTable(ctx context.Context) error {
	_, err := s.db.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		run_id TEXT NOT NULL,
		doc_id INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		label TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		created TIMESTAMPTZ NOT NULL,
		indices JSONB,
		PRIMARY KEY (run_id, doc_id)
	)`, pgx.Identifier{s.table}.Sanitize()))
	return err
}

func (s *RecordStore) WriteRecords(recs []storage.Record) error {
	ctx := context.Background()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := make([][]any, 0, bulkInsertChunkSize)
	t0 := time.Now()

	flush := func() error {
		copyCount, err := tx.CopyFrom(ctx, pgx.Identifier{s.table}, cols, pgx.CopyFromRows(args))
		if err != nil {
			return err
		}
		log.Debug().Int64("items", copyCount).Msg("written bulk into database")
		args = make([][]any, 0, bulkInsertChunkSize)
		return nil
	}

	for _, r := range recs {
		var indices any
		if r.Indices != nil {
			data, err := json.Marshal(r.Indices)
			if err != nil {
				return err
			}
			indices = data
		}

		args = append(args, []any{r.RunId, r.DocId, r.Title, r.Label, r.Err, r.Created, indices})
		if len(args) == bulkInsertChunkSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if len(args) > 0 {
		if err := flush(); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Info().Int("records", len(recs)).Float64("durationSec", time.Since(t0).Seconds()).Msg("records exported")
	return nil
}

func (s *RecordStore) Runs() ([]storage.Run, error) {
	rows, err := s.db.Query(context.Background(), fmt.Sprintf(
		`SELECT run_id, MIN(created), COUNT(*), COUNT(*) FILTER (WHERE error <> '')
		FROM %s GROUP BY run_id ORDER BY MIN(created) DESC, run_id`,
		pgx.Identifier{s.table}.Sanitize(),
	))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []storage.Run
	for rows.Next() {
		var r storage.Run
		if err := rows.Scan(&r.Id, &r.Created, &r.Records, &r.Failed); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *RecordStore) Records(runId string) ([]storage.Record, error) {
	rows, err := s.db.Query(context.Background(), fmt.Sprintf(
		`SELECT doc_id, title, label, error, created, indices::text
		FROM %s WHERE run_id = $1 ORDER BY doc_id`,
		pgx.Identifier{s.table}.Sanitize(),
	), runId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []storage.Record
	for rows.Next() {
		r := storage.Record{RunId: runId}
		var indices *string
		if err := rows.Scan(&r.DocId, &r.Title, &r.Label, &r.Err, &r.Created, &indices); err != nil {
			return nil, err
		}
		if indices != nil {
			var m index.Map
			if err := json.Unmarshal([]byte(*indices), &m); err != nil {
				return nil, fmt.Errorf("JSON decoding error: %w", err)
			}
			r.Indices = m
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("run not found: %s", runId)
	}
	return recs, nil
}
