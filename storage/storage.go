package storage

import (
	"time"

	"github.com/revelaction/cohmetrix/index"
	sent "github.com/revelaction/cohmetrix/sentence"
)

// DocReader defines read operations for pre-annotated document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// If labelMatch is not empty, only documents with at least one label containing the string are returned.
	// Content (Paragraphs) is not loaded.
	List(labelMatch string) ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)

	// Labels returns all unique labels found across all documents, sorted alphabetically.
	// If pattern is not empty, it returns labels that contain the pattern.
	Labels(pattern string) ([]string, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and returns its id
	Write(doc sent.Doc) (int, error)
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Record is the analysis outcome of one document in a run.
type Record struct {
	RunId   string
	DocId   int
	Title   string
	Indices index.Map
	Label   string
	Err     string
	Created time.Time
}

// Run summarizes the records sharing a run id.
type Run struct {
	Id      string
	Created time.Time
	Records int
	Failed  int
}

// RecordWriter defines write operations for analysis records
type RecordWriter interface {
	// WriteRecords persists the records in one transaction
	WriteRecords(recs []Record) error
}

// RecordReader defines read operations for analysis records
type RecordReader interface {
	// Runs returns all runs, the most recent first
	Runs() ([]Run, error)

	// Records returns the records of a run ordered by doc id
	Records(runId string) ([]Record, error)
}

// RecordRepository combines read and write operations
type RecordRepository interface {
	RecordReader
	RecordWriter
}
