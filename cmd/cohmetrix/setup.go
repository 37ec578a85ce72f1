package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/revelaction/cohmetrix/annotate/remote"
	"github.com/revelaction/cohmetrix/classify"
	"github.com/revelaction/cohmetrix/config"
	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/pipeline"
	"github.com/revelaction/cohmetrix/preprocess"
	"github.com/revelaction/cohmetrix/storage"
	"github.com/revelaction/cohmetrix/storage/filesystem"
	"github.com/revelaction/cohmetrix/storage/postgres"
	"github.com/revelaction/cohmetrix/storage/sqlite/zombiezen"
)

// NewDocRepository returns the filesystem store for a directory and the
// SQLite store otherwise.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// NewRecordRepository returns the PostgreSQL store when usePostgres is set
// and the SQLite store of dbPath otherwise. The returned function releases
// the PostgreSQL connections.
func NewRecordRepository(ctx context.Context, p *Pool, conf *config.Conf, dbPath string, usePostgres bool) (storage.RecordRepository, func(), error) {
	if usePostgres {
		if !conf.Postgres.IsSet() {
			return nil, nil, fmt.Errorf("postgres not configured in %s: %w", conf.SourcePath(), errs.ErrMissingDependency)
		}
		db, err := postgres.Open(ctx, conf.Postgres)
		if err != nil {
			return nil, nil, err
		}
		s := postgres.NewRecordStore(db, "")
		if err := s.CreateTable(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, db.Close, nil
	}

	pool, err := p.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return zombiezen.NewRecordStore(pool), func() {}, nil
}

// loadConfig reads and validates the configuration file.
func loadConfig(path string) (*config.Conf, error) {
	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.ValidateAndDefaults(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// newAnalyzer builds the analyzer of conf. Without a parser url only
// pre-annotated documents can be analyzed, so it is an error unless
// needParser is false.
func newAnalyzer(conf *config.Conf, needParser bool, opts ...pipeline.Option) (*pipeline.Analyzer, error) {
	pre, err := preprocess.ByName(conf.Preprocess)
	if err != nil {
		return nil, err
	}

	var parser *remote.Parser
	if needParser {
		parser, err = remote.New(conf.Parser.URL, conf.Language, time.Duration(conf.Parser.TimeoutSecs)*time.Second)
		if err != nil {
			return nil, err
		}
	}

	opts = append([]pipeline.Option{
		pipeline.WithDelimiter(conf.ParagraphDelimiter),
		pipeline.WithMaxLength(conf.MaxTextLength),
		pipeline.WithPreprocess(pre),
	}, opts...)

	if parser == nil {
		return pipeline.New(nil, conf.Language, opts...)
	}
	return pipeline.New(parser, conf.Language, opts...)
}

func newClassifier(conf *config.Conf) (*classify.Classifier, error) {
	c := conf.Classifier
	if !c.IsSet() {
		return nil, fmt.Errorf("classifier.modelPath not configured: %w", errs.ErrMissingDependency)
	}
	return classify.Load(c.ModelPath, c.ModelSHA256, c.ScalerPath, c.ScalerSHA256)
}
