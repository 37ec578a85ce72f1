package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/cohmetrix/classify"
	"github.com/revelaction/cohmetrix/config"
	"github.com/revelaction/cohmetrix/pipeline"
	"github.com/revelaction/cohmetrix/render"
	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/storage"
)

// input is a text or document to analyze with the id and title it is
// reported under.
type input struct {
	id    int
	title string
	text  string
}

func analyzeCommand(opts AnalyzeOptions, args []string, ui UI) error {
	conf, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	workers, batchSize := runSettings(conf, opts.Workers, opts.BatchSize)

	var c *classify.Classifier
	if opts.Classify {
		if c, err = newClassifier(conf); err != nil {
			return err
		}
	}

	ctx := context.Background()
	p := &Pool{}
	defer p.Close()

	var (
		inputs  []input
		docs    []sent.Doc
		results []pipeline.Result
	)

	if opts.Docs {
		docs, err = loadDocs(p, opts.DocPath, opts.Label, args)
		if err != nil {
			return err
		}
		for _, d := range docs {
			inputs = append(inputs, input{id: d.Id, title: d.Title})
		}
	} else {
		inputs, err = readInputs(args, ui)
		if err != nil {
			return err
		}
	}

	bar, stop := progressBar(len(inputs), opts.NoProgress, ui)
	a, err := newAnalyzer(conf, !opts.Docs, pipeline.WithProgress(func(done, total int) {
		if bar != nil {
			bar.Incr()
		}
	}))
	if err != nil {
		stop()
		return err
	}

	t0 := time.Now()
	if opts.Docs {
		results, err = a.AnalyzeDocs(ctx, docs, workers, batchSize)
	} else {
		texts := make([]string, len(inputs))
		for i, in := range inputs {
			texts[i] = in.text
		}
		results, err = a.Analyze(ctx, texts, workers, batchSize)
	}
	stop()
	if err != nil {
		return err
	}
	log.Debug().Int("texts", len(inputs)).Float64("durationSec", time.Since(t0).Seconds()).Msg("analysis done")

	reports := make([]render.Report, len(results))
	for i, r := range results {
		reports[i] = render.Report{Id: inputs[i].id, Title: inputs[i].title}
		if r.Err != nil {
			reports[i].Error = r.Err.Error()
			continue
		}
		reports[i].Indices = r.Indices

		if c != nil {
			label, err := c.Classify(r.Indices)
			if err != nil {
				log.Warn().Err(err).Str("title", inputs[i].title).Msg("classification failed")
				continue
			}
			reports[i].Label = label
		}
	}

	if opts.DbPath != "" || opts.Postgres {
		if err := storeRecords(ctx, conf, opts, reports, ui); err != nil {
			return err
		}
	}

	r, err := render.New(opts.Format, ui.Out, !opts.NoColor)
	if err != nil {
		return err
	}
	if tr, ok := r.(*render.TextRenderer); ok {
		tr.Describe = opts.Describe
	}
	return r.Render(reports)
}

// runSettings resolves workers and batch size: flags override config.
func runSettings(conf *config.Conf, workers, batchSize optionalInt) (int, int) {
	w, b := *conf.Workers, conf.BatchSize
	if workers.value != nil {
		w = *workers.value
	}
	if batchSize.value != nil {
		b = *batchSize.value
	}
	return w, b
}

// readInputs reads the files, or standard input when there are none.
func readInputs(files []string, ui UI) ([]input, error) {
	if len(files) == 0 {
		b, err := io.ReadAll(ui.In)
		if err != nil {
			return nil, fmt.Errorf("IO error: %w", err)
		}
		return []input{{id: 0, title: "stdin", text: string(b)}}, nil
	}

	inputs := make([]input, len(files))
	for i, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("IO error: %w", err)
		}
		inputs[i] = input{id: i, title: filepath.Base(f), text: string(b)}
	}
	return inputs, nil
}

// loadDocs reads the documents of ids, or all documents matching label.
func loadDocs(p *Pool, docPath, label string, ids []string) ([]sent.Doc, error) {
	repo, err := NewDocRepository(p, docPath)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		list, err := repo.List(label)
		if err != nil {
			return nil, err
		}
		for _, d := range list {
			ids = append(ids, strconv.Itoa(d.Id))
		}
	}

	docs := make([]sent.Doc, 0, len(ids))
	for _, s := range ids {
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid doc id: %s", s)
		}
		d, err := repo.Read(id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// progressBar renders on ui.Err when there is more than one text. The
// returned function stops the rendering.
func progressBar(total int, disabled bool, ui UI) (*uiprogress.Bar, func()) {
	if disabled || total < 2 {
		return nil, func() {}
	}

	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	bar := progress.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	return bar, progress.Stop
}

func storeRecords(ctx context.Context, conf *config.Conf, opts AnalyzeOptions, reports []render.Report, ui UI) error {
	// the records database may differ from the docs database
	p := &Pool{}
	defer p.Close()

	repo, closeRepo, err := NewRecordRepository(ctx, p, conf, opts.DbPath, opts.Postgres)
	if err != nil {
		return err
	}
	defer closeRepo()

	runId := uuid.NewString()
	created := time.Now()
	recs := make([]storage.Record, len(reports))
	for i, rep := range reports {
		recs[i] = storage.Record{
			RunId:   runId,
			DocId:   rep.Id,
			Title:   rep.Title,
			Indices: rep.Indices,
			Label:   rep.Label,
			Err:     rep.Error,
			Created: created,
		}
	}

	if err := repo.WriteRecords(recs); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ui.Err, "🏃 run %s: %d records\n", runId, len(recs))
	return nil
}
