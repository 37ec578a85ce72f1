// Package pipeline runs the analysis stages and the reducers over batches of
// texts.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/classify"
	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/index"
	"github.com/revelaction/cohmetrix/lexicon"
	"github.com/revelaction/cohmetrix/preprocess"
	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/syllable"
)

// AllWorkers asks for one worker per CPU.
const AllWorkers = -1

// Result is the outcome of the analysis of one text: either the indices or
// the error that stopped it.
type Result struct {
	Indices index.Map
	Err     error
}

// Analyzer computes the indices of texts. It holds no per text state and
// may be used concurrently.
type Analyzer struct {
	segmenter  *analysis.Segmenter
	tagger     *analysis.Tagger
	hyphenator syllable.Hyphenator
	preprocess preprocess.Func
	progress   func(done, total int)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDelimiter sets the paragraph delimiter.
func WithDelimiter(d string) Option {
	return func(a *Analyzer) { a.segmenter.Delimiter = d }
}

// WithMaxLength sets the maximum number of characters of a text.
func WithMaxLength(n int) Option {
	return func(a *Analyzer) { a.segmenter.MaxLength = n }
}

// WithHyphenator replaces the default syllabifier.
func WithHyphenator(h syllable.Hyphenator) Option {
	return func(a *Analyzer) { a.hyphenator = h }
}

// WithPreprocess sets the function applied to every text before parsing.
func WithPreprocess(f preprocess.Func) Option {
	return func(a *Analyzer) { a.preprocess = f }
}

// WithProgress registers a function called after every analyzed text. It
// may be called from several goroutines.
func WithProgress(f func(done, total int)) Option {
	return func(a *Analyzer) { a.progress = f }
}

// New returns an Analyzer parsing with p for the given language.
func New(p analysis.Parser, language string, opts ...Option) (*Analyzer, error) {
	lang, err := lexicon.Get(language)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		segmenter:  analysis.NewSegmenter(p),
		tagger:     analysis.NewTagger(lang),
		hyphenator: syllable.NewSpanish(),
		preprocess: preprocess.Identity,
	}
	for _, o := range opts {
		o(a)
	}

	if a.segmenter.Delimiter == "" {
		return nil, fmt.Errorf("empty paragraph delimiter: %w", errs.ErrInvalidConfiguration)
	}
	return a, nil
}

// Workers validates a worker count and resolves AllWorkers.
func Workers(n int) (int, error) {
	switch {
	case n == AllWorkers:
		return runtime.NumCPU(), nil
	case n > 0:
		return n, nil
	}
	return 0, fmt.Errorf("worker count %d, want -1 or a positive number: %w", n, errs.ErrInvalidConfiguration)
}

// AnalyzeText computes the indices of a single text.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (index.Map, error) {
	t0 := time.Now()

	text, err := a.preprocess(text)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	doc, err := a.segmenter.Segment(ctx, text)
	if err != nil {
		return nil, err
	}

	m, err := a.run(doc)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("paragraphs", len(doc.Paragraphs)).
		Int("sentences", len(doc.Sentences)).
		Float64("durationSec", time.Since(t0).Seconds()).
		Msg("text analyzed")
	return m, nil
}

// AnalyzeDoc computes the indices of an already parsed document.
func (a *Analyzer) AnalyzeDoc(d sent.Doc) (index.Map, error) {
	doc, err := analysis.FromDoc(d, a.segmenter.MaxLength)
	if err != nil {
		return nil, err
	}
	return a.run(doc)
}

// run annotates doc in stage order and reduces it.
func (a *Analyzer) run(doc *analysis.Document) (index.Map, error) {
	if err := analysis.AnnotateLexical(doc); err != nil {
		return nil, err
	}
	if err := analysis.Syllabify(doc, a.hyphenator); err != nil {
		return nil, err
	}
	if err := a.tagger.Tag(doc); err != nil {
		return nil, err
	}
	if err := analysis.AnnotateCohesion(doc); err != nil {
		return nil, err
	}
	return index.Compute(doc)
}

// Analyze computes the indices of texts with up to workers concurrent
// workers, each taking batchSize texts at a time. Results are in input
// order. A failing text only fails its own Result; the returned error is
// for invalid arguments or a cancelled context.
func (a *Analyzer) Analyze(ctx context.Context, texts []string, workers, batchSize int) ([]Result, error) {
	return a.batch(ctx, len(texts), workers, batchSize, func(i int) (index.Map, error) {
		return a.AnalyzeText(ctx, texts[i])
	})
}

// AnalyzeDocs is Analyze for already parsed documents.
func (a *Analyzer) AnalyzeDocs(ctx context.Context, docs []sent.Doc, workers, batchSize int) ([]Result, error) {
	return a.batch(ctx, len(docs), workers, batchSize, func(i int) (index.Map, error) {
		return a.AnalyzeDoc(docs[i])
	})
}

func (a *Analyzer) batch(ctx context.Context, n, workers, batchSize int, analyze func(i int) (index.Map, error)) ([]Result, error) {
	w, err := Workers(workers)
	if err != nil {
		return nil, err
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size %d, want a positive number: %w", batchSize, errs.ErrInvalidConfiguration)
	}

	results := make([]Result, n)
	done := make(chan struct{}, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w)

	reported := make(chan struct{})
	go func() {
		defer close(reported)
		a.report(done, n)
	}()

	for start := 0; start < n; start += batchSize {
		start, end := start, min(start+batchSize, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}

				m, err := analyze(i)
				if err != nil {
					log.Warn().Err(err).Int("text", i).Msg("analysis failed")
					results[i] = Result{Err: err}
				} else {
					results[i] = Result{Indices: m}
				}
				done <- struct{}{}
			}
			return nil
		})
	}

	err = g.Wait()
	close(done)
	<-reported
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (a *Analyzer) report(done <-chan struct{}, total int) {
	count := 0
	for range done {
		count++
		if a.progress != nil {
			a.progress(count, total)
		}
	}
}

// Classify analyzes text and returns the category assigned by c.
func (a *Analyzer) Classify(ctx context.Context, text string, workers int, c *classify.Classifier) (string, error) {
	if c == nil {
		return "", fmt.Errorf("no classifier: %w", errs.ErrMissingDependency)
	}

	results, err := a.Analyze(ctx, []string{text}, workers, 1)
	if err != nil {
		return "", err
	}
	if results[0].Err != nil {
		return "", results[0].Err
	}

	return c.Classify(results[0].Indices)
}
