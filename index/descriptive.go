package index

import (
	"fmt"
	"unicode/utf8"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/stat"
)

// Descriptive computes the counts and the length statistics of paragraphs,
// sentences and words.
func Descriptive(doc *analysis.Document) (Map, error) {
	if err := wordCount(doc, "descriptive indices", true); err != nil {
		return nil, err
	}

	m := Map{
		DESPC: float64(len(doc.Paragraphs)),
		DESSC: float64(len(doc.Sentences)),
		DESWC: float64(len(doc.Lexical.Words)),
	}

	samples := []struct {
		mean, std string
		sample    []float64
	}{
		{DESPL, DESPLd, ParagraphLengths(doc)},
		{DESSL, DESSLd, SentenceLengths(doc)},
		{DESWLlt, DESWLltd, WordLengths(doc)},
		{DESWLsy, DESWLsyd, stat.Ints(doc.Syllables.Counts())},
	}
	for _, s := range samples {
		r, err := stat.Describe(s.sample, stat.All)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.mean, err)
		}
		m[s.mean] = r.Mean
		m[s.std] = r.Std
	}

	return m, nil
}

// ParagraphLengths returns the number of sentences of every paragraph.
func ParagraphLengths(doc *analysis.Document) []float64 {
	l := make([]float64, len(doc.Paragraphs))
	for i, p := range doc.Paragraphs {
		l[i] = float64(len(p.Sentences))
	}
	return l
}

// SentenceLengths returns the number of words of every sentence.
func SentenceLengths(doc *analysis.Document) []float64 {
	l := make([]float64, len(doc.Lexical.Sentences))
	for i, s := range doc.Lexical.Sentences {
		l[i] = float64(len(s.Words))
	}
	return l
}

// WordLengths returns the number of letters of every word.
func WordLengths(doc *analysis.Document) []float64 {
	l := make([]float64, len(doc.Lexical.Words))
	for i, w := range doc.Lexical.Words {
		l[i] = float64(utf8.RuneCountInString(w.Text))
	}
	return l
}

// wordCount checks the annotations a word count based reducer needs.
func wordCount(doc *analysis.Document, name string, syllables bool) error {
	if doc == nil || doc.Lexical == nil {
		return fmt.Errorf("%s need lexical annotations: %w", name, errs.ErrMissingDependency)
	}
	if syllables && doc.Syllables == nil {
		return fmt.Errorf("%s need syllables: %w", name, errs.ErrMissingDependency)
	}
	if len(doc.Lexical.Words) == 0 {
		return fmt.Errorf("%s: text has no words: %w", name, errs.ErrEmptyInput)
	}
	return nil
}
