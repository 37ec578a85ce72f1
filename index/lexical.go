package index

import (
	"fmt"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/errs"
)

// LexicalDiversity computes the type-token ratios of all words and of
// content words. A ratio over no tokens is 0.
func LexicalDiversity(doc *analysis.Document) (Map, error) {
	if doc == nil || doc.Lexical == nil {
		return nil, fmt.Errorf("lexical diversity needs lexical annotations: %w", errs.ErrMissingDependency)
	}

	lex := doc.Lexical
	return Map{
		LDTTRa:  ratio(lex.DistinctWords, len(lex.Words)),
		LDTTRcw: ratio(lex.DistinctContentWords, len(lex.ContentWords)),
	}, nil
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
