package index

import (
	"errors"
	"fmt"
	"math"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/errs"
	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/stat"
)

const incidence = 1000

// PatternDensity computes the noun phrase, verb phrase and negation
// densities per 1000 words.
func PatternDensity(doc *analysis.Document) (Map, error) {
	if err := phrases(doc, "syntactic pattern density"); err != nil {
		return nil, err
	}

	wc := float64(len(doc.Lexical.Words))
	return Map{
		DRNP:  float64(len(doc.Phrases.NounPhrases)) / wc * incidence,
		DRVP:  float64(len(doc.Phrases.VerbPhrases)) / wc * incidence,
		DRNEG: float64(len(doc.Phrases.Negations)) / wc * incidence,
	}, nil
}

// SyntacticComplexity computes the mean adjectives per noun phrase and the
// mean words before the main verb of a sentence. A text without noun
// phrases has an undefined SYNNP.
func SyntacticComplexity(doc *analysis.Document) (Map, error) {
	if err := phrases(doc, "syntactic complexity"); err != nil {
		return nil, err
	}

	modifiers := make([]float64, len(doc.Phrases.NounPhrases))
	for i, np := range doc.Phrases.NounPhrases {
		for _, t := range doc.Tokens[np.Start:np.End] {
			if t.Pos == sent.Adj {
				modifiers[i]++
			}
		}
	}

	m := Map{}
	r, err := stat.Describe(modifiers, stat.Mean)
	switch {
	case errors.Is(err, errs.ErrUndefinedStatistic):
		m[SYNNP] = math.NaN()
	case err != nil:
		return nil, err
	default:
		m[SYNNP] = r.Mean
	}

	r, err = stat.Describe(WordsBeforeMainVerb(doc), stat.Mean)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SYNLE, err)
	}
	m[SYNLE] = r.Mean

	return m, nil
}

// WordsBeforeMainVerb returns, for every sentence, the number of words
// before its root verb, or all of its words when there is none.
func WordsBeforeMainVerb(doc *analysis.Document) []float64 {
	counts := make([]float64, len(doc.Lexical.Sentences))
	for i, s := range doc.Lexical.Sentences {
		for _, w := range s.Words {
			if (w.Pos == sent.Verb || w.Pos == sent.Aux) && w.IsRoot() {
				break
			}
			counts[i]++
		}
	}
	return counts
}

func phrases(doc *analysis.Document, name string) error {
	if err := wordCount(doc, name, false); err != nil {
		return err
	}
	if doc.Phrases == nil {
		return fmt.Errorf("%s needs phrase annotations: %w", name, errs.ErrMissingDependency)
	}
	return nil
}
