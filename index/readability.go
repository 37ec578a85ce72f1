package index

import (
	"fmt"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/stat"
)

// Readability computes the Fernández-Huerta index as
// 206.84 - 0.60 * DESWLsy - 1.02 * DESSL.
func Readability(doc *analysis.Document) (Map, error) {
	if err := wordCount(doc, "readability indices", true); err != nil {
		return nil, err
	}

	syllables, err := stat.Describe(stat.Ints(doc.Syllables.Counts()), stat.Mean)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RDFHGL, err)
	}
	sentences, err := stat.Describe(SentenceLengths(doc), stat.Mean)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RDFHGL, err)
	}

	return Map{RDFHGL: FernandezHuerta(syllables.Mean, sentences.Mean)}, nil
}

// FernandezHuerta returns the readability of a text with the given mean
// syllables per word and mean words per sentence.
func FernandezHuerta(syllablesPerWord, wordsPerSentence float64) float64 {
	return 206.84 - 0.60*syllablesPerWord - 1.02*wordsPerSentence
}
