package index

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/errs"
	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/stat"
)

// Pair is an ordered pair of sentence indexes.
type Pair struct {
	Prev, Cur int
}

// AdjacentPairs yields the pairs of consecutive sentences of a text with n
// sentences.
func AdjacentPairs(n int) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i := 1; i < n; i++ {
			if !yield(Pair{Prev: i - 1, Cur: i}) {
				return
			}
		}
	}
}

// AllPairs yields every pair i < j of a text with n sentences.
func AllPairs(n int) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !yield(Pair{Prev: i, Cur: j}) {
					return
				}
			}
		}
	}
}

// Overlap measures how much the current sentence of a pair refers back to
// the previous one.
type Overlap func(doc *analysis.Document, p Pair) float64

func binary(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// NounOverlap is 1 when a noun of cur appears among the nouns of prev.
func NounOverlap(doc *analysis.Document, p Pair) float64 {
	prev := doc.Cohesion.Sentences[p.Prev]
	for _, w := range doc.Lexical.Sentences[p.Cur].Words {
		if w.Pos == sent.Noun && prev.Nouns.Has(analysis.Normalize(w.Text)) {
			return 1
		}
	}
	return 0
}

// ArgumentOverlap is 1 when cur shares a noun lemma or a personal pronoun
// with prev.
func ArgumentOverlap(doc *analysis.Document, p Pair) float64 {
	prev := doc.Cohesion.Sentences[p.Prev]
	for _, w := range doc.Lexical.Sentences[p.Cur].Words {
		if w.Pos == sent.Noun && prev.NounLemmas.Has(analysis.Normalize(w.Lemma)) {
			return 1
		}
		if w.IsPersonalPronoun() && prev.PersonalPronouns.Has(analysis.Normalize(w.Text)) {
			return 1
		}
	}
	return 0
}

// StemOverlap is 1 when the lemma of a noun of cur is the lemma of a
// content word of prev.
func StemOverlap(doc *analysis.Document, p Pair) float64 {
	prev := doc.Cohesion.Sentences[p.Prev]
	for _, w := range doc.Lexical.Sentences[p.Cur].Words {
		if (w.Pos == sent.Noun || w.Pos == sent.Propn) && prev.ContentWordLemmas.Has(analysis.Normalize(w.Lemma)) {
			return 1
		}
	}
	return 0
}

// ContentWordOverlap is the proportion of shared content words of the pair.
func ContentWordOverlap(doc *analysis.Document, p Pair) float64 {
	prev := doc.Cohesion.Sentences[p.Prev]
	cur := doc.Lexical.Sentences[p.Cur].ContentWords

	matches := 0
	for _, w := range cur {
		if prev.ContentWords.Has(analysis.Normalize(w.Text)) {
			matches++
		}
	}

	total := len(doc.Lexical.Sentences[p.Prev].ContentWords) + len(cur)
	if total == 0 {
		return 0
	}
	return float64(2*matches) / float64(total)
}

// AnaphoreOverlap is 1 when a pronoun of cur appears among the pronouns of
// prev.
func AnaphoreOverlap(doc *analysis.Document, p Pair) float64 {
	prev := doc.Cohesion.Sentences[p.Prev]
	for _, w := range doc.Lexical.Sentences[p.Cur].Words {
		if w.Pos == sent.Pron && prev.Pronouns.Has(analysis.Normalize(w.Text)) {
			return 1
		}
	}
	return 0
}

type cohesionIndex struct {
	overlap   Overlap
	adjacent  string
	all       string
	adjacentD string
	allD      string
}

var cohesionIndices = []cohesionIndex{
	{overlap: NounOverlap, adjacent: CRFNO1, all: CRFNOa},
	{overlap: ArgumentOverlap, adjacent: CRFAO1, all: CRFAOa},
	{overlap: StemOverlap, adjacent: CRFSO1, all: CRFSOa},
	{overlap: ContentWordOverlap, adjacent: CRFCWO1, all: CRFCWOa, adjacentD: CRFCWO1d, allD: CRFCWOad},
	{overlap: AnaphoreOverlap, adjacent: CRFANP1, all: CRFANPa},
}

// ReferentialCohesion computes the overlap indices over adjacent and over
// all sentence pairs. Without pairs the indices are undefined (NaN).
func ReferentialCohesion(doc *analysis.Document) (Map, error) {
	if doc == nil || doc.Lexical == nil || doc.Cohesion == nil {
		return nil, fmt.Errorf("referential cohesion needs cohesion annotations: %w", errs.ErrMissingDependency)
	}

	n := len(doc.Cohesion.Sentences)
	adjacent, all := AdjacentPairs(n), AllPairs(n)

	m := Map{}
	for _, ci := range cohesionIndices {
		if err := reducePairs(m, doc, ci.overlap, adjacent, ci.adjacent, ci.adjacentD); err != nil {
			return nil, err
		}
		if err := reducePairs(m, doc, ci.overlap, all, ci.all, ci.allD); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func reducePairs(m Map, doc *analysis.Document, o Overlap, pairs iter.Seq[Pair], mean, std string) error {
	var acc stat.Running
	for p := range pairs {
		acc.Add(o(doc, p))
	}

	r, err := acc.Result(stat.All)
	if errors.Is(err, errs.ErrUndefinedStatistic) {
		r = stat.Result{Mean: math.NaN(), Std: math.NaN()}
	} else if err != nil {
		return err
	}

	m[mean] = r.Mean
	if std != "" {
		m[std] = r.Std
	}
	return nil
}
