package analysis

import (
	"fmt"

	"github.com/revelaction/cohmetrix/errs"
	sent "github.com/revelaction/cohmetrix/sentence"
)

// AnnotateCohesion builds the distinct form sets of every sentence.
func AnnotateCohesion(doc *Document) error {
	if doc == nil || doc.Lexical == nil {
		return fmt.Errorf("cohesion tokenizer needs lexical annotations: %w", errs.ErrMissingDependency)
	}

	ca := &CohesionAnnotations{Sentences: make([]CohesionSets, len(doc.Lexical.Sentences))}
	for i, sw := range doc.Lexical.Sentences {
		ca.Sentences[i] = cohesionSets(sw)
	}

	doc.Cohesion = ca
	return nil
}

func cohesionSets(sw SentenceWords) CohesionSets {
	cs := CohesionSets{
		Nouns:             Set{},
		NounLemmas:        Set{},
		ContentWords:      Set{},
		ContentWordLemmas: Set{},
		Pronouns:          Set{},
		PersonalPronouns:  Set{},
	}

	for _, w := range sw.Words {
		switch w.Pos {
		case sent.Noun:
			cs.Nouns[Normalize(w.Text)] = struct{}{}
			cs.NounLemmas[Normalize(w.Lemma)] = struct{}{}
		case sent.Pron:
			cs.Pronouns[Normalize(w.Text)] = struct{}{}
		}
		if w.IsPersonalPronoun() {
			cs.PersonalPronouns[Normalize(w.Text)] = struct{}{}
		}
	}

	for _, w := range sw.ContentWords {
		cs.ContentWords[Normalize(w.Text)] = struct{}{}
		cs.ContentWordLemmas[Normalize(w.Lemma)] = struct{}{}
	}

	return cs
}
