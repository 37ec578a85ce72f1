package analysis

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/revelaction/cohmetrix/errs"
	sent "github.com/revelaction/cohmetrix/sentence"
)

var contentPos = map[string]bool{
	sent.Propn: true,
	sent.Noun:  true,
	sent.Verb:  true,
	sent.Adj:   true,
	sent.Adv:   true,
	sent.Aux:   true,
}

// IsWord reports whether every character of the token text is a letter.
func IsWord(t sent.Token) bool {
	text := norm.NFC.String(t.Text)
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsContentWord reports whether the token is a word with a content POS.
func IsContentWord(t sent.Token) bool {
	return IsWord(t) && contentPos[t.Pos]
}

// Normalize returns the form used to compare words.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AnnotateLexical classifies the words of every sentence.
func AnnotateLexical(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("lexical annotation: %w", errs.ErrMissingDependency)
	}

	lex := &LexicalAnnotations{Sentences: make([]SentenceWords, len(doc.Sentences))}
	distinct := map[string]bool{}
	distinctContent := map[string]bool{}

	for i := range doc.Sentences {
		sw := sentenceWords(doc.SentenceTokens(i))
		lex.Sentences[i] = sw

		lex.Words = append(lex.Words, sw.Words...)
		lex.ContentWords = append(lex.ContentWords, sw.ContentWords...)
		for _, w := range sw.Words {
			distinct[Normalize(w.Text)] = true
		}
		for _, w := range sw.ContentWords {
			distinctContent[Normalize(w.Text)] = true
		}
	}

	lex.DistinctWords = len(distinct)
	lex.DistinctContentWords = len(distinctContent)
	doc.Lexical = lex
	return nil
}

func sentenceWords(tokens []sent.Token) SentenceWords {
	sw := SentenceWords{PronounsByPerson: map[PersonNumber][]sent.Token{}}
	for _, t := range tokens {
		if !IsWord(t) {
			continue
		}
		sw.Words = append(sw.Words, t)
		if contentPos[t.Pos] {
			sw.ContentWords = append(sw.ContentWords, t)
		}

		switch {
		case t.Pos == sent.Noun || t.Pos == sent.Propn:
			sw.Nouns = append(sw.Nouns, t)
		case t.Pos == sent.Verb || (t.Pos == sent.Aux && t.HasVerbForm()):
			sw.Verbs = append(sw.Verbs, t)
		case t.Pos == sent.Adj:
			sw.Adjectives = append(sw.Adjectives, t)
		case t.Pos == sent.Adv:
			sw.Adverbs = append(sw.Adverbs, t)
		case t.Pos == sent.Pron:
			sw.Pronouns = append(sw.Pronouns, t)
			if pn, ok := personNumber(t); ok {
				sw.PronounsByPerson[pn] = append(sw.PronounsByPerson[pn], t)
			}
		}
	}
	return sw
}

func personNumber(t sent.Token) (PersonNumber, bool) {
	var pn PersonNumber
	switch {
	case t.HasFeature("Number=Sing"):
	case t.HasFeature("Number=Plur"):
		pn.Plural = true
	default:
		return pn, false
	}

	for p := 1; p <= 3; p++ {
		if t.HasFeature(fmt.Sprintf("Person=%d", p)) {
			pn.Person = p
			return pn, true
		}
	}
	return pn, false
}
