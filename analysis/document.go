// Package analysis builds the annotated document the index reducers work on.
//
// A Document is created by Segment (or FromDoc for pre-annotated input) and
// then annotated in a fixed order: AnnotateLexical, Syllabify, Tag and
// AnnotateCohesion. Each stage fills one annotation struct and refuses to
// run when the struct it depends on is missing.
package analysis

import (
	"github.com/revelaction/cohmetrix/lexicon"
	"github.com/revelaction/cohmetrix/match"
	sent "github.com/revelaction/cohmetrix/sentence"
)

// Document is the aggregate of one analyzed text.
type Document struct {
	Text string

	// Tokens holds every token of the text. Token Ids and Heads are
	// positions in this slice.
	Tokens []sent.Token

	Paragraphs []Paragraph

	// Sentences holds the non-blank sentences in document order.
	Sentences []Sentence

	// Chunks are the noun chunks reported (or derived) per paragraph, in
	// document token positions.
	Chunks []sent.Chunk

	Lexical   *LexicalAnnotations
	Syllables *SyllableAnnotations
	Phrases   *PhraseAnnotations
	Cohesion  *CohesionAnnotations
}

// Paragraph is a token range of the document and the sentences it holds.
type Paragraph struct {
	Text string

	// Start and End delimit the paragraph tokens in Document.Tokens.
	Start, End int

	// Sentences are indexes into Document.Sentences.
	Sentences []int
}

// Sentence is a token range [Start, End) of Document.Tokens.
type Sentence struct {
	Paragraph  int
	Start, End int
}

// SentenceTokens returns the tokens of the sentence at i.
func (d *Document) SentenceTokens(i int) []sent.Token {
	s := d.Sentences[i]
	return d.Tokens[s.Start:s.End]
}

// ParagraphTokens returns the tokens of the paragraph at i.
func (d *Document) ParagraphTokens(i int) []sent.Token {
	p := d.Paragraphs[i]
	return d.Tokens[p.Start:p.End]
}

// LexicalAnnotations is the output of AnnotateLexical.
type LexicalAnnotations struct {
	// Sentences is aligned with Document.Sentences.
	Sentences []SentenceWords

	// Words and ContentWords concatenate the sentence lists in order.
	Words        []sent.Token
	ContentWords []sent.Token

	DistinctWords        int
	DistinctContentWords int
}

// SentenceWords holds the word lists of one sentence.
type SentenceWords struct {
	Words        []sent.Token
	ContentWords []sent.Token

	Nouns      []sent.Token
	Verbs      []sent.Token
	Adjectives []sent.Token
	Adverbs    []sent.Token
	Pronouns   []sent.Token

	// PronounsByPerson buckets the pronouns by person (1..3) and number.
	PronounsByPerson map[PersonNumber][]sent.Token
}

// PersonNumber is a person × number pronoun bucket.
type PersonNumber struct {
	Person int
	Plural bool
}

// SyllableAnnotations is the output of Syllabify.
type SyllableAnnotations struct {
	// Words is aligned with LexicalAnnotations.Words.
	Words [][]string
}

// Counts returns the syllable count of every word.
func (s *SyllableAnnotations) Counts() []int {
	counts := make([]int, len(s.Words))
	for i, w := range s.Words {
		counts[i] = len(w)
	}
	return counts
}

// PhraseAnnotations is the output of Tag. All spans are in document token
// positions and free of overlaps within each category.
type PhraseAnnotations struct {
	NounPhrases []match.Span
	VerbPhrases []match.Span
	Negations   []match.Span
	Connectives map[lexicon.Class][]match.Span
}

// CohesionAnnotations is the output of AnnotateCohesion.
type CohesionAnnotations struct {
	// Sentences is aligned with Document.Sentences.
	Sentences []CohesionSets
}

// Set is a set of lowercased forms.
type Set map[string]struct{}

// Has reports whether s contains v.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// CohesionSets are the distinct forms of one sentence used by the
// referential cohesion reducer.
type CohesionSets struct {
	Nouns             Set
	NounLemmas        Set
	ContentWords      Set
	ContentWordLemmas Set
	Pronouns          Set
	PersonalPronouns  Set
}
