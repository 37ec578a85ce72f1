package analysis

import (
	"fmt"
	"strings"

	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/lexicon"
	"github.com/revelaction/cohmetrix/match"
	sent "github.com/revelaction/cohmetrix/sentence"
)

// Span labels.
const (
	NounPhraseLabel = "noun phrase"
	VerbPhraseLabel = "verb phrase"
	NegationLabel   = "negation"
)

// Tagger finds phrases, negations and connectives. It holds only read only
// matchers and may be shared by concurrent analyses.
type Tagger struct {
	language    *lexicon.Language
	connectives map[lexicon.Class]*match.PhraseMatcher
	verbPhrase  *match.Matcher
	negation    *match.Matcher
}

// NewTagger builds the matchers for lang.
func NewTagger(lang *lexicon.Language) *Tagger {
	t := &Tagger{
		language:    lang,
		connectives: make(map[lexicon.Class]*match.PhraseMatcher, len(lang.Connectives)),
	}

	for _, c := range lexicon.Classes() {
		t.connectives[c] = match.NewPhraseMatcher(string(c)+" connective", lang.Connectives[c])
	}

	verbs := match.PosIn(sent.Aux, sent.Verb)
	t.verbPhrase = match.NewMatcher(VerbPhraseLabel,
		match.Step{Test: verbs, Op: match.OneOrMore},
		match.Step{Test: match.PosIn(sent.Adp, sent.Sconj, sent.Conj, sent.Intj), Op: match.ZeroOrMore},
		match.Step{Test: match.PosIn(sent.Adp), Op: match.ZeroOrMore},
		match.Step{Test: verbs, Op: match.OneOrMore},
	)

	negations := map[string]bool{}
	for _, n := range lang.Negation {
		negations[n] = true
	}
	t.negation = match.NewMatcher(NegationLabel, match.Step{
		Test: func(tok sent.Token) bool {
			return tok.Pos == sent.Adv && negations[strings.ToLower(tok.Text)]
		},
		Op: match.One,
	})

	return t
}

// Language returns the language of the lexicons.
func (t *Tagger) Language() *lexicon.Language {
	return t.language
}

// Tag annotates the phrases of doc. Matching runs paragraph by paragraph so
// no span crosses a paragraph boundary.
func (t *Tagger) Tag(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("phrase tagging: %w", errs.ErrMissingDependency)
	}

	var nouns, verbs, negs []match.Span
	conns := map[lexicon.Class][]match.Span{}

	for i, p := range doc.Paragraphs {
		tokens := doc.ParagraphTokens(i)
		if len(tokens) == 0 {
			continue
		}

		verbs = append(verbs, match.Shift(t.verbPhrase.Match(tokens), p.Start)...)
		negs = append(negs, match.Shift(t.negation.Match(tokens), p.Start)...)
		for c, m := range t.connectives {
			conns[c] = append(conns[c], match.Shift(m.Match(tokens), p.Start)...)
		}
		nouns = append(nouns, nounPhraseCandidates(doc, p, tokens)...)
	}

	pa := &PhraseAnnotations{
		NounPhrases: match.Filter(nouns),
		VerbPhrases: match.Filter(verbs),
		Negations:   match.Filter(negs),
		Connectives: make(map[lexicon.Class][]match.Span, len(conns)),
	}
	for _, c := range lexicon.Classes() {
		pa.Connectives[c] = match.Filter(conns[c])
	}

	doc.Phrases = pa
	return nil
}

// nounPhraseCandidates returns, for every noun chunk of the paragraph, the
// chunk itself and the full subtree span of its root.
func nounPhraseCandidates(doc *Document, p Paragraph, tokens []sent.Token) []match.Span {
	var tree *sent.Tree
	var spans []match.Span
	for _, c := range doc.Chunks {
		if c.Start < p.Start || c.End > p.End {
			continue
		}
		if tree == nil {
			tree = sent.NewTree(tokens)
		}

		start, end := c.Start-p.Start, c.End-p.Start
		root := tree.Root(start, end)
		spans = append(spans,
			match.Span{Start: c.Start, End: c.End, Label: NounPhraseLabel},
			match.Span{Start: p.Start + tree.LeftEdge(root), End: p.Start + tree.RightEdge(root) + 1, Label: NounPhraseLabel},
		)
	}
	return spans
}
