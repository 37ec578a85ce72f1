// Package annotatetest provides a deterministic rule based Parser for tests.
//
// Sentences end at '.', '!' or '?'. Words are looked up in a small Spanish
// dictionary; unknown lowercase words are nouns and unknown capitalized words
// after the first position are proper nouns. The first verb of a sentence
// is its root; determiners and adjectives hang from the next noun, every
// other word from the root. Noun chunks are maximal DET/ADJ runs closed by a
// noun, proper noun or pronoun.
package annotatetest

import (
	"context"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	sent "github.com/revelaction/cohmetrix/sentence"
)

// Entry is the dictionary annotation of a word.
type Entry struct {
	Pos   string
	Lemma string
	Morph string
}

const (
	fin = "Mood=Ind|Number=Sing|Person=3|Tense=Pres|VerbForm=Fin"
	inf = "VerbForm=Inf"
)

// Dictionary is the default word list, keyed by lowercase text.
var Dictionary = map[string]Entry{
	"el":  {sent.Det, "el", "Definite=Def|Gender=Masc|Number=Sing|PronType=Art"},
	"la":  {sent.Det, "el", "Definite=Def|Gender=Fem|Number=Sing|PronType=Art"},
	"los": {sent.Det, "el", "Definite=Def|Gender=Masc|Number=Plur|PronType=Art"},
	"las": {sent.Det, "el", "Definite=Def|Gender=Fem|Number=Plur|PronType=Art"},
	"un":  {sent.Det, "uno", "Definite=Ind|Gender=Masc|Number=Sing|PronType=Art"},
	"una": {sent.Det, "uno", "Definite=Ind|Gender=Fem|Number=Sing|PronType=Art"},

	"perro":  {sent.Noun, "perro", "Gender=Masc|Number=Sing"},
	"perros": {sent.Noun, "perro", "Gender=Masc|Number=Plur"},
	"gato":   {sent.Noun, "gato", "Gender=Masc|Number=Sing"},
	"gatos":  {sent.Noun, "gato", "Gender=Masc|Number=Plur"},
	"casa":   {sent.Noun, "casa", "Gender=Fem|Number=Sing"},
	"libro":  {sent.Noun, "libro", "Gender=Masc|Number=Sing"},
	"niño":   {sent.Noun, "niño", "Gender=Masc|Number=Sing"},
	"niña":   {sent.Noun, "niña", "Gender=Fem|Number=Sing"},
	"parque": {sent.Noun, "parque", "Gender=Masc|Number=Sing"},

	"corre":   {sent.Verb, "correr", fin},
	"corren":  {sent.Verb, "correr", "Mood=Ind|Number=Plur|Person=3|Tense=Pres|VerbForm=Fin"},
	"come":    {sent.Verb, "comer", fin},
	"lee":     {sent.Verb, "leer", fin},
	"juega":   {sent.Verb, "jugar", fin},
	"quiere":  {sent.Verb, "querer", fin},
	"correr":  {sent.Verb, "correr", inf},
	"comer":   {sent.Verb, "comer", inf},
	"leer":    {sent.Verb, "leer", inf},
	"jugar":   {sent.Verb, "jugar", inf},
	"es":      {sent.Aux, "ser", fin},
	"está":    {sent.Aux, "estar", fin},
	"ha":      {sent.Aux, "haber", fin},
	"comido":  {sent.Verb, "comer", "Gender=Masc|Number=Sing|Tense=Past|VerbForm=Part"},
	"corrido": {sent.Verb, "correr", "Gender=Masc|Number=Sing|Tense=Past|VerbForm=Part"},

	"grande":  {sent.Adj, "grande", "Number=Sing"},
	"pequeño": {sent.Adj, "pequeño", "Gender=Masc|Number=Sing"},
	"rojo":    {sent.Adj, "rojo", "Gender=Masc|Number=Sing"},
	"negro":   {sent.Adj, "negro", "Gender=Masc|Number=Sing"},

	"también": {sent.Adv, "también", ""},
	"muy":     {sent.Adv, "muy", ""},
	"rápido":  {sent.Adv, "rápido", ""},
	"no":      {sent.Adv, "no", "Polarity=Neg"},
	"nunca":   {sent.Adv, "nunca", "Polarity=Neg"},
	"jamás":   {sent.Adv, "jamás", "Polarity=Neg"},

	"y":       {sent.Cconj, "y", ""},
	"o":       {sent.Cconj, "o", ""},
	"pero":    {sent.Cconj, "pero", ""},
	"porque":  {sent.Sconj, "porque", ""},
	"aunque":  {sent.Sconj, "aunque", ""},
	"que":     {sent.Sconj, "que", ""},
	"en":      {sent.Adp, "en", ""},
	"de":      {sent.Adp, "de", ""},
	"a":       {sent.Adp, "a", ""},
	"con":     {sent.Adp, "con", ""},
	"por":     {sent.Adp, "por", ""},
	"después": {sent.Adv, "después", ""},

	"yo":       {sent.Pron, "yo", "Case=Nom|Number=Sing|Person=1|PronType=Prs"},
	"tú":       {sent.Pron, "tú", "Case=Nom|Number=Sing|Person=2|PronType=Prs"},
	"él":       {sent.Pron, "él", "Case=Nom|Gender=Masc|Number=Sing|Person=3|PronType=Prs"},
	"ella":     {sent.Pron, "él", "Case=Nom|Gender=Fem|Number=Sing|Person=3|PronType=Prs"},
	"nosotros": {sent.Pron, "yo", "Case=Nom|Gender=Masc|Number=Plur|Person=1|PronType=Prs"},
	"vosotros": {sent.Pron, "tú", "Case=Nom|Gender=Masc|Number=Plur|Person=2|PronType=Prs"},
	"ellos":    {sent.Pron, "él", "Case=Nom|Gender=Masc|Number=Plur|Person=3|PronType=Prs"},
	"esto":     {sent.Pron, "este", "Number=Sing|PronType=Dem"},
}

// Parser implements analysis.Parser.
type Parser struct {
	Words map[string]Entry

	calls atomic.Int64
}

// New returns a Parser over a copy of Dictionary.
func New() *Parser {
	words := make(map[string]Entry, len(Dictionary))
	for k, v := range Dictionary {
		words[k] = v
	}
	return &Parser{Words: words}
}

// Calls returns the number of parsed paragraphs.
func (p *Parser) Calls() int {
	return int(p.calls.Load())
}

// word is a token text and its rune offset in the paragraph.
type word struct {
	text string
	idx  int
}

// Parse annotates one paragraph.
func (p *Parser) Parse(ctx context.Context, text string) (sent.Paragraph, error) {
	if err := ctx.Err(); err != nil {
		return sent.Paragraph{}, err
	}
	p.calls.Add(1)

	para := sent.Paragraph{Text: text, Chunks: []sent.Chunk{}}
	offset := 0
	for si, ws := range split(text) {
		tokens := p.annotate(ws, offset, si)
		para.Chunks = append(para.Chunks, chunks(tokens, offset)...)
		para.Sentences = append(para.Sentences, tokens)
		offset += len(tokens)
	}
	return para, nil
}

// split tokenizes text into sentences of words and punctuation.
func split(text string) [][]word {
	var sentences [][]word
	var cur []word

	start := -1
	flushWord := func(end int) {
		if start >= 0 {
			cur = append(cur, word{text: text[start:end], idx: utf8.RuneCountInString(text[:start])})
			start = -1
		}
	}

	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			flushWord(i)
		case unicode.IsPunct(r):
			flushWord(i)
			cur = append(cur, word{text: string(r), idx: utf8.RuneCountInString(text[:i])})
			if r == '.' || r == '!' || r == '?' {
				sentences = append(sentences, cur)
				cur = nil
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flushWord(len(text))
	if len(cur) > 0 {
		sentences = append(sentences, cur)
	}
	return sentences
}

func (p *Parser) annotate(ws []word, offset, sid int) []sent.Token {
	tokens := make([]sent.Token, len(ws))
	for i, w := range ws {
		lower := strings.ToLower(w.text)
		e, ok := p.Words[lower]
		if !ok {
			e = guess(w.text, i)
		}
		tokens[i] = sent.Token{
			Id:         offset + i,
			SentenceId: sid,
			Pos:        e.Pos,
			Tag:        e.Pos,
			Morph:      e.Morph,
			Idx:        w.idx,
			Text:       w.text,
			Lemma:      e.Lemma,
			Index:      i,
		}
	}

	root := 0
	for i, t := range tokens {
		if t.Pos == sent.Verb || t.Pos == sent.Aux {
			root = i
			break
		}
	}

	for i := range tokens {
		t := &tokens[i]
		switch {
		case i == root:
			t.Head, t.Dep = offset+i, "ROOT"
		case t.Pos == sent.Det || t.Pos == sent.Adj:
			t.Head, t.Dep = offset+nextNoun(tokens, i, root), dependency(t.Pos)
		case t.Pos == sent.Noun || t.Pos == sent.Propn || t.Pos == sent.Pron:
			t.Head = offset + root
			t.Dep = "obj"
			if i < root {
				t.Dep = "nsubj"
			}
		default:
			t.Head, t.Dep = offset+root, dependency(t.Pos)
		}
	}
	return tokens
}

func guess(text string, pos int) Entry {
	r := []rune(text)
	switch {
	case unicode.IsPunct(r[0]):
		return Entry{Pos: sent.Punct, Lemma: text}
	case unicode.IsDigit(r[0]):
		return Entry{Pos: "NUM", Lemma: text}
	case pos > 0 && unicode.IsUpper(r[0]):
		return Entry{Pos: sent.Propn, Lemma: text}
	}
	return Entry{Pos: sent.Noun, Lemma: strings.ToLower(text)}
}

func nextNoun(tokens []sent.Token, i, root int) int {
	for j := i + 1; j < len(tokens); j++ {
		switch tokens[j].Pos {
		case sent.Noun, sent.Propn, sent.Pron:
			return j
		case sent.Det, sent.Adj:
		default:
			return root
		}
	}
	return root
}

func dependency(pos string) string {
	switch pos {
	case sent.Det:
		return "det"
	case sent.Adj:
		return "amod"
	case sent.Adv:
		return "advmod"
	case sent.Adp:
		return "case"
	case sent.Cconj:
		return "cc"
	case sent.Sconj:
		return "mark"
	case sent.Punct:
		return "punct"
	case sent.Aux:
		return "aux"
	}
	return "dep"
}

// chunks returns the noun chunks of a sentence as paragraph positions.
func chunks(tokens []sent.Token, offset int) []sent.Chunk {
	var out []sent.Chunk
	start := -1
	for i, t := range tokens {
		switch t.Pos {
		case sent.Det, sent.Adj:
			if start < 0 {
				start = i
			}
		case sent.Noun, sent.Propn, sent.Pron:
			if start < 0 {
				start = i
			}
			out = append(out, sent.Chunk{Start: offset + start, End: offset + i + 1})
			start = -1
		default:
			start = -1
		}
	}
	return out
}
