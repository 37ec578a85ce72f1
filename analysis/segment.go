package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/revelaction/cohmetrix/errs"
	sent "github.com/revelaction/cohmetrix/sentence"
)

const (
	// DefaultDelimiter separates paragraphs.
	DefaultDelimiter = "\n\n"

	// DefaultMaxLength is the maximum number of characters of a text.
	DefaultMaxLength = 3000000
)

// Parser is the annotation engine: it tokenizes, tags, parses and splits
// into sentences one paragraph of text.
type Parser interface {
	Parse(ctx context.Context, text string) (sent.Paragraph, error)
}

// Segmenter splits texts into paragraphs and has each paragraph parsed.
type Segmenter struct {
	Parser    Parser
	Delimiter string
	MaxLength int
}

// NewSegmenter returns a Segmenter with the default delimiter and size limit.
func NewSegmenter(p Parser) *Segmenter {
	return &Segmenter{Parser: p, Delimiter: DefaultDelimiter, MaxLength: DefaultMaxLength}
}

// Segment creates the Document of text.
func (s *Segmenter) Segment(ctx context.Context, text string) (*Document, error) {
	if s.Parser == nil {
		return nil, fmt.Errorf("segmenter has no parser: %w", errs.ErrMissingDependency)
	}
	if s.Delimiter == "" {
		return nil, fmt.Errorf("empty paragraph delimiter: %w", errs.ErrInvalidConfiguration)
	}
	if err := checkLength(text, s.MaxLength); err != nil {
		return nil, err
	}

	texts := SplitParagraphs(text, s.Delimiter)
	paragraphs := make([]sent.Paragraph, 0, len(texts))
	for i, pt := range texts {
		p, err := s.Parser.Parse(ctx, pt)
		if err != nil {
			return nil, fmt.Errorf("parse paragraph %d: %w", i, err)
		}
		p.Text = pt
		paragraphs = append(paragraphs, p)
	}

	return build(text, paragraphs)
}

// FromDoc creates the Document of an already parsed text.
func FromDoc(doc sent.Doc, maxLength int) (*Document, error) {
	text := doc.Text()
	if text == "" {
		n := 0
		for _, p := range doc.Paragraphs {
			n += len(p.Tokens())
		}
		if n == 0 {
			return nil, fmt.Errorf("doc %d has no content: %w", doc.Id, errs.ErrEmptyInput)
		}
	} else if err := checkLength(text, maxLength); err != nil {
		return nil, err
	}

	return build(text, doc.Paragraphs)
}

func checkLength(text string, max int) error {
	if len(text) == 0 {
		return fmt.Errorf("text has length 0: %w", errs.ErrEmptyInput)
	}
	if max <= 0 {
		max = DefaultMaxLength
	}
	if n := utf8.RuneCountInString(text); n > max {
		return fmt.Errorf("text has %d characters, maximum is %d: %w", n, max, errs.ErrTextTooLong)
	}
	return nil
}

// SplitParagraphs splits text at every non-overlapping occurrence of
// delimiter. Each paragraph keeps its trailing delimiter; the text after the
// last delimiter is the final paragraph when not empty.
func SplitParagraphs(text, delimiter string) []string {
	if delimiter == "" {
		return []string{text}
	}

	var paragraphs []string
	rest := text
	for {
		i := strings.Index(rest, delimiter)
		if i < 0 {
			break
		}
		end := i + len(delimiter)
		paragraphs = append(paragraphs, rest[:end])
		rest = rest[end:]
	}
	if rest != "" {
		paragraphs = append(paragraphs, rest)
	}
	return paragraphs
}

// build flattens the paragraphs into document positions. Token text and
// lemmas are stored in NFC.
func build(text string, paragraphs []sent.Paragraph) (*Document, error) {
	doc := &Document{Text: text}

	for pi, p := range paragraphs {
		offset := len(doc.Tokens)
		tokens := p.Tokens()

		pos := make(map[int]int, len(tokens))
		for i, t := range tokens {
			pos[t.Id] = i
		}

		for i, t := range tokens {
			h, ok := pos[t.Head]
			if !ok {
				h = i
			}
			t.Id = offset + i
			t.Head = offset + h
			t.Text = norm.NFC.String(t.Text)
			t.Lemma = norm.NFC.String(t.Lemma)
			doc.Tokens = append(doc.Tokens, t)
		}

		chunks := p.Chunks
		if chunks == nil {
			chunks = sent.DeriveChunks(tokens)
		}
		for _, c := range chunks {
			if c.Start < 0 || c.End > len(tokens) || c.Start >= c.End {
				return nil, fmt.Errorf("paragraph %d: noun chunk [%d, %d) out of range", pi, c.Start, c.End)
			}
			doc.Chunks = append(doc.Chunks, sent.Chunk{Start: offset + c.Start, End: offset + c.End})
		}

		para := Paragraph{Text: p.Text, Start: offset, End: offset + len(tokens)}
		cursor := offset
		for _, s := range p.Sentences {
			start := cursor
			cursor += len(s)
			if sent.IsBlank(s) {
				continue
			}
			para.Sentences = append(para.Sentences, len(doc.Sentences))
			doc.Sentences = append(doc.Sentences, Sentence{Paragraph: pi, Start: start, End: cursor})
		}
		doc.Paragraphs = append(doc.Paragraphs, para)
	}

	return doc, nil
}
