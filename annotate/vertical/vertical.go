// Package vertical reads pre-annotated documents from corpus vertical files.
//
// A vertical file has one token per line, tab separated columns with the
// word form first, and XML-like structure lines. The structures <doc>, <p>
// and <s> delimit documents, paragraphs and sentences; <doc> may carry the
// attributes id, title and labels (comma separated). Tokens outside any
// structure go to an implicit one.
package vertical

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"

	sent "github.com/revelaction/cohmetrix/sentence"
)

// Columns are the vertical column numbers of the token attributes. The word
// form is column 0. A negative number means the attribute is absent.
type Columns struct {
	Lemma  int `toml:"lemma"`
	Pos    int `toml:"pos"`
	Tag    int `toml:"tag"`
	Morph  int `toml:"morph"`
	Head   int `toml:"head"`
	Deprel int `toml:"deprel"`
}

// DefaultColumns follows the CoNLL-U order without the id column: word,
// lemma, upos, xpos, feats, head, deprel. Heads are 1-based positions in the
// sentence, 0 for the root.
var DefaultColumns = Columns{Lemma: 1, Pos: 2, Tag: 3, Morph: 4, Head: 5, Deprel: 6}

type rawToken struct {
	tok  sent.Token
	head int
}

// Processor collects documents while vertigo parses a file.
type Processor struct {
	cols Columns

	docs    sent.Library
	doc     *sent.Doc
	para    *sent.Paragraph
	offset  int
	current []rawToken
}

// NewProcessor returns a Processor reading cols.
func NewProcessor(cols Columns) *Processor {
	return &Processor{cols: cols}
}

// Library returns the documents read so far. It closes any open structure.
func (p *Processor) Library() sent.Library {
	p.closeDoc()
	return p.docs
}

// ProcToken implements vertigo.LineProcessor.
func (p *Processor) ProcToken(token *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	p.openPara()

	t := sent.Token{
		Text:  token.Word,
		Lemma: p.attr(token, p.cols.Lemma),
		Pos:   p.attr(token, p.cols.Pos),
		Tag:   p.attr(token, p.cols.Tag),
		Morph: p.attr(token, p.cols.Morph),
		Dep:   p.attr(token, p.cols.Deprel),
		Index: len(p.current),
	}
	if t.Morph == "_" {
		t.Morph = ""
	}
	if strings.EqualFold(t.Dep, "root") {
		t.Dep = "ROOT"
	}

	head := len(p.current) + 1
	if h := p.attr(token, p.cols.Head); h != "" {
		v, err := strconv.Atoi(h)
		if err != nil {
			return fmt.Errorf("line %d: head %q: %w", line, h, err)
		}
		if v == 0 {
			t.Dep = "ROOT"
		} else {
			head = v
		}
	}

	p.current = append(p.current, rawToken{tok: t, head: head})
	return nil
}

func (p *Processor) attr(token *vertigo.Token, col int) string {
	// the word is not part of Attrs
	if col < 1 || col > len(token.Attrs) {
		return ""
	}
	return token.Attrs[col-1]
}

// ProcStruct implements vertigo.LineProcessor.
func (p *Processor) ProcStruct(strc *vertigo.Structure, line int, err error) error {
	if err != nil {
		return err
	}

	switch strc.Name {
	case "doc":
		p.closeDoc()
		d := sent.Doc{Id: len(p.docs), Title: strc.Attrs["title"]}
		if v, ok := strc.Attrs["id"]; ok {
			id, err := strconv.Atoi(v)
			if err != nil {
				log.Warn().Int("line", line).Str("id", v).Msg("non numeric doc id, using position")
			} else {
				d.Id = id
			}
		}
		if v := strc.Attrs["labels"]; v != "" {
			for _, l := range strings.Split(v, ",") {
				if l = strings.TrimSpace(l); l != "" {
					d.Labels = append(d.Labels, l)
				}
			}
		}
		p.doc = &d
	case "p":
		p.closePara()
	case "s":
		p.closeSentence()
	}
	return nil
}

// ProcStructClose implements vertigo.LineProcessor.
func (p *Processor) ProcStructClose(strc *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return err
	}

	switch strc.Name {
	case "doc":
		p.closeDoc()
	case "p":
		p.closePara()
	case "s":
		p.closeSentence()
	}
	return nil
}

func (p *Processor) openPara() {
	if p.doc == nil {
		p.doc = &sent.Doc{Id: len(p.docs)}
	}
	if p.para == nil {
		p.para = &sent.Paragraph{}
		p.offset = 0
	}
}

func (p *Processor) closeSentence() {
	if len(p.current) == 0 {
		return
	}

	tokens := make([]sent.Token, len(p.current))
	for i, rt := range p.current {
		t := rt.tok
		t.Id = p.offset + i
		t.SentenceId = len(p.para.Sentences)
		t.Head = p.offset + rt.head - 1
		if rt.head < 1 || rt.head > len(p.current) {
			t.Head = t.Id
		}
		tokens[i] = t
	}

	p.para.Sentences = append(p.para.Sentences, tokens)
	p.offset += len(tokens)
	p.current = nil
}

func (p *Processor) closePara() {
	p.closeSentence()
	if p.para == nil {
		return
	}
	if len(p.para.Sentences) > 0 {
		p.para.Text = paragraphText(p.para)
		p.doc.Paragraphs = append(p.doc.Paragraphs, *p.para)
	}
	p.para = nil
}

func (p *Processor) closeDoc() {
	p.closePara()
	if p.doc == nil {
		return
	}
	if len(p.doc.Paragraphs) > 0 {
		p.docs = append(p.docs, *p.doc)
	}
	p.doc = nil
}

// paragraphText rebuilds the text of a paragraph with single spaces between
// tokens and sets the token rune offsets.
func paragraphText(para *sent.Paragraph) string {
	var b strings.Builder
	runes := 0
	for si := range para.Sentences {
		for ti := range para.Sentences[si] {
			if b.Len() > 0 {
				b.WriteByte(' ')
				runes++
			}
			t := &para.Sentences[si][ti]
			t.Idx = runes
			b.WriteString(t.Text)
			runes += utf8.RuneCountInString(t.Text)
		}
	}
	b.WriteString("\n\n")
	return b.String()
}

// Read parses the vertical file at path.
func Read(path string, cols Columns) (sent.Library, error) {
	pc := &vertigo.ParserConf{
		InputFilePath:         path,
		Encoding:              "utf-8",
		StructAttrAccumulator: "comb",
	}

	proc := NewProcessor(cols)
	if err := vertigo.ParseVerticalFile(pc, proc); err != nil {
		return nil, fmt.Errorf("vertical file %s: %w", path, err)
	}

	lib := proc.Library()
	log.Debug().Str("path", path).Int("docs", len(lib)).Msg("vertical file read")
	return lib, nil
}
