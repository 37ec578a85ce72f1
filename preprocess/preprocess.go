// Package preprocess transforms texts before they are segmented and parsed.
package preprocess

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"

	"github.com/revelaction/cohmetrix/errs"
)

// Func transforms a text.
type Func func(text string) (string, error)

// Identity returns the text unchanged.
func Identity(text string) (string, error) {
	return text, nil
}

// NFC composes the text to Unicode Normalization Form C.
func NFC(text string) (string, error) {
	return norm.NFC.String(text), nil
}

// Chain applies fns in order.
func Chain(fns ...Func) Func {
	return func(text string) (string, error) {
		var err error
		for _, f := range fns {
			text, err = f(text)
			if err != nil {
				return "", err
			}
		}
		return text, nil
	}
}

// Names returns the names accepted by ByName.
func Names() []string {
	return []string{"none", "nfc", "markdown"}
}

// ByName returns the preprocessing function called name.
func ByName(name string) (Func, error) {
	switch name {
	case "", "none":
		return Identity, nil
	case "nfc":
		return NFC, nil
	case "markdown":
		return Chain(Markdown, NFC), nil
	}
	return nil, fmt.Errorf("preprocess %q, want one of %s: %w", name, strings.Join(Names(), ", "), errs.ErrInvalidConfiguration)
}

// Markdown returns the plain text of a Markdown document: one paragraph per
// block (paragraphs, headings, list items, quotes), separated by a blank
// line. Code blocks, HTML and link destinations are dropped.
func Markdown(src string) (string, error) {
	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []string
	var cur bytes.Buffer
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			blocks = append(blocks, s)
		}
		cur.Reset()
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				flush()
			}
		case *ast.Text:
			if entering {
				cur.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					cur.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				cur.Write(node.Value)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("markdown: %w", err)
	}
	flush()

	return strings.Join(blocks, "\n\n"), nil
}
