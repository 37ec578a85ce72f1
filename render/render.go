package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/revelaction/cohmetrix/index"
	sent "github.com/revelaction/cohmetrix/sentence"
)

const (
	TextFormat    = "text"
	JSONFormat    = "json"
	YAMLFormat    = "yaml"
	Defaultformat = TextFormat
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{TextFormat, JSONFormat, YAMLFormat}
}

// Report is the analysis outcome of one text.
type Report struct {
	Id      int       `json:"id" yaml:"id"`
	Title   string    `json:"title,omitempty" yaml:"title,omitempty"`
	Indices index.Map `json:"indices,omitempty" yaml:"-"`
	Label   string    `json:"label,omitempty" yaml:"label,omitempty"`
	Error   string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Renderer writes reports.
type Renderer interface {
	Render(reports []Report) error
}

// New returns the Renderer of format writing to w.
func New(format string, w io.Writer, hasColor bool) (Renderer, error) {
	switch format {
	case "", TextFormat:
		return &TextRenderer{W: w, HasColor: hasColor}, nil
	case JSONFormat:
		return NewJSONRenderer(w), nil
	case YAMLFormat:
		return NewYAMLRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// TextRenderer writes one block per report: a header line and one line per
// index.
type TextRenderer struct {
	W        io.Writer
	HasColor bool

	// Describe appends the description of every index code
	Describe bool
}

var _ Renderer = (*TextRenderer)(nil)

func (r *TextRenderer) Render(reports []Report) error {
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(r.W)
		}

		header := fmt.Sprintf("📖 %d %s", rep.Id, rep.Title)
		if rep.Label != "" {
			header += " 🔖 " + r.color(Green256, rep.Label)
		}
		if _, err := fmt.Fprintln(r.W, strings.TrimSpace(header)); err != nil {
			return err
		}

		if rep.Error != "" {
			fmt.Fprintf(r.W, "  %s\n", r.color(Red, "error: "+rep.Error))
			continue
		}

		for _, code := range rep.Indices.Keys() {
			line := fmt.Sprintf("  %s %s", r.color(Yellow256, fmt.Sprintf("%-9s", code)), r.value(rep.Indices[code]))
			if r.Describe {
				line += "  " + r.color(Grey256, index.Describe(code))
			}
			fmt.Fprintln(r.W, line)
		}
	}
	return nil
}

func (r *TextRenderer) value(v float64) string {
	if math.IsNaN(v) {
		return r.color(Red, fmt.Sprintf("%12s", "n/a"))
	}
	return fmt.Sprintf("%12.4f", v)
}

func (r *TextRenderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// IndexList writes the index codes in classifier order with their
// descriptions.
func IndexList(w io.Writer, hasColor bool) {
	r := &TextRenderer{W: w, HasColor: hasColor}
	for _, code := range index.Codes() {
		fmt.Fprintf(w, "%s %s\n", r.color(Yellow256, fmt.Sprintf("%-9s", code)), index.Describe(code))
	}
}

// Sentence returns the original text of the sentence.
func Sentence(sentence []sent.Token) string {
	var str strings.Builder
	var lastIdx, lastLen int
	for i, token := range sentence {
		l := len([]rune(token.Text))
		if i == 0 {
			str.WriteString(token.Text)
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		// parts of a multi token word share text and idx; the word is
		// written once
		diff := token.Idx - lastIdx
		if diff > 0 {
			str.WriteString(strings.Repeat(" ", max(diff-lastLen, 0)))
			str.WriteString(token.Text)
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}
