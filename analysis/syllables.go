package analysis

import (
	"fmt"

	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/syllable"
)

// Syllabify splits every word of the document into syllables. A word the
// hyphenator cannot handle fails the whole document.
func Syllabify(doc *Document, h syllable.Hyphenator) error {
	if doc == nil || doc.Lexical == nil {
		return fmt.Errorf("syllabification needs lexical annotations: %w", errs.ErrMissingDependency)
	}
	if h == nil {
		return fmt.Errorf("syllabification needs a hyphenator: %w", errs.ErrMissingDependency)
	}

	sa := &SyllableAnnotations{Words: make([][]string, len(doc.Lexical.Words))}
	for i, w := range doc.Lexical.Words {
		pieces, err := h.Hyphenate(w.Text)
		if err != nil {
			return fmt.Errorf("hyphenate token %d: %w", w.Id, err)
		}
		sa.Words[i] = pieces
	}

	doc.Syllables = sa
	return nil
}
