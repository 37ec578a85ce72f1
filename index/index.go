// Package index reduces an annotated document to the complexity indices.
package index

import (
	"fmt"

	"github.com/revelaction/cohmetrix/analysis"
)

// Reducer computes a family of indices from an annotated document. Reducers
// only read the document.
type Reducer func(doc *analysis.Document) (Map, error)

type family struct {
	name string
	fn   Reducer
}

var families = []family{
	{"descriptive", Descriptive},
	{"lexical diversity", LexicalDiversity},
	{"readability", Readability},
	{"syntactic pattern density", PatternDensity},
	{"syntactic complexity", SyntacticComplexity},
	{"connectives", Connectives},
	{"word information", WordInformation},
	{"referential cohesion", ReferentialCohesion},
}

// Compute runs every reducer and merges their indices. The first failing
// reducer fails the document; no partial map is returned.
func Compute(doc *analysis.Document) (Map, error) {
	m := make(Map, len(codes))
	for _, f := range families {
		fm, err := f.fn(doc)
		if err != nil {
			return nil, fmt.Errorf("%s indices: %w", f.name, err)
		}
		m.Merge(fm)
	}

	if missing := m.Missing(codes); len(missing) > 0 {
		return nil, fmt.Errorf("indices %v not computed", missing)
	}
	return m, nil
}
