package match

import (
	"strings"

	sent "github.com/revelaction/cohmetrix/sentence"
)

type trieNode struct {
	next map[string]*trieNode
	end  bool
}

// PhraseMatcher finds occurrences of multi-word expressions in a token
// sequence. Matching compares the lowercased token text with the
// whitespace-separated words of each phrase. It is read only after
// construction and safe for concurrent use.
type PhraseMatcher struct {
	label string
	root  *trieNode
}

// NewPhraseMatcher builds a matcher for phrases whose matches carry label.
func NewPhraseMatcher(label string, phrases []string) *PhraseMatcher {
	m := &PhraseMatcher{label: label, root: &trieNode{next: map[string]*trieNode{}}}
	for _, p := range phrases {
		words := strings.Fields(strings.ToLower(p))
		if len(words) == 0 {
			continue
		}

		node := m.root
		for _, w := range words {
			child, ok := node.next[w]
			if !ok {
				child = &trieNode{next: map[string]*trieNode{}}
				node.next[w] = child
			}
			node = child
		}
		node.end = true
	}
	return m
}

// Label returns the label of the spans produced by the matcher.
func (m *PhraseMatcher) Label() string {
	return m.label
}

// Match returns every occurrence of every phrase, overlapping ones included.
func (m *PhraseMatcher) Match(tokens []sent.Token) []Span {
	var spans []Span
	for start := range tokens {
		node := m.root
		for i := start; i < len(tokens); i++ {
			child, ok := node.next[strings.ToLower(tokens[i].Text)]
			if !ok {
				break
			}
			node = child
			if node.end {
				spans = append(spans, Span{Start: start, End: i + 1, Label: m.label})
			}
		}
	}
	return spans
}
