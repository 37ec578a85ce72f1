package match

import (
	"slices"

	sent "github.com/revelaction/cohmetrix/sentence"
)

// Op is the quantifier of a pattern step.
type Op int

const (
	// One matches exactly one token.
	One Op = iota
	// OneOrMore matches one or more consecutive tokens.
	OneOrMore
	// ZeroOrMore matches any number of consecutive tokens.
	ZeroOrMore
)

// Step is one position of a token pattern.
type Step struct {
	Test func(sent.Token) bool
	Op   Op
}

// PosIn returns a token test accepting the given POS tags.
func PosIn(tags ...string) func(sent.Token) bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return func(t sent.Token) bool {
		return set[t.Pos]
	}
}

// Matcher finds the token runs matching a sequence of quantified steps.
// Like the phrase matcher it reports every (start, end) pair that matches,
// leaving overlap resolution to Filter.
type Matcher struct {
	label string
	steps []Step
}

// NewMatcher creates a pattern matcher whose matches carry label.
func NewMatcher(label string, steps ...Step) *Matcher {
	return &Matcher{label: label, steps: steps}
}

// Label returns the label of the spans produced by the matcher.
func (m *Matcher) Label() string {
	return m.label
}

// Match returns all spans of tokens matching the pattern.
func (m *Matcher) Match(tokens []sent.Token) []Span {
	if len(m.steps) == 0 {
		return nil
	}

	w := &walker{steps: m.steps, tokens: tokens, seen: map[[2]int]int{}}
	var spans []Span
	for start := range tokens {
		w.gen = start + 1
		w.ends = w.ends[:0]
		w.walk(0, start)
		if len(w.ends) == 0 {
			continue
		}

		slices.Sort(w.ends)
		for _, end := range slices.Compact(w.ends) {
			if end > start {
				spans = append(spans, Span{Start: start, End: end, Label: m.label})
			}
		}
	}
	return spans
}

// walker holds the state of the pattern walks of one Match call. seen maps
// a (step, position) state to the generation of the start that reached it,
// so the memo is shared by all start positions without clearing.
type walker struct {
	steps  []Step
	tokens []sent.Token
	seen   map[[2]int]int
	gen    int
	ends   []int
}

// walk explores the pattern from step at token position pos and records
// every position where the whole pattern has been consumed.
func (w *walker) walk(step, pos int) {
	key := [2]int{step, pos}
	if w.seen[key] == w.gen {
		return
	}
	w.seen[key] = w.gen

	if step == len(w.steps) {
		w.ends = append(w.ends, pos)
		return
	}

	s := w.steps[step]
	switch s.Op {
	case One:
		if pos < len(w.tokens) && s.Test(w.tokens[pos]) {
			w.walk(step+1, pos+1)
		}
	case OneOrMore, ZeroOrMore:
		if s.Op == ZeroOrMore {
			w.walk(step+1, pos)
		}
		for i := pos; i < len(w.tokens) && s.Test(w.tokens[i]); i++ {
			w.walk(step+1, i+1)
		}
	}
}
