package match

import (
	"reflect"
	"strings"
	"testing"

	sent "github.com/revelaction/cohmetrix/sentence"
)

func tokens(text string) []sent.Token {
	var ts []sent.Token
	for _, w := range strings.Fields(text) {
		ts = append(ts, sent.Token{Text: w})
	}
	return ts
}

func posTokens(tags ...string) []sent.Token {
	ts := make([]sent.Token, len(tags))
	for i, t := range tags {
		ts[i] = sent.Token{Pos: t}
	}
	return ts
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		want  []Span
	}{
		{"empty", nil, nil},
		{
			"longest wins",
			[]Span{{Start: 1, End: 2}, {Start: 0, End: 3}, {Start: 2, End: 4}},
			[]Span{{Start: 0, End: 3}},
		},
		{
			"tie goes to earliest",
			[]Span{{Start: 2, End: 4}, {Start: 1, End: 3}},
			[]Span{{Start: 1, End: 3}},
		},
		{
			"disjoint kept in order",
			[]Span{{Start: 4, End: 5}, {Start: 0, End: 2}, {Start: 2, End: 4}},
			[]Span{{Start: 0, End: 2}, {Start: 2, End: 4}, {Start: 4, End: 5}},
		},
		{
			"duplicates collapse",
			[]Span{{Start: 0, End: 2}, {Start: 0, End: 2}},
			[]Span{{Start: 0, End: 2}},
		},
		{
			"empty spans dropped",
			[]Span{{Start: 3, End: 3}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(tt.spans); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	a, b := Span{Start: 0, End: 2}, Span{Start: 2, End: 3}
	if a.Overlaps(b) {
		t.Errorf("expected adjacent spans not to overlap")
	}
	if !a.Overlaps(Span{Start: 1, End: 5}) {
		t.Errorf("expected overlap")
	}

	got := Shift([]Span{a}, 10)
	if want := []Span{{Start: 10, End: 12}}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPhraseMatcher(t *testing.T) {
	m := NewPhraseMatcher("cause", []string{"porque", "ya que", "ya", "  "})
	if m.Label() != "cause" {
		t.Errorf("unexpected label %s", m.Label())
	}

	got := m.Match(tokens("Corre Ya que llueve porque sí"))
	want := []Span{
		{Start: 1, End: 2, Label: "cause"},
		{Start: 1, End: 3, Label: "cause"},
		{Start: 4, End: 5, Label: "cause"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := Filter(got); len(got) != 2 || got[0].Len() != 2 {
		t.Errorf("expected the longer phrase to win, got %v", got)
	}
}

func TestMatcher(t *testing.T) {
	// AUX? VERB+ : a verb phrase
	m := NewMatcher("vp",
		Step{Test: PosIn(sent.Aux), Op: ZeroOrMore},
		Step{Test: PosIn(sent.Verb), Op: OneOrMore},
	)

	got := m.Match(posTokens(sent.Noun, sent.Aux, sent.Verb, sent.Verb))
	want := []Span{
		{Start: 1, End: 3, Label: "vp"},
		{Start: 1, End: 4, Label: "vp"},
		{Start: 2, End: 3, Label: "vp"},
		{Start: 2, End: 4, Label: "vp"},
		{Start: 3, End: 4, Label: "vp"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if f := Filter(got); !reflect.DeepEqual(f, []Span{{Start: 1, End: 4, Label: "vp"}}) {
		t.Errorf("unexpected filtered spans %v", f)
	}
}

func TestMatcherOne(t *testing.T) {
	m := NewMatcher("np", Step{Test: PosIn(sent.Det), Op: One}, Step{Test: PosIn(sent.Noun, sent.Propn), Op: One})

	got := m.Match(posTokens(sent.Det, sent.Noun, sent.Det, sent.Adj))
	if want := []Span{{Start: 0, End: 2, Label: "np"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if NewMatcher("none").Match(posTokens(sent.Noun)) != nil {
		t.Errorf("expected no match without steps")
	}
}

func TestMatcherLongParagraph(t *testing.T) {
	m := NewMatcher("vp",
		Step{Test: PosIn(sent.Aux), Op: ZeroOrMore},
		Step{Test: PosIn(sent.Verb), Op: OneOrMore},
	)

	const n = 200000
	ts := make([]sent.Token, n)
	for i := range ts {
		ts[i].Pos = sent.Noun
		if i%2 == 1 {
			ts[i].Pos = sent.Verb
		}
	}

	got := m.Match(ts)
	if len(got) != n/2 {
		t.Fatalf("expected %d spans, got %d", n/2, len(got))
	}
	for i, s := range got {
		if s.Start != 2*i+1 || s.End != 2*i+2 {
			t.Fatalf("unexpected span %d: %v", i, s)
		}
	}
}
