package sentence

import "strings"

// Doc is a pre-annotated document: the paragraphs of a text as returned by
// the annotation engine.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels     []string    `json:"labels"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Library is a collection of Doc
type Library []Doc

// Text returns the concatenated text of all paragraphs.
func (d Doc) Text() string {
	var b strings.Builder
	for _, p := range d.Paragraphs {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Paragraph is the annotation engine output for one paragraph of text.
//
// Token Ids and Heads are positions in the flattened token sequence of the
// paragraph, starting at 0. A root token is its own head.
type Paragraph struct {
	Text      string    `json:"text"`
	Sentences [][]Token `json:"sentences"`

	// Noun chunk spans over the flattened token sequence. Nil means the
	// engine provided none and they may be derived from the dependency tree.
	Chunks []Chunk `json:"chunks,omitempty"`
}

// Tokens returns all tokens of the paragraph in order.
func (p Paragraph) Tokens() []Token {
	n := 0
	for _, s := range p.Sentences {
		n += len(s)
	}

	tokens := make([]Token, 0, n)
	for _, s := range p.Sentences {
		tokens = append(tokens, s...)
	}
	return tokens
}

// Chunk is a base noun phrase [Start, End) over paragraph token positions.
type Chunk struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// Universal morphological features, f.ex. "Number=Sing|Person=1|PronType=Prs"
	Morph string `json:"morph,omitempty"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// IsRoot reports whether the token is the syntactic root of its sentence.
func (t Token) IsRoot() bool {
	return t.Dep == "ROOT"
}

// IsBlank reports whether the sentence contains only whitespace.
func IsBlank(s []Token) bool {
	for _, t := range s {
		if strings.TrimSpace(t.Text) != "" {
			return false
		}
	}
	return true
}
