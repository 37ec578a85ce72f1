package sentence

import "strings"

// Universal POS tags used by the analyzers.
const (
	Adj   = "ADJ"
	Adp   = "ADP"
	Adv   = "ADV"
	Aux   = "AUX"
	Cconj = "CCONJ"
	Conj  = "CONJ"
	Det   = "DET"
	Intj  = "INTJ"
	Noun  = "NOUN"
	Pron  = "PRON"
	Propn = "PROPN"
	Punct = "PUNCT"
	Sconj = "SCONJ"
	Space = "SPACE"
	Verb  = "VERB"
)

// Features splits the morphology string into its "Name=Value" features.
func (t Token) Features() []string {
	if t.Morph == "" {
		return nil
	}
	return strings.Split(t.Morph, "|")
}

// HasFeature reports whether feature (f.ex. "PronType=Prs") is one of the
// token features.
func (t Token) HasFeature(feature string) bool {
	for _, f := range t.Features() {
		if f == feature {
			return true
		}
	}
	return false
}

// Feature returns the value of the named feature and whether it is present.
func (t Token) Feature(name string) (string, bool) {
	for _, f := range t.Features() {
		k, v, ok := strings.Cut(f, "=")
		if ok && k == name {
			return v, true
		}
	}
	return "", false
}

// HasVerbForm reports whether the morphology carries a VerbForm feature.
func (t Token) HasVerbForm() bool {
	return strings.Contains(t.Morph, "VerbForm")
}

// IsPersonalPronoun reports whether the token is marked PronType=Prs.
func (t Token) IsPersonalPronoun() bool {
	return t.HasFeature("PronType=Prs")
}
