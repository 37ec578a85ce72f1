package index

import (
	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/lexicon"
)

var connectiveCodes = map[lexicon.Class]string{
	lexicon.Causal:      CNCCaus,
	lexicon.Logical:     CNCLogic,
	lexicon.Adversative: CNCADC,
	lexicon.Temporal:    CNCTemp,
	lexicon.Additive:    CNCAdd,
}

// Connectives computes the incidence of every connective class and of all
// of them together.
func Connectives(doc *analysis.Document) (Map, error) {
	if err := phrases(doc, "connective indices"); err != nil {
		return nil, err
	}

	wc := float64(len(doc.Lexical.Words))
	m := Map{}
	total := 0
	for _, c := range lexicon.Classes() {
		n := len(doc.Phrases.Connectives[c])
		total += n
		m[connectiveCodes[c]] = float64(n) / wc * incidence
	}
	m[CNCAll] = float64(total) / wc * incidence

	return m, nil
}

var pronounCodes = map[analysis.PersonNumber]string{
	{Person: 1}:               WRDPRP1s,
	{Person: 1, Plural: true}: WRDPRP1p,
	{Person: 2}:               WRDPRP2s,
	{Person: 2, Plural: true}: WRDPRP2p,
	{Person: 3}:               WRDPRP3s,
	{Person: 3, Plural: true}: WRDPRP3p,
}

// WordInformation computes the incidence of every word class.
func WordInformation(doc *analysis.Document) (Map, error) {
	if err := wordCount(doc, "word information indices", false); err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, s := range doc.Lexical.Sentences {
		counts[WRDNOUN] += len(s.Nouns)
		counts[WRDVERB] += len(s.Verbs)
		counts[WRDADJ] += len(s.Adjectives)
		counts[WRDADV] += len(s.Adverbs)
		counts[WRDPRO] += len(s.Pronouns)
		for pn, tokens := range s.PronounsByPerson {
			counts[pronounCodes[pn]] += len(tokens)
		}
	}

	wc := float64(len(doc.Lexical.Words))
	m := Map{}
	for _, code := range []string{WRDNOUN, WRDVERB, WRDADJ, WRDADV, WRDPRO} {
		m[code] = float64(counts[code]) / wc * incidence
	}
	for _, code := range pronounCodes {
		m[code] = float64(counts[code]) / wc * incidence
	}

	return m, nil
}
