package index

// Index codes.
const (
	CNCADC   = "CNCADC"
	CNCAdd   = "CNCAdd"
	CNCAll   = "CNCAll"
	CNCCaus  = "CNCCaus"
	CNCLogic = "CNCLogic"
	CNCTemp  = "CNCTemp"
	CRFANP1  = "CRFANP1"
	CRFANPa  = "CRFANPa"
	CRFAO1   = "CRFAO1"
	CRFAOa   = "CRFAOa"
	CRFCWO1  = "CRFCWO1"
	CRFCWO1d = "CRFCWO1d"
	CRFCWOa  = "CRFCWOa"
	CRFCWOad = "CRFCWOad"
	CRFNO1   = "CRFNO1"
	CRFNOa   = "CRFNOa"
	CRFSO1   = "CRFSO1"
	CRFSOa   = "CRFSOa"
	DESPC    = "DESPC"
	DESPL    = "DESPL"
	DESPLd   = "DESPLd"
	DESSC    = "DESSC"
	DESSL    = "DESSL"
	DESSLd   = "DESSLd"
	DESWC    = "DESWC"
	DESWLlt  = "DESWLlt"
	DESWLltd = "DESWLltd"
	DESWLsy  = "DESWLsy"
	DESWLsyd = "DESWLsyd"
	DRNEG    = "DRNEG"
	DRNP     = "DRNP"
	DRVP     = "DRVP"
	LDTTRa   = "LDTTRa"
	LDTTRcw  = "LDTTRcw"
	RDFHGL   = "RDFHGL"
	SYNLE    = "SYNLE"
	SYNNP    = "SYNNP"
	WRDADJ   = "WRDADJ"
	WRDADV   = "WRDADV"
	WRDNOUN  = "WRDNOUN"
	WRDPRO   = "WRDPRO"
	WRDPRP1p = "WRDPRP1p"
	WRDPRP1s = "WRDPRP1s"
	WRDPRP2p = "WRDPRP2p"
	WRDPRP2s = "WRDPRP2s"
	WRDPRP3p = "WRDPRP3p"
	WRDPRP3s = "WRDPRP3s"
	WRDVERB  = "WRDVERB"
)

// codes in the order the classifier was trained with
var codes = []string{
	CNCADC, CNCAdd, CNCAll, CNCCaus, CNCLogic, CNCTemp,
	CRFANP1, CRFANPa, CRFAO1, CRFAOa, CRFCWO1, CRFCWO1d, CRFCWOa, CRFCWOad,
	CRFNO1, CRFNOa, CRFSO1, CRFSOa,
	DESPC, DESPL, DESPLd, DESSC, DESSL, DESSLd, DESWC,
	DESWLlt, DESWLltd, DESWLsy, DESWLsyd,
	DRNEG, DRNP, DRVP,
	LDTTRa, LDTTRcw,
	RDFHGL,
	SYNLE, SYNNP,
	WRDADJ, WRDADV, WRDNOUN, WRDPRO,
	WRDPRP1p, WRDPRP1s, WRDPRP2p, WRDPRP2s, WRDPRP3p, WRDPRP3s,
	WRDVERB,
}

var descriptions = map[string]string{
	CNCADC:   "Adversative connectives incidence",
	CNCAdd:   "Additive connectives incidence",
	CNCAll:   "All connectives incidence",
	CNCCaus:  "Causal connectives incidence",
	CNCLogic: "Logical connectives incidence",
	CNCTemp:  "Temporal connectives incidence",
	CRFANP1:  "Anaphore overlap, adjacent sentences",
	CRFANPa:  "Anaphore overlap, all sentences",
	CRFAO1:   "Argument overlap, adjacent sentences",
	CRFAOa:   "Argument overlap, all sentences",
	CRFCWO1:  "Content word overlap, adjacent sentences, mean",
	CRFCWO1d: "Content word overlap, adjacent sentences, standard deviation",
	CRFCWOa:  "Content word overlap, all sentences, mean",
	CRFCWOad: "Content word overlap, all sentences, standard deviation",
	CRFNO1:   "Noun overlap, adjacent sentences",
	CRFNOa:   "Noun overlap, all sentences",
	CRFSO1:   "Stem overlap, adjacent sentences",
	CRFSOa:   "Stem overlap, all sentences",
	DESPC:    "Paragraph count",
	DESPL:    "Paragraph length in sentences, mean",
	DESPLd:   "Paragraph length in sentences, standard deviation",
	DESSC:    "Sentence count",
	DESSL:    "Sentence length in words, mean",
	DESSLd:   "Sentence length in words, standard deviation",
	DESWC:    "Word count",
	DESWLlt:  "Word length in letters, mean",
	DESWLltd: "Word length in letters, standard deviation",
	DESWLsy:  "Word length in syllables, mean",
	DESWLsyd: "Word length in syllables, standard deviation",
	DRNEG:    "Negation expression density",
	DRNP:     "Noun phrase density",
	DRVP:     "Verb phrase density",
	LDTTRa:   "Type-token ratio, all words",
	LDTTRcw:  "Type-token ratio, content words",
	RDFHGL:   "Fernández-Huerta readability",
	SYNLE:    "Words before the main verb, mean",
	SYNNP:    "Modifiers per noun phrase, mean",
	WRDADJ:   "Adjective incidence",
	WRDADV:   "Adverb incidence",
	WRDNOUN:  "Noun incidence",
	WRDPRO:   "Pronoun incidence",
	WRDPRP1p: "First person plural pronoun incidence",
	WRDPRP1s: "First person singular pronoun incidence",
	WRDPRP2p: "Second person plural pronoun incidence",
	WRDPRP2s: "Second person singular pronoun incidence",
	WRDPRP3p: "Third person plural pronoun incidence",
	WRDPRP3s: "Third person singular pronoun incidence",
	WRDVERB:  "Verb incidence",
}

// Codes returns the index codes in classifier order.
func Codes() []string {
	c := make([]string, len(codes))
	copy(c, codes)
	return c
}

// Describe returns a short description of the index code.
func Describe(code string) string {
	return descriptions[code]
}
