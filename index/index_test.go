package index

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/annotate/annotatetest"
	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/lexicon"
	"github.com/revelaction/cohmetrix/syllable"
)

func annotated(t *testing.T, text string) *analysis.Document {
	t.Helper()
	doc, err := analysis.NewSegmenter(annotatetest.New()).Segment(context.Background(), text)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if err := analysis.AnnotateLexical(doc); err != nil {
		t.Fatalf("lexical: %v", err)
	}
	if err := analysis.Syllabify(doc, syllable.NewSpanish()); err != nil {
		t.Fatalf("syllabify: %v", err)
	}
	if err := analysis.NewTagger(&lexicon.Spanish).Tag(doc); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if err := analysis.AnnotateCohesion(doc); err != nil {
		t.Fatalf("cohesion: %v", err)
	}
	return doc
}

func near(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) < 1e-9
}

func TestCompute(t *testing.T) {
	m, err := Compute(annotated(t, "El perro corre. El gato también corre."))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if len(m) != len(Codes()) {
		t.Errorf("expected %d indices, got %d", len(Codes()), len(m))
	}

	want := map[string]float64{
		DESPC:    1,
		DESSC:    2,
		DESWC:    7,
		DESPL:    2,
		DESPLd:   0,
		DESSL:    3.5,
		DESSLd:   0.5,
		DESWLlt:  30.0 / 7,
		DESWLsy:  12.0 / 7,
		LDTTRa:   5.0 / 7,
		LDTTRcw:  0.8,
		RDFHGL:   206.84 - 0.60*12.0/7 - 1.02*3.5,
		DRNP:     2.0 / 7 * 1000,
		DRVP:     0,
		DRNEG:    0,
		SYNNP:    0,
		SYNLE:    2.5,
		WRDNOUN:  2.0 / 7 * 1000,
		WRDVERB:  2.0 / 7 * 1000,
		WRDADV:   1.0 / 7 * 1000,
		WRDADJ:   0,
		WRDPRO:   0,
		CNCAll:   0,
		CRFNO1:   0,
		CRFSO1:   0,
		CRFCWO1:  0.4,
		CRFCWO1d: 0,
		CRFCWOa:  0.4,
		CRFANP1:  0,
	}
	for code, v := range want {
		if !near(m[code], v) {
			t.Errorf("%s: expected %v, got %v", code, v, m[code])
		}
	}
}

func TestReferentialCohesionOverlap(t *testing.T) {
	m, err := ReferentialCohesion(annotated(t, "El perro corre. El perro come."))
	if err != nil {
		t.Fatalf("cohesion: %v", err)
	}

	for _, code := range []string{CRFNO1, CRFNOa, CRFAO1, CRFAOa, CRFSO1, CRFSOa} {
		if m[code] != 1 {
			t.Errorf("%s: expected 1, got %v", code, m[code])
		}
	}
}

func TestAllPairs(t *testing.T) {
	var got []Pair
	for p := range AllPairs(4) {
		got = append(got, p)
	}
	want := []Pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	n := 0
	for range AllPairs(2000) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected iteration to stop at 3, got %d", n)
	}

	got = nil
	for p := range AdjacentPairs(3) {
		got = append(got, p)
	}
	if want := []Pair{{0, 1}, {1, 2}}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestReferentialCohesionManySentences(t *testing.T) {
	m, err := ReferentialCohesion(annotated(t, strings.Repeat("El perro corre. ", 1500)))
	if err != nil {
		t.Fatalf("cohesion: %v", err)
	}

	for _, code := range []string{CRFNO1, CRFNOa, CRFSOa, CRFCWO1, CRFCWOa} {
		if !near(m[code], 1) {
			t.Errorf("%s: expected 1, got %v", code, m[code])
		}
	}
	if !near(m[CRFCWOad], 0) {
		t.Errorf("expected CRFCWOad 0, got %v", m[CRFCWOad])
	}
}

func TestSingleSentence(t *testing.T) {
	m, err := Compute(annotated(t, "El perro corre."))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	for _, code := range []string{CRFNO1, CRFNOa, CRFCWO1, CRFCWO1d, CRFANPa} {
		if !math.IsNaN(m[code]) {
			t.Errorf("%s: expected NaN, got %v", code, m[code])
		}
	}
	if m[DESSLd] != 0 {
		t.Errorf("expected DESSLd 0, got %v", m[DESSLd])
	}
	if got := m.Undefined(); len(got) != 12 {
		t.Errorf("expected 12 undefined cohesion indices, got %v", got)
	}
}

func TestSyntacticComplexityWithoutNounPhrases(t *testing.T) {
	m, err := SyntacticComplexity(annotated(t, "Corre."))
	if err != nil {
		t.Fatalf("syntax: %v", err)
	}
	if !math.IsNaN(m[SYNNP]) {
		t.Errorf("expected undefined SYNNP, got %v", m[SYNNP])
	}
	if m[SYNLE] != 0 {
		t.Errorf("expected SYNLE 0, got %v", m[SYNLE])
	}
}

func TestConnectivesAndNegation(t *testing.T) {
	doc := annotated(t, "El perro no corre y el gato corre porque juega.")

	m, err := Connectives(doc)
	if err != nil {
		t.Fatalf("connectives: %v", err)
	}
	wc := float64(len(doc.Lexical.Words))
	if !near(m[CNCLogic], 1/wc*1000) || !near(m[CNCCaus], 1/wc*1000) || !near(m[CNCAll], 2/wc*1000) {
		t.Errorf("unexpected connective incidences %v", m)
	}

	m, err = PatternDensity(doc)
	if err != nil {
		t.Fatalf("density: %v", err)
	}
	if !near(m[DRNEG], 1/wc*1000) {
		t.Errorf("expected one negation, got %v", m[DRNEG])
	}
}

func TestWordInformationPronouns(t *testing.T) {
	m, err := WordInformation(annotated(t, "Yo lee. Ellos corren."))
	if err != nil {
		t.Fatalf("word information: %v", err)
	}
	if m[WRDPRP1s] != 250 || m[WRDPRP3p] != 250 || m[WRDPRP2s] != 0 {
		t.Errorf("unexpected pronoun incidences %v", m)
	}
	if m[WRDPRO] != 500 {
		t.Errorf("expected WRDPRO 500, got %v", m[WRDPRO])
	}
}

func TestComputeErrors(t *testing.T) {
	doc, err := analysis.NewSegmenter(annotatetest.New()).Segment(context.Background(), "El perro corre.")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if _, err := Compute(doc); !errors.Is(err, errs.ErrMissingDependency) {
		t.Errorf("expected ErrMissingDependency, got %v", err)
	}

	if _, err := Compute(annotated(t, ". ?")); !errors.Is(err, errs.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestFernandezHuerta(t *testing.T) {
	if got := FernandezHuerta(2, 10); !near(got, 206.84-1.2-10.2) {
		t.Errorf("unexpected readability %v", got)
	}
}

func TestMapJSON(t *testing.T) {
	m := Map{DESWC: 7, CRFNO1: math.NaN(), "ZZZ": 1}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"CRFNO1":null,"DESWC":7,"ZZZ":1}`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	var back Map
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsNaN(back[CRFNO1]) || back[DESWC] != 7 {
		t.Errorf("unexpected map %v", back)
	}
}

func TestMapVector(t *testing.T) {
	m := Map{DESWC: 7, DESSC: 2, CRFNO1: math.NaN()}

	v, err := m.Vector([]string{DESSC, DESWC})
	if err != nil || !reflect.DeepEqual(v, []float64{2, 7}) {
		t.Errorf("unexpected vector %v %v", v, err)
	}
	if _, err := m.Vector([]string{DESPC}); !errors.Is(err, errs.ErrMissingDependency) {
		t.Errorf("expected ErrMissingDependency, got %v", err)
	}
	if _, err := m.Vector([]string{CRFNO1}); !errors.Is(err, errs.ErrUndefinedStatistic) {
		t.Errorf("expected ErrUndefinedStatistic, got %v", err)
	}
	if got := m.Missing([]string{DESWC, DESPC}); !reflect.DeepEqual(got, []string{DESPC}) {
		t.Errorf("unexpected missing %v", got)
	}
}

func TestCodes(t *testing.T) {
	c := Codes()
	if len(c) != 48 {
		t.Fatalf("expected 48 codes, got %d", len(c))
	}
	for _, code := range c {
		if Describe(code) == "" {
			t.Errorf("%s has no description", code)
		}
	}
	if Describe("NOPE") != "" {
		t.Errorf("expected empty description for unknown code")
	}

	c[0] = "changed"
	if Codes()[0] == "changed" {
		t.Errorf("expected Codes to return a copy")
	}
}
