package annotatetest

import (
	"context"
	"reflect"
	"testing"

	sent "github.com/revelaction/cohmetrix/sentence"
)

func TestParse(t *testing.T) {
	p := New()

	para, err := p.Parse(context.Background(), "El perro grande corre. ¿Él lee?")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Calls() != 1 {
		t.Errorf("expected 1 call, got %d", p.Calls())
	}
	if len(para.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(para.Sentences))
	}

	first := para.Sentences[0]
	var pos []string
	for _, tok := range first {
		pos = append(pos, tok.Pos)
	}
	if want := []string{sent.Det, sent.Noun, sent.Adj, sent.Verb, sent.Punct}; !reflect.DeepEqual(pos, want) {
		t.Errorf("expected %v, got %v", want, pos)
	}
	if first[3].Dep != "ROOT" || first[3].Head != 3 || first[1].Head != 3 || first[0].Head != 1 {
		t.Errorf("unexpected tree %+v", first)
	}
	if first[1].Idx != 3 || first[1].Lemma != "perro" {
		t.Errorf("unexpected token %+v", first[1])
	}

	second := para.Sentences[1]
	if second[0].Text != "¿" || second[1].Id != 6 || second[1].Idx != 24 || second[1].SentenceId != 1 {
		t.Errorf("unexpected second sentence %+v", second)
	}

	if want := []sent.Chunk{{Start: 0, End: 2}, {Start: 6, End: 7}}; !reflect.DeepEqual(para.Chunks, want) {
		t.Errorf("expected chunks %v, got %v", want, para.Chunks)
	}
}

func TestParseUnknownWords(t *testing.T) {
	para, err := New().Parse(context.Background(), "Ana come 3 manzanas")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tokens := para.Sentences[0]
	if tokens[0].Pos != sent.Noun || tokens[2].Pos != "NUM" || tokens[3].Pos != sent.Noun {
		t.Errorf("unexpected guesses %+v", tokens)
	}

	para, _ = New().Parse(context.Background(), "El niño ve a Ana.")
	if got := para.Sentences[0][4].Pos; got != sent.Propn {
		t.Errorf("expected proper noun, got %s", got)
	}
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New()
	if _, err := p.Parse(ctx, "Hola."); err == nil {
		t.Errorf("expected error for a cancelled context")
	}
	if p.Calls() != 0 {
		t.Errorf("expected no counted call")
	}
}
