package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/revelaction/cohmetrix/errs"
	sent "github.com/revelaction/cohmetrix/sentence"
)

func TestParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", r.Method, r.Header.Get("Content-Type"))
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Language != "es" {
			t.Errorf("expected language es, got %q", req.Language)
		}

		para := sent.Paragraph{Sentences: [][]sent.Token{{{Text: req.Text, Pos: sent.Intj, Dep: "ROOT"}}}}
		_ = json.NewEncoder(w).Encode(para)
	}))
	defer srv.Close()

	p, err := New(srv.URL, "es", 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	para, err := p.Parse(context.Background(), "Hola")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(para.Sentences) != 1 || para.Sentences[0][0].Text != "Hola" {
		t.Errorf("unexpected paragraph %+v", para)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := New("", "es", 0); !errors.Is(err, errs.ErrMissingDependency) {
		t.Errorf("expected ErrMissingDependency, got %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/garbage") {
			_, _ = w.Write([]byte("not json"))
			return
		}
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, _ := New(srv.URL, "es", 0)
	_, err := p.Parse(context.Background(), "Hola")
	if err == nil || !strings.Contains(err.Error(), "status 503: model not loaded") {
		t.Errorf("expected status error, got %v", err)
	}

	p, _ = New(srv.URL+"/garbage", "es", 0)
	if _, err := p.Parse(context.Background(), "Hola"); err == nil {
		t.Errorf("expected decoding error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Parse(ctx, "Hola"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
