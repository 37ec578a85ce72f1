package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func testUI() (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return UI{In: strings.NewReader(""), Out: &out, Err: &errOut}, &out, &errOut
}

func TestParseMainArgs(t *testing.T) {
	ui, _, errOut := testUI()

	cmd, args, err := parseMainArgs([]string{"analyze", "-f", "json", "a.txt"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != "analyze" {
		t.Errorf("expected command analyze, got %s", cmd)
	}
	if strings.Join(args, " ") != "-f json a.txt" {
		t.Errorf("unexpected args %v", args)
	}

	if _, _, err := parseMainArgs(nil, ui); err == nil {
		t.Fatalf("expected error for no command")
	}
	if !strings.Contains(errOut.String(), "Commands:") {
		t.Errorf("expected usage on stderr, got %q", errOut.String())
	}
}

func TestParseMainArgsHelp(t *testing.T) {
	ui, out, _ := testUI()
	_, _, err := parseMainArgs([]string{"-h"}, ui)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "analyze") {
		t.Errorf("expected usage on stdout, got %q", out.String())
	}
}

func TestParseAnalyzeArgs(t *testing.T) {
	t.Setenv("COHMETRIX_DOC_PATH", "")
	t.Setenv("COHMETRIX_DB_PATH", "")

	ui, _, _ := testUI()
	opts, files, err := parseAnalyzeArgs([]string{"-f", "yaml", "-w", "2", "-batch", "3", "-classify", "a.txt", "b.txt"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Format != "yaml" {
		t.Errorf("expected format yaml, got %s", opts.Format)
	}
	if opts.Workers.value == nil || *opts.Workers.value != 2 {
		t.Errorf("expected 2 workers, got %v", opts.Workers.String())
	}
	if opts.BatchSize.value == nil || *opts.BatchSize.value != 3 {
		t.Errorf("expected batch 3, got %v", opts.BatchSize.String())
	}
	if !opts.Classify {
		t.Errorf("expected classify")
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %v", files)
	}
}

func TestParseAnalyzeArgsErrors(t *testing.T) {
	t.Setenv("COHMETRIX_DOC_PATH", "")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"-f", "xml"}},
		{"docs without path", []string{"-docs"}},
		{"bad doc id", []string{"-docs", "-d", "docs", "uno"}},
		{"label without docs", []string{"-label", "A1"}},
		{"zero batch", []string{"-batch", "0"}},
		{"bad workers", []string{"-w", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, _, _ := testUI()
			if _, _, err := parseAnalyzeArgs(tt.args, ui); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseDocArgs(t *testing.T) {
	t.Setenv("COHMETRIX_DOC_PATH", "docs.db")

	ui, _, _ := testUI()
	opts, docId, err := parseDocArgs([]string{"-start", "2", "-n", "1", "7"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docId != 7 || opts.Start != 2 || opts.Count != 1 {
		t.Errorf("unexpected options %+v, docId %d", opts, docId)
	}
	if opts.DocPath != "docs.db" {
		t.Errorf("expected doc path from environment, got %q", opts.DocPath)
	}

	if _, _, err := parseDocArgs([]string{"x"}, ui); err == nil {
		t.Errorf("expected error for invalid docId")
	}
	if _, _, err := parseDocArgs(nil, ui); err == nil {
		t.Errorf("expected error for missing docId")
	}
}

func TestParseQueryArgs(t *testing.T) {
	t.Setenv("COHMETRIX_DB_PATH", "")

	ui, _, _ := testUI()
	if _, err := parseQueryArgs(nil, ui); err == nil {
		t.Errorf("expected error without records source")
	}

	opts, err := parseQueryArgs([]string{"-db", "records.db"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.DbPath != "records.db" {
		t.Errorf("expected db path records.db, got %q", opts.DbPath)
	}
}

func TestParseImportDocArgs(t *testing.T) {
	ui, _, _ := testUI()
	if _, err := parseImportDocArgs([]string{"-from", "docs"}, ui); err == nil {
		t.Errorf("expected error without -to")
	}
	opts, err := parseImportDocArgs([]string{"-from", "docs", "-to", "docs.db"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.From != "docs" || opts.To != "docs.db" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestParseNoArgs(t *testing.T) {
	ui, _, _ := testUI()
	if err := parseNoArgs("version", nil, ui); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := parseNoArgs("version", []string{"extra"}, ui); err == nil {
		t.Errorf("expected error for extra argument")
	}
}

func TestGetCompletions(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{nil, nil},
		{[]string{"cohmetrix", "an"}, []string{"analyze"}},
		{[]string{"cohmetrix", "i"}, []string{"indices", "import-doc"}},
		{[]string{"cohmetrix", "help", "se"}, []string{"serve"}},
		{[]string{"cohmetrix", "analyze", "x"}, nil},
	}

	for _, tt := range tests {
		got := getCompletions(tt.args)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("%v: expected %v, got %v", tt.args, tt.want, got)
		}
	}
}
