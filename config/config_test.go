package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/revelaction/cohmetrix/annotate/vertical"
	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/pipeline"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(conf, Default()) {
		t.Errorf("expected defaults, got %+v", conf)
	}
	if conf.SourcePath() != "" {
		t.Errorf("expected no source path, got %q", conf.SourcePath())
	}
	if err := ValidateAndDefaults(conf); err != nil {
		t.Errorf("expected valid defaults, got %v", err)
	}

	if _, err := Load(""); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected error for empty path, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConf(t, `
language = "es"
workers = 2
batchSize = 4
preprocess = "markdown"
logLevel = "debug"

[parser]
url = "http://localhost:8080/parse"

[classifier]
modelPath = "/models/model.json"

[server]
listenPort = 9000
corsAllowedOrigins = ["http://localhost"]
`)

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := ValidateAndDefaults(conf); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if *conf.Workers != 2 || conf.BatchSize != 4 || conf.Preprocess != "markdown" {
		t.Errorf("unexpected analysis settings %+v", conf)
	}
	if conf.Parser.URL != "http://localhost:8080/parse" || conf.Parser.TimeoutSecs <= 0 {
		t.Errorf("unexpected parser %+v", conf.Parser)
	}
	if !conf.Classifier.IsSet() {
		t.Errorf("expected classifier to be set")
	}
	if conf.Server.ListenPort != 9000 || conf.Server.ListenAddress != dfltListenAddress {
		t.Errorf("unexpected server %+v", conf.Server)
	}
	if conf.ParagraphDelimiter != "\n\n" {
		t.Errorf("expected default delimiter, got %q", conf.ParagraphDelimiter)
	}
	if !reflect.DeepEqual(conf.Vertical, vertical.DefaultColumns) {
		t.Errorf("expected default vertical columns, got %+v", conf.Vertical)
	}
	if !conf.IsDebugMode() || conf.SourcePath() != path {
		t.Errorf("unexpected debug %t or path %q", conf.IsDebugMode(), conf.SourcePath())
	}
}

func TestLoadDefaultsWorkers(t *testing.T) {
	conf, err := Load(writeConf(t, `language = "es"`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := ValidateAndDefaults(conf); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if *conf.Workers != pipeline.AllWorkers || conf.BatchSize != dfltBatchSize {
		t.Errorf("unexpected workers %d batch %d", *conf.Workers, conf.BatchSize)
	}
}

func TestLoadInvalidToml(t *testing.T) {
	if _, err := Load(writeConf(t, "workers = [")); err == nil {
		t.Errorf("expected decode error")
	}
}

func TestValidateAndDefaultsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero workers", "workers = 0"},
		{"negative batch", "batchSize = -1"},
		{"unknown language", `language = "xx"`},
		{"unknown preprocess", `preprocess = "html"`},
		{"bad log level", `logLevel = "loud"`},
		{"negative max length", "maxTextLength = -3"},
		{"scaler without model", "[classifier]\nscalerPath = \"/s.json\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := Load(writeConf(t, tt.content))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if err := ValidateAndDefaults(conf); !errors.Is(err, errs.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("COHMETRIX_CONFIG", "/etc/cohmetrix.toml")
	if got := DefaultConfigPath(); got != "/etc/cohmetrix.toml" {
		t.Errorf("unexpected path %q", got)
	}

	t.Setenv("COHMETRIX_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := DefaultConfigPath(), filepath.Join("/xdg", "cohmetrix", "config.toml"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
