package preprocess

import (
	"errors"
	"testing"

	"github.com/revelaction/cohmetrix/errs"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"blocks",
			"# Título\n\nEl *perro* corre.\n\n```\nfmt.Println()\n```\n\n- uno\n- dos\n",
			"Título\n\nEl perro corre.\n\nuno\n\ndos",
		},
		{
			"soft break and link",
			"El perro\ncorre a [casa](http://example.com).",
			"El perro corre a casa.",
		},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Markdown(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range append(Names(), "") {
		if _, err := ByName(name); err != nil {
			t.Errorf("%q: unexpected error %v", name, err)
		}
	}
	if _, err := ByName("html"); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}

	f, _ := ByName("nfc")
	if got, _ := f("café"); got != "café" {
		t.Errorf("expected composed text, got %q", got)
	}
}

func TestChain(t *testing.T) {
	fail := errors.New("fail")
	f := Chain(NFC, func(string) (string, error) { return "", fail })

	if _, err := f("texto"); !errors.Is(err, fail) {
		t.Errorf("expected chained error, got %v", err)
	}
	if got, _ := Chain()("texto"); got != "texto" {
		t.Errorf("expected empty chain to return input, got %q", got)
	}
}
